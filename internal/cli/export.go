package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		locale string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export <catalog>",
		Short: "Write a catalog as a JSON bundle, CSV spreadsheet or YAML tree",
		Example: `  formcatalog export general --format json --locale hi --out hi.json
  formcatalog export apparel --format csv > apparel.csv`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCatalog(args[0])
			if err != nil {
				return err
			}

			var write func(io.Writer) error
			switch format {
			case "json":
				loc, err := a.resolveLocale(locale)
				if err != nil {
					return err
				}
				write = func(w io.Writer) error { return export.WriteJSON(w, c, loc) }
			case "csv":
				write = func(w io.Writer) error { return export.WriteCSV(w, c) }
			case "yaml":
				write = func(w io.Writer) error { return export.WriteYAML(w, c) }
			default:
				return fmt.Errorf("unknown format %q (use json, csv or yaml)", format)
			}

			if out == "" || out == "-" {
				return write(cmd.OutOrStdout())
			}
			return writeFile(out, write)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, csv or yaml")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale of a json bundle; defaults to DEFAULT_LOCALE")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"json", "csv", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("locale", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		locales := catalog.Locales()
		names := make([]string, len(locales))
		for i, l := range locales {
			names[i] = l.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// writeFile writes through a temp file so a failed export never leaves a
// truncated file behind.
func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".formcatalog-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
