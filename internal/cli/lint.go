package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

// ErrLintFailed is returned when lint finds errors (or warnings with --strict).
var ErrLintFailed = errors.New("lint failed")

type lintOutput struct {
	Reports  []catalog.Report `json:"reports"`
	Shared   []string         `json:"shared_subtree_drift"`
	Messages []string         `json:"message_catalog_drift"`
}

func newLintCmd(a *app) *cobra.Command {
	var (
		format   string
		strict   bool
		warnings bool
	)

	cmd := &cobra.Command{
		Use:   "lint [catalog...]",
		Short: "Check catalogs for data-quality issues and shared-subtree drift",
		Long: `Lint reports empty texts, untranslated texts, text that is not in
Unicode NFC and placeholder mismatches, and verifies that the shared
subtrees are identical in every catalog. Each text is also printed back
through the golang.org/x/text message catalog export and must come out
unchanged.

Normalization and placeholder problems, shared-subtree drift and message
catalog drift fail the run. Empty and untranslated texts are warnings unless --strict is set.`,
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := selectCatalogs(args)
			if err != nil {
				return err
			}

			res := lintOutput{Shared: forms.CheckShared(forms.All()...)}
			if res.Messages, err = export.VerifyMessages(cs...); err != nil {
				return err
			}
			failed := len(res.Shared) > 0 || len(res.Messages) > 0
			for _, c := range cs {
				r := catalog.Lint(c)
				res.Reports = append(res.Reports, r)
				if r.HasErrors() || (strict && len(r.Issues) > 0) {
					failed = true
				}
				a.log.DebugContext(cmd.Context(), "catalog linted",
					logger.Catalog(c.Name()),
					logger.Count("issues", len(r.Issues)),
				)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			case "text":
				writeLintText(out, res, warnings || strict)
			default:
				return fmt.Errorf("unknown format %q (use text or json)", format)
			}

			if failed {
				return ErrLintFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	cmd.Flags().BoolVarP(&warnings, "warnings", "w", false, "list warnings, not only their counts")
	return cmd
}

func writeLintText(w io.Writer, res lintOutput, listWarnings bool) {
	for _, r := range res.Reports {
		_, _ = fmt.Fprintf(w, "%s: %d leaves, %d empty, %d untranslated, %d not NFC, %d placeholder mismatches\n",
			r.Catalog, r.Leaves,
			r.Count(catalog.IssueEmpty),
			r.Count(catalog.IssueUntranslated),
			r.Count(catalog.IssueNotNFC),
			r.Count(catalog.IssuePlaceholderMismatch),
		)
		for _, i := range r.Issues {
			if !i.Kind.Severe() && !listWarnings {
				continue
			}
			_, _ = fmt.Fprintf(w, "  %s [%s] %s: %s\n", i.Path, i.Locale, i.Kind, i.Message)
		}
	}

	writeDrift(w, "shared subtrees", res.Shared)
	writeDrift(w, "message catalog", res.Messages)
}

func writeDrift(w io.Writer, what string, diff []string) {
	if len(diff) == 0 {
		_, _ = fmt.Fprintf(w, "%s: ok\n", what)
		return
	}
	_, _ = fmt.Fprintf(w, "%s: drift detected\n", what)
	for _, d := range diff {
		_, _ = fmt.Fprintf(w, "  %s\n", d)
	}
}
