package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcatalog/core/catalog"
)

func newCatalogsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List the available catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := selectCatalogs(nil)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tENTRIES\tCHECKSUM\tDESCRIPTION")
			for _, c := range all {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%.12s\t%s\n", c.Name(), c.Len(), c.Checksum(), c.Description())
			}
			return tw.Flush()
		},
	}
}

func newLookupCmd(a *app) *cobra.Command {
	var (
		locale string
		all    bool
	)

	cmd := &cobra.Command{
		Use:               "lookup <catalog> <key>",
		Short:             "Print the text stored at a key path",
		Example:           "  formcatalog lookup general settings.title --locale hi",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCatalog(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all {
				entry, err := c.Entry(args[1])
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, l := range catalog.Locales() {
					text, _ := entry.Get(l)
					_, _ = fmt.Fprintf(tw, "%s\t%s\n", l, text)
				}
				return tw.Flush()
			}

			loc, err := a.resolveLocale(locale)
			if err != nil {
				return err
			}
			text, err := c.Lookup(args[1], loc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, text)
			return err
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale code (en, hi, ta, te, gu); defaults to DEFAULT_LOCALE")
	cmd.Flags().BoolVar(&all, "all", false, "print the text in every locale")
	return cmd
}

func newOptionsCmd(a *app) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:               "options <catalog> <key>",
		Short:             "Print an option set in declaration order",
		Example:           "  formcatalog options general section3.genderOptions --locale ta",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCatalog(args[0])
			if err != nil {
				return err
			}
			loc, err := a.resolveLocale(locale)
			if err != nil {
				return err
			}

			labels, err := catalog.NewTranslator(c, loc).Options(args[1])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range labels {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", l.Key, l.Text)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale code (en, hi, ta, te, gu); defaults to DEFAULT_LOCALE")
	return cmd
}
