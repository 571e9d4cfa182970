package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/pkg/catalogsync"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "sync [catalog...]",
		Short:             "Mirror catalogs into PostgreSQL (PG_CONN_URL)",
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := selectCatalogs(args)
			if err != nil {
				return err
			}
			s, err := openSinks(cmd.Context(), a.cfg, a.log, sinkEntries)
			if err != nil {
				return err
			}
			defer s.Close()

			results, err := s.syncer.SyncEntries(cmd.Context(), cs...)
			if err != nil {
				return hint(err, "PG_CONN_URL")
			}
			return writeResults(cmd.OutOrStdout(), results)
		},
	}
}

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "snapshot [catalog...]",
		Short:             "Store a versioned snapshot of changed catalogs in MongoDB (MONGODB_URL)",
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := selectCatalogs(args)
			if err != nil {
				return err
			}
			s, err := openSinks(cmd.Context(), a.cfg, a.log, sinkSnapshots)
			if err != nil {
				return err
			}
			defer s.Close()

			results, err := s.syncer.SaveSnapshots(cmd.Context(), cs...)
			if err != nil {
				return hint(err, "MONGODB_URL")
			}
			return writeResults(cmd.OutOrStdout(), results)
		},
	}
}

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "publish [catalog...]",
		Short:             "Upload JSON bundles, CSV and YAML exports to S3 (S3_BUCKET)",
		ValidArgsFunction: completeCatalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := selectCatalogs(args)
			if err != nil {
				return err
			}
			s, err := openSinks(cmd.Context(), a.cfg, a.log, sinkObjects)
			if err != nil {
				return err
			}
			defer s.Close()

			manifests, err := s.syncer.Publish(cmd.Context(), cs...)
			if err != nil {
				return hint(err, "S3_BUCKET")
			}

			out := cmd.OutOrStdout()
			for _, m := range manifests {
				_, _ = fmt.Fprintf(out, "%s %s\n", m.Catalog, m.Checksum)
				for _, l := range catalog.Locales() {
					_, _ = fmt.Fprintf(out, "  %s  %s\n", l, m.Bundles[l])
				}
				_, _ = fmt.Fprintf(out, "  csv %s\n  yaml %s\n", m.CSV, m.YAML)
			}
			return nil
		},
	}
}

func hint(err error, envVar string) error {
	if errors.Is(err, catalogsync.ErrSinkNotConfigured) {
		return fmt.Errorf("%w: set %s", err, envVar)
	}
	return err
}

func writeResults(w io.Writer, results []catalogsync.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CATALOG\tCHECKSUM\tCHANGED\tCOUNT\tVERSION")
	for _, r := range results {
		version := "-"
		if r.Version > 0 {
			version = fmt.Sprint(r.Version)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%.12s\t%t\t%d\t%s\n", r.Catalog, r.Checksum, r.Changed, r.Count, version)
	}
	return tw.Flush()
}
