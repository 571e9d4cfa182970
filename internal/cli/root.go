// Package cli implements the formcatalog command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/config"
	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/forms"
)

// app is the state shared by all commands, filled before any command runs.
type app struct {
	cfg      AppConfig
	log      *slog.Logger
	logLevel string
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "formcatalog",
		Short: "Multilingual translation catalogs for the brand questionnaire forms",
		Long: `formcatalog serves, validates, exports and publishes the static
translation catalogs (general, apparel, industrial) in English, Hindi,
Tamil, Telugu and Gujarati.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(a),
		newCatalogsCmd(a),
		newLookupCmd(a),
		newOptionsCmd(a),
		newLintCmd(a),
		newExportCmd(a),
		newSyncCmd(a),
		newSnapshotCmd(a),
		newPublishCmd(a),
	)

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := a.cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}

	opts := []logger.Option{logger.WithDevelopment(a.cfg.AppName)}
	if a.cfg.Production() {
		opts = []logger.Option{logger.WithProduction(a.cfg.AppName)}
	}
	opts = append(opts,
		logger.WithLevel(logger.ParseLevel(level)),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	a.log = logger.New(opts...)
	return nil
}

// defaultLocale returns the configured default, or English when it is invalid.
func (a *app) defaultLocale() catalog.Locale {
	if l, err := catalog.ParseLocale(a.cfg.DefaultLocale); err == nil {
		return l
	}
	return catalog.DefaultLocale
}

// resolveLocale parses a --locale flag value, falling back to the default.
func (a *app) resolveLocale(flag string) (catalog.Locale, error) {
	if flag == "" {
		return a.defaultLocale(), nil
	}
	return catalog.ParseLocale(flag)
}

func getCatalog(name string) (*catalog.Catalog, error) {
	c, ok := forms.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q (available: %s)", name, strings.Join(forms.Names(), ", "))
	}
	return c, nil
}

// selectCatalogs returns the named catalogs, or all of them when names is empty.
func selectCatalogs(names []string) ([]*catalog.Catalog, error) {
	if len(names) == 0 {
		return forms.All(), nil
	}
	out := make([]*catalog.Catalog, 0, len(names))
	for _, name := range names {
		c, err := getCatalog(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func completeCatalogNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return forms.Names(), cobra.ShellCompDirectiveNoFileComp
}
