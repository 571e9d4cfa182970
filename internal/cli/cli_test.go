package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/config"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/internal/cli"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PG_CONN_URL", "")
	t.Setenv("MONGODB_URL", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("DEFAULT_LOCALE", "en")
	config.Reset()
	t.Cleanup(config.Reset)

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookup(t *testing.T) {
	out, err := run(t, "lookup", "general", "settings.title")
	require.NoError(t, err)
	assert.Equal(t, "Settings\n", out)

	out, err = run(t, "lookup", "general", "section3.genderOptions.Men", "--locale", "ta")
	require.NoError(t, err)
	assert.Equal(t, "ஆண்கள்\n", out)

	out, err = run(t, "lookup", "apparel", "formTranslations.audio.status.idle", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "शुरू करने के लिए 'रिकॉर्डिंग शुरू करें' दबाएं।")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
}

func TestLookupErrors(t *testing.T) {
	_, err := run(t, "lookup", "general", "nonexistent.path")
	assert.ErrorIs(t, err, catalog.ErrMissingKey)

	_, err = run(t, "lookup", "general", "settings.title", "--locale", "fr")
	assert.ErrorIs(t, err, catalog.ErrUnsupportedLocale)

	_, err = run(t, "lookup", "shoes", "x")
	assert.ErrorContains(t, err, "unknown catalog")

	_, err = run(t, "lookup", "general")
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	out, err := run(t, "options", "general", "section3.genderOptions", "-l", "ta")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Men"))
	assert.Contains(t, lines[0], "ஆண்கள்")

	_, err = run(t, "options", "general", "settings.title")
	assert.ErrorIs(t, err, catalog.ErrNotOptionSet)
}

func TestCatalogs(t *testing.T) {
	out, err := run(t, "catalogs")
	require.NoError(t, err)
	for _, name := range forms.Names() {
		assert.Contains(t, out, name)
	}
}

func TestLint(t *testing.T) {
	out, err := run(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "shared subtrees: ok")
	assert.Contains(t, out, "message catalog: ok")

	out, err = run(t, "lint", "general", "--format", "json")
	require.NoError(t, err)
	var res struct {
		Reports []catalog.Report `json:"reports"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Reports, 1)
	assert.Equal(t, forms.GeneralName, res.Reports[0].Catalog)

	_, err = run(t, "lint", "general", "--strict")
	assert.ErrorIs(t, err, cli.ErrLintFailed)
}

func TestExport(t *testing.T) {
	t.Run("json to stdout", func(t *testing.T) {
		out, err := run(t, "export", "general", "--locale", "hi")
		require.NoError(t, err)

		want, err := export.Bundle(forms.General(), catalog.Hindi)
		require.NoError(t, err)
		wantJSON, err := json.Marshal(want)
		require.NoError(t, err)
		assert.JSONEq(t, string(wantJSON), out)
	})

	t.Run("csv to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "apparel.csv")
		_, err := run(t, "export", "apparel", "-f", "csv", "-o", path)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		records, err := export.ReadCSV(f)
		require.NoError(t, err)
		assert.Equal(t, forms.Apparel().Records(), records)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "export", "industrial", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "formTranslations:")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := run(t, "export", "general", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestSinksNotConfigured(t *testing.T) {
	for _, name := range []string{"sync", "snapshot", "publish"} {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not configured")
		})
	}
}
