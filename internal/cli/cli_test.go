package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoadash/internal/branding"
	"hoadash/internal/core"
	"hoadash/internal/dashboard"
	"hoadash/internal/dataset"
	"hoadash/internal/dataset/memory"
	"hoadash/internal/i18n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBrandingConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg branding.Config)
		wantErr bool
	}{
		{
			name: "defaults without a file",
			check: func(t *testing.T, cfg branding.Config) {
				assert.Equal(t, branding.DefaultConfig(), cfg)
			},
		},
		{
			name:    "yaml overrides",
			file:    "branding.yaml",
			content: `portal_name: Resident Portal
show_user_menu: false
nav_links:
  - label: Board
    href: /board
`,
			check: func(t *testing.T, cfg branding.Config) {
				assert.Equal(t, "Resident Portal", cfg.PortalName)
				assert.False(t, cfg.ShowUserMenu)
				assert.Equal(t, []branding.NavLink{{Label: "Board", Href: "/board"}}, cfg.NavLinks)
				assert.Equal(t, branding.DefaultConfig().MainSiteURL, cfg.MainSiteURL)
				assert.True(t, cfg.ShowNav)
			},
		},
		{
			name:    "json overrides",
			file:    "branding.json",
			content: `{"portal_name": "HOA", "logo_url": "/logo.png"}`,
			check: func(t *testing.T, cfg branding.Config) {
				assert.Equal(t, "HOA", cfg.PortalName)
				assert.Equal(t, "/logo.png", cfg.LogoURL)
				assert.Len(t, cfg.NavLinks, 5)
			},
		},
		{
			name:    "invalid nav link",
			file:    "bad.toml",
			content: "[[nav_links]]\nlabel = \"Only label\"\n",
			wantErr: true,
		},
		{
			name:    "missing file",
			file:    "missing.yaml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.file != "" {
				path = filepath.Join(dir, tt.file)
				if tt.content != "" {
					writeFile(t, dir, tt.file, tt.content)
				}
			}

			cfg, err := LoadBrandingConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestWriteReport(t *testing.T) {
	st := dashboard.DefaultState(dataset.DefaultYear, i18n.English, core.MXN)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, BuildReport(dataset.Paraiso2023(), st)))
	out := buf.String()

	for _, want := range []string{
		"The Paraíso Residences",
		"2023",
		"== Overview ==",
		"== Budget Analysis ==",
		"== Forensic Insights ==",
		"== Collections ==",
		"Other Expenses exceeded budget by 246%",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteReportSpanish(t *testing.T) {
	st := dashboard.DefaultState(dataset.DefaultYear, i18n.Spanish, core.USD)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, BuildReport(dataset.Paraiso2023(), st)))
	assert.Contains(t, buf.String(), "== Análisis Forense ==")
	assert.Contains(t, buf.String(), "USD")
}

func TestBuildJSONReport(t *testing.T) {
	st := dashboard.DefaultState(dataset.DefaultYear, i18n.English, core.USD)
	r := BuildJSONReport(dataset.Paraiso2023(), st)

	assert.Equal(t, "USD", r.Summary.Currency)
	assert.Len(t, r.Findings.Findings, 10)
	assert.Len(t, r.Monthly.Labels, 12)
}

func TestSeed(t *testing.T) {
	store := memory.New()
	require.NoError(t, Seed(context.Background(), store))

	years, err := store.Years(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{dataset.DefaultYear}, years)
}

func TestBrandFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", "<html><body><main>content</main></body></html>")

	out, err := BrandFile(branding.NewInjector(branding.DefaultConfig()), path, "Rosa Diaz")
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="site-header"`)
	assert.Contains(t, string(out), `id="aliceUserInitials">RD<`)
	assert.Contains(t, string(out), "<main>content</main>")

	_, err = BrandFile(branding.NewInjector(branding.DefaultConfig()), filepath.Join(dir, "nope.html"), "")
	require.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")

	out, err := runRoot(t, "report", "--format", "json", "--currency", "usd", "--lang", "es")
	require.NoError(t, err)

	var got JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "USD", got.Summary.Currency)
	assert.Equal(t, "es", got.Summary.Language)

	out, err = runRoot(t, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "== Overview ==")

	_, err = runRoot(t, "report", "--year", "1999")
	require.ErrorIs(t, err, dataset.ErrYearNotFound)

	_, err = runRoot(t, "report", "--format", "xml")
	require.Error(t, err)

	_, err = runRoot(t, "report", "--currency", "EUR")
	require.ErrorIs(t, err, core.ErrUnknownCurrency)
}

func TestSeedThenReportFromSQLite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "data", "hoa.db")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", db)

	out, err := runRoot(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 2023")

	out, err = runRoot(t, "report", "--format", "json")
	require.NoError(t, err)
	var got JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2023, got.Summary.Year)
}

func TestBrandCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.html", "<html><body><p>a</p></body></html>")
	b := writeFile(t, dir, "b.html", "<html><body><p>b</p></body></html>")
	cfgPath := writeFile(t, dir, "branding.yaml", "portal_name: Board Portal\n")

	out, err := runRoot(t, "brand", a, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Board Portal")
	assert.Contains(t, out, "<p>a</p>")

	_, err = runRoot(t, "brand", a, b)
	require.Error(t, err)

	outDir := filepath.Join(dir, "out")
	_, err = runRoot(t, "brand", a, b, "--out", outDir)
	require.NoError(t, err)
	for _, name := range []string{"a.html", "b.html"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), `id="site-footer"`), name)
	}

	_, err = runRoot(t, "brand", a, "--in-place")
	require.NoError(t, err)
	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `id="site-header"`)
}
