package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hoadash/internal/branding"
	"hoadash/internal/config"
	"hoadash/internal/core"
	"hoadash/internal/dashboard"
	"hoadash/internal/dataset"
	"hoadash/internal/i18n"
	applog "hoadash/internal/log"
	"hoadash/internal/storage"
)

// NewRootCommand builds the hoactl command tree.
func NewRootCommand() *cobra.Command {
	var cfg *config.Config
	var logger *applog.Logger

	root := &cobra.Command{
		Use:           "hoactl",
		Short:         "Paraíso HOA dashboard tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			LoadEnvFile()
			c, err := LoadAndValidateConfig()
			if err != nil {
				return err
			}
			cfg = c
			logger = SetupLogger(cfg, cmd.ErrOrStderr()).WithComponent(applog.ComponentCLI)
			return nil
		},
	}

	root.AddCommand(
		newReportCommand(func() (*config.Config, *applog.Logger) { return cfg, logger }),
		newSeedCommand(func() (*config.Config, *applog.Logger) { return cfg, logger }),
		newBrandCommand(func() (*config.Config, *applog.Logger) { return cfg, logger }),
	)
	return root
}

type envFunc func() (*config.Config, *applog.Logger)

func newReportCommand(env envFunc) *cobra.Command {
	var (
		year     int
		currency string
		lang     string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard figures of a fiscal year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := env()

			cur, err := core.ParseCurrency(firstNonEmpty(currency, cfg.DefaultCurrency))
			if err != nil {
				return err
			}
			lg, err := i18n.Parse(firstNonEmpty(lang, cfg.DefaultLanguage))
			if err != nil {
				return err
			}

			ds, err := OpenDataset(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer ds.Cleanup()

			rec, err := ds.Backend.ReadYear(cmd.Context(), year)
			if err != nil {
				if errors.Is(err, dataset.ErrYearNotFound) && cfg.DataBackend == "sqlite" {
					return fmt.Errorf("%w (run hoactl seed first)", err)
				}
				return err
			}

			st := dashboard.DefaultState(year, lg, cur)
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(BuildJSONReport(rec, st))
			case "text":
				return WriteReport(cmd.OutOrStdout(), BuildReport(rec, st))
			default:
				return fmt.Errorf("unknown format %q (expected text or json)", format)
			}
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", dataset.DefaultYear, "fiscal year")
	cmd.Flags().StringVarP(&currency, "currency", "c", "", "display currency (MXN or USD); defaults to DEFAULT_CURRENCY")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "display language (en or es); defaults to DEFAULT_LANGUAGE")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

func newSeedCommand(env envFunc) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in fiscal year records in the SQLite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := env()
			path := firstNonEmpty(dbPath, cfg.SQLiteDBPath)
			if dir := filepath.Dir(path); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", dir, err)
				}
			}

			repo, err := storage.NewSQLiteRepository(path)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := Seed(cmd.Context(), repo); err != nil {
				return err
			}
			logger.Info("Dataset seeded",
				applog.FieldOperation, applog.OpSeed,
				applog.FieldFile, path,
				applog.FieldYear, dataset.DefaultYear)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d into %s\n", dataset.DefaultYear, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path; defaults to SQLITE_DB_PATH")
	return cmd
}

// Seed writes the built-in records through w.
func Seed(ctx context.Context, w dataset.Writer) error {
	if err := w.SaveYear(ctx, dataset.Paraiso2023()); err != nil {
		return fmt.Errorf("seed %d: %w", dataset.DefaultYear, err)
	}
	return nil
}

func newBrandCommand(env envFunc) *cobra.Command {
	var (
		configPath string
		user       string
		outDir     string
		inPlace    bool
	)

	cmd := &cobra.Command{
		Use:   "brand FILE...",
		Short: "Inject the portal header and footer into HTML files",
		Long:  "Brands each HTML file. With a single file and neither --out nor --in-place " +
			"the result is written to stdout.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := env()

			bc, err := LoadBrandingConfig(firstNonEmpty(configPath, cfg.BrandingConfig))
			if err != nil {
				return err
			}
			inj := branding.NewInjector(bc)

			if outDir == "" && !inPlace && len(args) > 1 {
				return errors.New("several files need --out or --in-place")
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", outDir, err)
				}
			}

			for _, path := range args {
				branded, err := BrandFile(inj, path, user)
				if err != nil {
					return err
				}

				switch {
				case inPlace:
					err = os.WriteFile(path, branded, 0o644)
				case outDir != "":
					err = os.WriteFile(filepath.Join(outDir, filepath.Base(path)), branded, 0o644)
				default:
					_, err = cmd.OutOrStdout().Write(branded)
				}
				if err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				logger.Debug("File branded",
					applog.FieldOperation, applog.OpBrand,
					applog.FieldFile, path,
					applog.FieldBytes, len(branded))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "branding config file (yaml, json or toml); defaults to BRANDING_CONFIG")
	cmd.Flags().StringVarP(&user, "user", "u", "", "reveal the user menu for this name")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for the branded files")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite the input files")
	cmd.MarkFlagsMutuallyExclusive("out", "in-place")
	return cmd
}

// BrandFile reads path and returns the branded document.
func BrandFile(inj *branding.Injector, path, user string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := inj.BrandForUser(f, &out, user); err != nil {
		return nil, fmt.Errorf("brand %s: %w", path, err)
	}
	return out.Bytes(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
