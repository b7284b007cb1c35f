package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/koinvert-dev/koinvert/internal/config"
	"github.com/koinvert-dev/koinvert/internal/converter"
	"github.com/koinvert-dev/koinvert/internal/logger"
)

func newConvertCommand() *cobra.Command {
	var output string
	var configPath string
	var fiat string
	var strict bool

	cmd := &cobra.Command{
		Use:   "convert <statement.csv>",
		Short: "Convert a NovaDAX statement export to a Koinly import CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fiat") {
				cfg.Converter.FiatCurrency = fiat
			}
			if cmd.Flags().Changed("strict") {
				cfg.Converter.Strict = strict
			}

			return runConvert(args[0], output, cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default: <input>_koinly.csv)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to koinvert.yaml")
	cmd.Flags().StringVar(&fiat, "fiat", "BRL", "local fiat currency code")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on amounts that are not valid decimals")

	return cmd
}

// loadConfig reads the explicit --config path, falls back to koinvert.yaml
// in the working directory, and finally to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := os.Stat(config.FileName); err == nil {
		return config.Load(config.FileName)
	}
	return config.Default(), nil
}

func runConvert(inPath, outPath string, cfg *config.Config) error {
	log := logger.New(cfg.Log.Level)

	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + "_koinly.csv"
	}

	svc := converter.New(cfg.Converter)
	stats, err := svc.ConvertFile(inPath, outPath)
	if err != nil {
		return err
	}

	if stats.Invalid > 0 {
		log.Warn().Int("rows", stats.Invalid).Msg("statement rows too short to classify")
	}
	if stats.Passthrough > 0 {
		log.Warn().Int("rows", stats.Passthrough).Msg("unrecognized transaction types passed through")
	}
	for currency, total := range stats.Sent {
		log.Debug().Str("currency", currency).Str("total", total.String()).Msg("sent")
	}
	for currency, total := range stats.Received {
		log.Debug().Str("currency", currency).Str("total", total.String()).Msg("received")
	}
	for currency, total := range stats.Fees {
		log.Debug().Str("currency", currency).Str("total", total.String()).Msg("fees")
	}
	log.Info().
		Int("rows", stats.Rows).
		Str("fiat", cfg.Converter.FiatCurrency).
		Str("output", outPath).
		Msg("conversion complete")

	fmt.Printf("Wrote %s (%d rows)\n", outPath, stats.Rows)
	return nil
}
