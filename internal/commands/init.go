package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/koinvert-dev/koinvert/internal/config"
)

func newInitCommand() *cobra.Command {
	var fiat string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default koinvert.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, fiat)
		},
	}

	cmd.Flags().StringVar(&fiat, "fiat", "BRL", "local fiat currency code")

	return cmd
}

func runInit(dir, fiat string) error {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default()
	cfg.Converter.FiatCurrency = fiat
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
