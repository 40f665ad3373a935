package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/spf13/cobra"
)

func taxCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tax [input-file]",
		Short: "Estimate federal, state and payroll tax from a file's tax section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			if cfg.Tax == nil {
				return fmt.Errorf("%s has no tax section", args[0])
			}
			engine, err := a.engine(cfg.TaxYear)
			if err != nil {
				return err
			}

			result := engine.CalculateTaxResults(*cfg.Tax)
			return writeResult(cmd, format, result, output.FormatTaxReport)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, yaml)")
	return cmd
}

func fireCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fire [input-file]",
		Short: "Project the path to financial independence from a file's fire section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			if cfg.FIRE == nil {
				return fmt.Errorf("%s has no fire section", args[0])
			}
			engine, err := a.engine(cfg.TaxYear)
			if err != nil {
				return err
			}

			result := engine.CalculateFIRE(*cfg.FIRE)
			return writeResult(cmd, format, result, output.FormatFIREReport)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, yaml)")
	return cmd
}

// writeResult prints text via console, or encodes v for structured formats
func writeResult[T any](cmd *cobra.Command, format string, v T, console func(T) []byte) error {
	var data []byte
	if strings.EqualFold(format, "console") {
		data = console(v)
	} else {
		var err error
		if data, err = output.Encode(format, v); err != nil {
			return err
		}
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
