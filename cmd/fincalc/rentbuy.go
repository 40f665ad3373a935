package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func rentBuyCmd(a *app) *cobra.Command {
	var scenario, format string
	var save bool

	cmd := &cobra.Command{
		Use:   "rentbuy [input-file]",
		Short: "Project rent vs buy for every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			scenarios, err := selectScenarios(cfg, scenario)
			if err != nil {
				return err
			}
			engine, err := a.engine(cfg.TaxYear)
			if err != nil {
				return err
			}

			if format == "" {
				format = a.settings.Output.Format
			}
			f, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}

			report := output.BuildRentBuyReport(engine, scenarios)
			if save {
				filename, err := output.WriteFormatted(f, report, extension(f.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "only run the named scenario")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format ("+strings.Join(output.FormatterNames(), ", ")+")")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	return cmd
}

func extension(format string) string {
	if format == "console" {
		return "txt"
	}
	return format
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a scenario file and check each scenario's inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			engine, err := a.engine(cfg.TaxYear)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warned := 0
			for _, s := range cfg.Scenarios {
				v := engine.ValidateInputs(s.Inputs)
				if v.IsValid {
					fmt.Fprintf(out, "✓ %s\n", s.Name)
					continue
				}
				warned++
				fmt.Fprintf(out, "⚠ %s\n", s.Name)
				for _, e := range v.Errors {
					fmt.Fprintf(out, "    - %s\n", e)
				}
			}

			fmt.Fprintf(out, "Configuration file %s is valid", args[0])
			if warned > 0 {
				fmt.Fprintf(out, " (%d scenario(s) with input warnings)", warned)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func amortizeCmd(a *app) *cobra.Command {
	var price, down, rate, format string
	var term int
	var yearly bool

	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print a mortgage amortization schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]decimal.Decimal, 3)
			for i, f := range []struct{ name, raw string }{{"price", price}, {"down", down}, {"rate", rate}} {
				d, err := decimal.NewFromString(f.raw)
				if err != nil {
					return fmt.Errorf("invalid --%s %q: %w", f.name, f.raw, err)
				}
				values[i] = d
			}
			if !values[0].IsPositive() {
				return fmt.Errorf("--price must be positive")
			}
			if values[1].IsNegative() || values[1].GreaterThan(decimal.NewFromInt(100)) {
				return fmt.Errorf("--down must be between 0 and 100")
			}
			if values[2].IsNegative() {
				return fmt.Errorf("--rate cannot be negative")
			}
			if term <= 0 {
				return fmt.Errorf("--term must be positive")
			}

			rows := calculation.AmortizationSchedule(values[0], values[1], values[2], term)
			a.logger.Debug("amortization schedule built")

			var data []byte
			var err error
			switch strings.ToLower(format) {
			case "console", "":
				data = output.FormatAmortization(rows, yearly)
			case "csv":
				data, err = output.AmortizationCSV(rows)
			default:
				data, err = output.Encode(format, rows)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&price, "price", "500000", "home price")
	cmd.Flags().StringVar(&down, "down", "20", "down payment percent")
	cmd.Flags().StringVar(&rate, "rate", "6", "annual interest rate percent")
	cmd.Flags().IntVar(&term, "term", 30, "loan term in years")
	cmd.Flags().BoolVar(&yearly, "yearly", false, "roll months up into loan years")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, json, yaml)")
	return cmd
}
