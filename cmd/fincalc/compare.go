package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/breakeven"
	"github.com/rgehrsitz/fincalc/internal/compare"
	"github.com/rgehrsitz/fincalc/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var base, with, format string
	var listTemplates bool

	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare a base scenario against templates or other scenarios",
		Long: "Compare a base scenario against what-if templates or other scenarios in the same file.\n" +
			"--with takes template names, or scenario names when every entry names a scenario.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listTemplates {
				registry := transform.CreateBuiltInTemplates()
				fmt.Fprintln(out, "Available templates:")
				for _, name := range registry.List() {
					t, _ := registry.Get(name)
					fmt.Fprintf(out, "  %-24s %s\n", t.Name, t.Description)
				}
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("an input file is required")
			}
			if base == "" || with == "" {
				return fmt.Errorf("--base and --with are required")
			}

			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			engine, err := a.engine(cfg.TaxYear)
			if err != nil {
				return err
			}

			names := splitList(with)
			compareEngine := compare.NewCompareEngine(engine)

			var set *compare.ComparisonSet
			if allScenarios(names, cfg.ScenarioNames()) {
				set, err = compareEngine.CompareScenarios(cmd.Context(), cfg, base, names)
			} else {
				set, err = compareEngine.Compare(cmd.Context(), cfg, compare.CompareOptions{
					BaseScenarioName: base,
					Templates:        names,
				})
			}
			if err != nil {
				return err
			}
			set.ConfigPath = args[0]

			var text string
			switch strings.ToLower(format) {
			case "table":
				text = (&compare.TableFormatter{}).Format(set)
			case "compact":
				text = (&compare.TableFormatter{}).FormatCompact(set)
			case "csv":
				text, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				text, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base scenario name")
	cmd.Flags().StringVar(&with, "with", "", "comma-separated templates or scenario names")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, compact, csv, json)")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "list the built-in templates and exit")
	return cmd
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func allScenarios(names, scenarios []string) bool {
	known := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		known[s] = true
	}
	for _, n := range names {
		if !known[n] {
			return false
		}
	}
	return true
}

func breakEvenCmd(a *app) *cobra.Command {
	var scenario, target, format string
	var year int

	cmd := &cobra.Command{
		Use:   "break-even [input-file]",
		Short: "Find the price, down payment or rent at which buying breaks even by a given year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			if scenario == "" && len(cfg.Scenarios) > 0 {
				scenario = cfg.Scenarios[0].Name
			}
			scenarios, err := selectScenarios(cfg, scenario)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				return fmt.Errorf("%s has no scenarios", args[0])
			}
			inputs := scenarios[0].Inputs

			t, err := breakeven.ParseTarget(target)
			if err != nil {
				return err
			}
			if year == 0 {
				year = inputs.TimeHorizon
			}

			engine, err := a.engine(cfg.TaxYear)
			if err != nil {
				return err
			}
			solver := breakeven.NewDefaultSolver(engine)
			table := &breakeven.TableFormatter{}
			jsonFmt := &breakeven.JSONFormatter{Pretty: true}
			out := cmd.OutOrStdout()

			if t == breakeven.OptimizeAll {
				result, err := solver.OptimizeMultiDimensional(cmd.Context(), inputs, year, nil)
				if err != nil {
					return err
				}
				if strings.EqualFold(format, "json") {
					text, err := jsonFmt.FormatMultiDimensional(result)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, text)
					return nil
				}
				fmt.Fprint(out, table.FormatMultiDimensional(result))
				return nil
			}

			result, err := solver.Optimize(cmd.Context(), breakeven.OptimizationRequest{
				Inputs:     inputs,
				Target:     t,
				TargetYear: year,
			})
			if err != nil {
				return err
			}
			if strings.EqualFold(format, "json") {
				text, err := jsonFmt.Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
				return nil
			}
			fmt.Fprint(out, table.Format(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "scenario to solve for (default: the first)")
	cmd.Flags().StringVar(&target, "target", "all", "input to solve for (price, down, rent, all)")
	cmd.Flags().IntVar(&year, "year", 0, "year buying must break even by (default: the time horizon)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}
