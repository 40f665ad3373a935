package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/policy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once flags are parsed
type app struct {
	v          *viper.Viper
	configPath string
	logLevel   string
	policyYear int
	policyFile string

	settings *config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Rent vs buy, tax and FIRE calculator",
		Long: "Personal finance calculator: multi-year rent-vs-buy projections, " +
			"progressive tax estimates and financial independence planning.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (yaml, json or toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.IntVar(&a.policyYear, "tax-year", 0, "tax year of the policy tables (default: the scenario file's, else latest)")
	flags.StringVar(&a.policyFile, "policy-file", "", "policy table file to use instead of the embedded one for its year")
	_ = a.v.BindPFlag("policy.year", flags.Lookup("tax-year"))
	_ = a.v.BindPFlag("policy.file", flags.Lookup("policy-file"))

	root.AddCommand(
		rentBuyCmd(a),
		validateCmd(a),
		amortizeCmd(a),
		taxCmd(a),
		fireCmd(a),
		compareCmd(a),
		breakEvenCmd(a),
		serveCmd(a),
		exploreCmd(a),
		policyCmd(a),
		versionCmd(),
	)
	return root
}

func (a *app) setup() error {
	settings, err := config.LoadSettings(a.v, a.configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(settings.Log, a.logLevel)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	return nil
}

// engine builds a calculation engine. The year comes from settings or
// flags first, then the scenario file, then the latest embedded table.
func (a *app) engine(fileYear int) (*calculation.CalculationEngine, error) {
	year := a.settings.Policy.Year
	if year == 0 {
		year = fileYear
	}

	reg := policy.Default()
	if file := a.settings.Policy.File; file != "" {
		var err error
		if reg, err = policy.NewEmbeddedRegistry(); err != nil {
			return nil, err
		}
		p, err := reg.LoadFile(file)
		if err != nil {
			return nil, err
		}
		if year == 0 {
			year = p.Year
		}
	}

	p := reg.Latest()
	if year != 0 {
		var err error
		if p, err = reg.Year(year); err != nil {
			return nil, err
		}
	}

	engine := calculation.NewCalculationEngineWithPolicy(p, reg.Locations())
	engine.SetLogger(a.logger.Sugar())
	a.logger.Debug("engine ready", zap.Int("tax_year", p.Year))
	return engine, nil
}

// load reads and validates a scenario file
func (a *app) load(path string) (*domain.Configuration, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("configuration loaded",
		zap.String("file", path),
		zap.Int("scenarios", len(cfg.Scenarios)),
	)
	return cfg, nil
}

// selectScenarios narrows the configuration to one scenario when name is set
func selectScenarios(cfg *domain.Configuration, name string) ([]domain.Scenario, error) {
	if name == "" {
		return cfg.Scenarios, nil
	}
	s, ok := cfg.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("scenario %q not found (available: %v)", name, cfg.ScenarioNames())
	}
	return []domain.Scenario{*s}, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
