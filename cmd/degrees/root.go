package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/config"
)

// flags collected from the command line; zero values defer to config.
type flags struct {
	configPath    string
	quiet         bool
	source        string
	discipline    string
	strict        bool
	maxExpansions int
	logLevel      string
	metrics       bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "degrees [directory]",
		Short: "Find degrees of separation between two actors",
		Long: `degrees loads a people/movies/stars dataset and reports the shortest
chain of shared movies connecting two people.

Without a subcommand it prompts for pairs of names until told to stop.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args, in, out, errOut, func(a *app) error {
				return a.interactive(cmd.Context())
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "disable prompts and extra output")
	pf.StringVar(&f.source, "source", "", "dataset source: csv or sqlite")
	pf.StringVar(&f.discipline, "discipline", "", "frontier discipline: fifo (shortest) or lifo")
	pf.BoolVar(&f.strict, "strict", false, "fail on cast rows referencing unknown people or movies")
	pf.IntVar(&f.maxExpansions, "max-expansions", 0, "stop a search after this many expanded people (0 = no limit)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&f.metrics, "metrics", false, "print search metrics to stderr on exit")

	root.AddCommand(&cobra.Command{
		Use:   "path <name1> <name2> [directory]",
		Short: "Print the connection between two people and exit",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[2:], in, out, errOut, func(a *app) error {
				return a.connect(cmd.Context(), args[0], args[1])
			})
		},
	})

	return root
}

// run resolves configuration, builds the logger and app, loads the
// dataset and hands control to body.
func run(cmd *cobra.Command, f flags, args []string, in io.Reader, out, errOut io.Writer, body func(*app) error) error {
	cfg, err := resolveConfig(cmd, f, args)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a := newApp(cfg, log, in, out, !f.quiet)
	if err := a.load(cmd.Context()); err != nil {
		log.Error("dataset load failed", zap.String("path", cfg.Data.Path), zap.Error(err))
		return err
	}
	runErr := body(a)
	if err := a.writeMetrics(errOut); err != nil && runErr == nil {
		runErr = err
	}

	return runErr
}

// resolveConfig layers explicitly set flags and the directory argument
// over the loaded configuration.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed

	if len(args) > 0 {
		cfg.Data.Path = args[0]
	}
	if changed("source") {
		cfg.Data.Source = f.source
	}
	if changed("discipline") {
		cfg.Search.Discipline = f.discipline
	}
	if changed("strict") {
		cfg.Data.StrictLinks = f.strict
	}
	if changed("max-expansions") {
		cfg.Search.MaxExpansions = f.maxExpansions
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("metrics") {
		cfg.Metrics.Enabled = f.metrics
	}

	return cfg, cfg.Validate()
}
