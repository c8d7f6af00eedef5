package threadchart

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunCLI runs the threadchart command with the given arguments, writing to
// the process's standard streams.
func RunCLI(args []string) error {
	cmd := NewCommand(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// NewCommand builds the threadchart root command.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		output     string
		title      string
		dpi        int
		noShow     bool
		table      bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "threadchart [balanced.csv not-balanced.csv]",
		Short: "Chart execution time against thread count for balanced and not-balanced runs",
		Long: `Threadchart reads two result files with Threads and Tempo columns, one for
the balanced and one for the not-balanced version of a workload, and saves a
line chart comparing them.`,
		Args:          cobra.MatchAll(cobra.MaximumNArgs(2), exactlyZeroOrTwo),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
			}
			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("title") {
				cfg.Title = title
			}
			if flags.Changed("dpi") {
				cfg.DPI = dpi
			}
			if flags.Changed("no-show") {
				cfg.Show = !noShow
			}
			if flags.Changed("table") {
				cfg.Table = table
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if len(args) == 2 {
				cfg.Balanced, cfg.NotBalanced = args[0], args[1]
			}

			log := logrus.New()
			log.SetOutput(stderr)
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			return run(cfg, log, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "",
		"YAML file with chart settings")
	flags.StringVarP(&output, "output", "o", DefaultOutput,
		"Image to write; the extension selects the format (png, jpg, tiff, svg, pdf, eps)")
	flags.StringVar(&title, "title", DefaultTitle,
		"Chart title")
	flags.IntVar(&dpi, "dpi", DefaultDPI,
		"Resolution of raster images")
	flags.BoolVar(&noShow, "no-show", false,
		"Do not open the chart after saving it")
	flags.BoolVar(&table, "table", false,
		"Print both result tables side by side")
	flags.StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")

	return cmd
}

func exactlyZeroOrTwo(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("want both result files, got only %q", args[0])
	}
	return nil
}

func run(cfg Config, log *logrus.Logger, stdout io.Writer) error {
	balanced, err := LoadTable(cfg.Balanced)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": cfg.Balanced, "rows": len(balanced)}).Debug("loaded results")
	notBalanced, err := LoadTable(cfg.NotBalanced)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": cfg.NotBalanced, "rows": len(notBalanced)}).Debug("loaded results")

	if cfg.Table {
		WriteComparison(stdout, balanced, notBalanced)
	}

	c, err := NewComparison(balanced, notBalanced, append(cfg.Options(), WithLogger(log))...)
	if err != nil {
		return err
	}
	return c.Run()
}
