package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "ust",
		Short: "Uniform spanning trees via loop-erased random walks",
		Long: "ust builds a graph from a generator, samples a uniformly random spanning\n" +
			"tree with Wilson's algorithm and prints it as an edge list or an ASCII maze.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = logger
			if a.configPath != "" {
				if err := a.cfg.load(a.configPath); err != nil {
					return err
				}
				a.log.Debug("config loaded", "path", a.configPath)
			}
			return nil
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newSampleCmd(a))
	root.AddCommand(newCountCmd(a))

	return root
}

// newLogger returns a text slog.Logger on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
