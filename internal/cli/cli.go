package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/citytrail/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `citytrail - simulate agents travelling a city map under a stamina budget.

MAP_PATH is a single .hcl/.yaml/.yml scenario file or a directory of them.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		mapFlag   string
		turns     int
		seed      int64
		logFormat string
		logLevel  string
		outFormat string
		showMap   bool

		config *app.Config
	)

	cmd := &cobra.Command{
		Use:           "citytrail [flags] [MAP_PATH]",
		Short:         "Simulate agents travelling a city map",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			path := mapFlag
			if path == "" && len(positional) > 0 {
				path = positional[0]
			}
			slog.Debug("Map path determined.", "path", path)
			if path == "" {
				return cmd.Help()
			}

			logFormat = strings.ToLower(logFormat)
			if logFormat != "text" && logFormat != "json" {
				return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
			}
			logLevel = strings.ToLower(logLevel)
			switch logLevel {
			case "debug", "info", "warn", "error":
			default:
				return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
			}

			cfg := app.Config{
				MapPath:   path,
				LogFormat: logFormat,
				LogLevel:  logLevel,
				Output:    strings.ToLower(outFormat),
				ShowMap:   showMap,
			}
			if cmd.Flags().Changed("turns") {
				cfg.Turns = &turns
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}

			c, err := app.NewConfig(cfg)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			config = c
			return nil
		},
	}

	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&mapFlag, "map", "m", "", "Path to the scenario file or directory.")
	flags.IntVar(&turns, "turns", app.DefaultTurns, "Number of turns to simulate (overrides the scenario).")
	flags.Int64Var(&seed, "seed", 0, "Seed for the random strategy (overrides the scenario).")
	flags.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVarP(&outFormat, "output", "o", "text", "Trace output format. Options: 'text' or 'json'.")
	flags.BoolVar(&showMap, "show-map", false, "Print the city map before the trace.")

	if err := cmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if config == nil {
		// Help was requested or no scenario was given.
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
