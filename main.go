// bounded replays container scenarios from a YAML file and reports which
// steps diverged from their expectations.
//
// The scenario file is taken from --config, or from BOUNDED_SCENARIOS when
// the flag is absent. Each scenario builds one stack, queue, deque,
// bitarray or arena list with the requested storage placement and runs its
// steps in order; independent scenarios run in parallel.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"bounded/components"
)

const configEnv = "BOUNDED_SCENARIOS"

func main() {
	failed, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func run(args []string) (int, error) {
	var (
		configPath string
		logLevel   string
		logJSON    bool
		parallel   int
	)

	flagSet := pflag.NewFlagSet("bounded", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "scenario file (default: $"+configEnv+")")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flagSet.BoolVar(&logJSON, "log-json", false, "write JSON log records")
	flagSet.IntVarP(&parallel, "parallel", "p", 4, "scenarios run at once (0 = unlimited)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0, nil
		}
		return 0, err
	}
	if flagSet.NArg() > 0 {
		return 0, fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	if configPath == "" {
		configPath = os.Getenv(configEnv)
	}
	if configPath == "" {
		return 0, fmt.Errorf("no scenario file: pass --config or set %s", configEnv)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger := components.NewLogger(level, logJSON)

	cfg, err := components.LoadConfig(configPath)
	if err != nil {
		return 0, err
	}
	logger.Debug("loaded scenarios", slog.String("path", configPath), slog.Int("count", len(cfg.Scenarios)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := components.Run(ctx, cfg, parallel, logger)
	if err != nil {
		return 0, err
	}
	if _, err := report.WriteTo(os.Stdout); err != nil {
		return 0, err
	}
	return report.Failed(), nil
}
