// Package main provides the patterns-demo tool, which exercises the singleton
// providers and the user factory and prints what it observes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kristo-godari/architectural-concepts/internal/utils"
	"github.com/kristo-godari/architectural-concepts/pkg/core"
	"github.com/kristo-godari/architectural-concepts/pkg/singleton"
	"github.com/kristo-godari/architectural-concepts/pkg/users"
)

const (
	logLevelEnv     = "PATTERNS_LOG_LEVEL"
	concurrentProbe = 32
)

func main() {
	logger := newLogger(os.Stderr, os.Getenv(logLevelEnv))
	os.Exit(run(os.Args[1:], os.Stdout, logger))
}

// newLogger builds the process logger. An unparsable level is reported and
// the default level is kept.
func newLogger(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)

	if level == "" {
		return logger
	}
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithError(&core.ConfigError{Field: logLevelEnv, Value: level, Err: err}).
			Warn("ignoring log level")
		return logger
	}
	logger.SetLevel(lv)
	return logger
}

func run(args []string, out io.Writer, logger *logrus.Logger) int {
	// Library packages log through the standard logger.
	std := logrus.StandardLogger()
	std.SetOutput(logger.Out)
	std.SetFormatter(logger.Formatter)
	std.SetLevel(logger.GetLevel())

	command := "all"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "all":
		if err := singletonDemo(out); err != nil {
			logger.WithError(err).Error("singleton demo failed")
			return 1
		}
		fmt.Fprintln(out)
		factoryDemo(out, logger)
	case "singleton":
		if err := singletonDemo(out); err != nil {
			logger.WithError(err).Error("singleton demo failed")
			return 1
		}
	case "factory":
		factoryDemo(out, logger)
	case "help", "-h", "--help":
		usage(out)
	default:
		usage(out)
		fmt.Fprintf(out, "\nCommand '%s' not recognized.\n", command)
		return 1
	}
	return 0
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  patterns-demo [command]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available Commands:")
	fmt.Fprintln(out, "  all        Run every demo (default)")
	fmt.Fprintln(out, "  singleton  Compare instance identity for each singleton strategy")
	fmt.Fprintln(out, "  factory    Create users through the user factory")
	fmt.Fprintln(out, "  help       Show help information")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Set %s to change the log level.\n", logLevelEnv)
}

func singletonDemo(out io.Writer) error {
	fmt.Fprintln(out, "--- Singleton Pattern Demo ---")

	for _, strategy := range singleton.Strategies() {
		p, err := singleton.Global(strategy)
		if err != nil {
			return err
		}

		first := p.Get()
		second := p.Get()

		seen, err := utils.FanOut(context.Background(), concurrentProbe, func(_ context.Context, _ int) (*singleton.Instance, error) {
			return p.Get(), nil
		})
		if err != nil {
			return fmt.Errorf("probe %s: %w", strategy, err)
		}

		fmt.Fprintf(out, "\n%s singleton:\n", strategy)
		fmt.Fprintf(out, "Instance 1 id: %s\n", first)
		fmt.Fprintf(out, "Instance 2 id: %s\n", second)
		fmt.Fprintf(out, "Are instances the same? %t\n", first == second)
		fmt.Fprintf(out, "Distinct instances seen by %d concurrent callers: %d\n", concurrentProbe, utils.Distinct(append(seen, first)))
	}

	fmt.Fprintln(out, "\n--- End of Singleton Demo ---")
	return nil
}

func factoryDemo(out io.Writer, logger logrus.FieldLogger) {
	factory := users.NewFactory(users.WithLogger(logger))

	fmt.Fprintln(out, "--- Factory Pattern Demo ---")

	for _, req := range []struct{ tag, username string }{
		{"ADMIN", "AliceAdmin"},
		{"REGULAR", "BobRegular"},
	} {
		u, err := factory.Create(req.tag, req.username)
		if err != nil {
			logger.WithError(err).Error("create user")
			continue
		}
		if u != nil {
			fmt.Fprintf(out, "Created User: %s\n", u.Username())
			fmt.Fprintf(out, "Permissions: %s\n", u.Permissions())
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Attempting to create an unknown user type...")
	u, err := factory.Create("GUEST", "CarolGuest")
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		var argErr *core.ArgumentError
		if errors.As(err, &argErr) {
			fmt.Fprintf(out, "Caught expected error: %v\n", argErr.Err)
		}
	case err != nil:
		logger.WithError(err).Error("create user")
	case u == nil:
		fmt.Fprintln(out, "Unknown user type resulted in no user.")
	}
	fmt.Fprintln(out, "--------------------------")
}
