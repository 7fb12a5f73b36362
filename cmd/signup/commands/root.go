package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/internal/config"
	"github.com/goliatone/go-signupform/internal/logger"
	"github.com/goliatone/go-signupform/pkg/formapi"
)

// ExitError carries a process exit status without printing anything extra.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	envFile    string
	overrides  config.Overrides

	cfg    config.Config
	logger *slog.Logger
}

func (a *app) client(extra ...formapi.Option) (*formapi.Client, error) {
	opts := append(a.cfg.ClientOptions(), formapi.WithLogger(a.logger))
	return formapi.New(append(opts, extra...)...)
}

// NewRootCmd builds the signup command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "signup",
		Short:         "signup is a client for the registration form endpoint.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath, a.envFile, a.overrides)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logCfg := cfg.Logger()
			logCfg.Output = a.stderr
			a.logger = logger.New(logCfg)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the environment")
	flags.StringVar(&a.overrides.Endpoint, "endpoint", "", "form endpoint URL")
	flags.DurationVar(&a.overrides.Timeout, "timeout", 0, "timeout for each request (default 10s)")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newRegisterCmd(a),
		newOptionsCmd(a),
		newValidateCmd(a),
		newServeCmd(a),
	)
	return root
}

// ExecuteContext runs the command tree with args and returns the process exit
// status.
func ExecuteContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exit ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func shutdownTimeout(cfg config.Config) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return formapi.DefaultTimeout
}
