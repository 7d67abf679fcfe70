// Package cli is the non-interactive command line. Each subcommand runs one
// service command and renders the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	json "github.com/goccy/go-json"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/logging"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// usageError is a mistake on the command line. hint is printed after the
// message; an empty msg means the help text already said it all.
type usageError struct {
	msg  string
	hint string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// env is what every subcommand shares: settings, logger and a lazily opened
// service.
type env struct {
	v          *viper.Viper
	configPath string
	noColor    bool
	out        base.OutputOptions

	cfg     config.Config
	log     *slog.Logger
	svc     *app.Service
	closers []func() error
}

func newEnv() *env {
	return &env{v: viper.New(), log: logging.Discard()}
}

// setup resolves configuration and the logger. It runs before any subcommand.
func (e *env) setup() error {
	ui.SetColorForcing(false, e.noColor)
	if e.configPath != "" {
		e.v.AddConfigPath(e.configPath)
	}
	cfg, err := config.Load(e.v)
	if err != nil {
		return err
	}
	log, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = log
	e.closers = append(e.closers, closer.Close)
	ui.SetTheme(cfg.Theme)
	return nil
}

// service opens the configured backend on first use.
func (e *env) service(ctx context.Context) (*app.Service, error) {
	if e.svc != nil {
		return e.svc, nil
	}
	svc, closeFn, err := app.Open(ctx, e.cfg, e.log)
	if err != nil {
		return nil, err
	}
	e.svc = svc
	e.closers = append(e.closers, closeFn)
	return svc, nil
}

func (e *env) close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// Run executes the command line in args and returns the process exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	e := newEnv()
	root := newRoot(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err != nil {
		e.log.Error("command failed", "args", args, "err", err)
	}
	if cerr := e.close(); err == nil && cerr != nil {
		err = cerr
	}
	if err == nil {
		return ExitOK
	}

	code := exitCode(err)
	if e.out.JSON {
		b, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(stdout, string(b))
		return code
	}
	var ue *usageError
	if errors.As(err, &ue) {
		if ue.msg != "" {
			ui.Fail(stderr, ue.msg)
		}
		if ue.hint != "" {
			fmt.Fprintln(stderr, ui.C(ui.Current().Muted, ue.hint))
		}
		return code
	}
	ui.Fail(stderr, err.Error())
	return code
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case errors.As(err, &ue):
		return ExitUsage
	case errors.Is(err, config.ErrInvalid):
		return ExitUsage
	}
	return ExitFailure
}

// parseIndex turns a 1-based position typed by the user into a list index.
func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("not a number: %s", arg)
	}
	if i < 1 || i > n {
		return 0, &usageError{
			msg:  fmt.Sprintf("index out of range: have %d, got %d", n, i),
			hint: "Hint: run `todo ls` to see valid indexes",
		}
	}
	return i - 1, nil
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}
