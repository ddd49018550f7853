package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/utcdate/foundation/core/config"
	utcerror "github.com/msto63/utcdate/foundation/core/error"
	utclog "github.com/msto63/utcdate/foundation/core/log"
	"github.com/msto63/utcdate/foundation/utils/timex"
	"github.com/msto63/utcdate/pkg/core/logging"
	"github.com/msto63/utcdate/pkg/utcdate"
)

// app carries the flags and the state resolved before a subcommand runs.
type app struct {
	cfgFile   string
	verbose   bool
	now       string
	logFormat string
	noColor   bool

	settings config.Settings
	logger   *utclog.Logger
	calendar *utcdate.Calendar
	out      *printer
}

// NewRootCmd builds the command tree. Every call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		settings: config.DefaultSettings(),
		logger:   utclog.Discard(),
		calendar: utcdate.Default(),
	}

	root := &cobra.Command{
		Use:   "utcdate",
		Short: "Get, set, shift and convert UTC datetime strings",
		Long: `utcdate works on datetimes of the form "YYYY-MM-DD hh:mm:ss" read as UTC.

Months are zero-based (0 = January) wherever a month number is read or
written. Commands that take an optional datetime use now when it is omitted;
--now pins that instant.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./utcdate.toml, then $HOME/.config/utcdate/config.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	flags.StringVar(&a.now, "now", "", `pin "now" to this UTC datetime`)
	flags.StringVar(&a.logFormat, "log-format", "", "log format: json, text or logfmt (default from config)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newShiftCmd(a, "add"),
		newShiftCmd(a, "remove"),
		newZoneCmd(a, "toutc"),
		newZoneCmd(a, "fromutc"),
		newValidateCmd(a),
		newOpsCmd(a),
		newVersionCmd(a),
	)

	return root
}

// Execute runs the CLI against os.Args and reports a failure on stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		reportError(root.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status: 2 for rejected
// datetime input, 3 for configuration problems, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := utcerror.As(err); ok {
		return e.Code().ExitCode()
	}
	return 1
}

func reportError(w io.Writer, err error) {
	p := newPrinter(w, false)
	if f, ok := w.(*os.File); ok && f == os.Stderr {
		p = newPrinter(w, colorEnabled())
	}
	p.errorf(err)
}

func colorEnabled() bool {
	_, off := os.LookupEnv("NO_COLOR")
	return !off
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	resolver := timex.DefaultResolver()

	settings, err := config.LoadSettings(a.cfgFile, resolver)
	if err != nil {
		return err
	}
	a.settings = settings

	level := settings.General.LogLevel
	if a.verbose {
		level = "debug"
	}
	format := settings.General.LogFormat
	if a.logFormat != "" {
		if _, err := utclog.ParseFormat(a.logFormat); err != nil {
			return utcerror.Wrap(err, "invalid --log-format").
				WithCode(utcerror.CodeInvalidInput).
				WithOperation("cmd.setup")
		}
		format = a.logFormat
	}

	logCfg := logging.DefaultLoggerConfig("utcdate")
	logCfg.Level = level
	logCfg.Format = format
	logCfg.Output = cmd.ErrOrStderr()
	a.logger = logging.NewLogger(logCfg)

	opts := []utcdate.Option{
		utcdate.WithResolver(resolver),
		utcdate.WithLogger(a.logger),
	}
	if a.now != "" {
		pinned, err := utcdate.Parse(a.now)
		if err != nil {
			return utcerror.Wrap(err, "invalid --now").WithOperation("cmd.setup")
		}
		opts = append(opts, utcdate.WithClock(utcdate.FixedClock(pinned)))
	}
	a.calendar = utcdate.New(opts...)

	a.out = newPrinter(cmd.OutOrStdout(), settings.Output.Color && !a.noColor && colorEnabled())

	a.logger.Debug("configuration resolved", utclog.Fields{
		"command":      cmd.Name(),
		"config":       settings.Source,
		"default_zone": settings.General.DefaultZone,
	})
	return nil
}

// run wraps a command body with a timer so every invocation is traced at
// debug level with its duration and outcome.
func (a *app) run(body func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.logger.StartTimer(cmd.Name()).WithField("args", len(args))
		err := body(cmd, args)
		timer.StopWithError(err)
		if err != nil {
			a.logger.LogError(err)
		}
		return err
	}
}

func invalidInput(op, format string, args ...interface{}) error {
	return utcerror.New(fmt.Sprintf(format, args...)).
		WithCode(utcerror.CodeInvalidInput).
		WithOperation("cmd." + op)
}
