// Package cli is the todoboard command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/config"
	"github.com/idilsaglam/todoboard/internal/export"
	"github.com/idilsaglam/todoboard/internal/logging"
	"github.com/idilsaglam/todoboard/internal/todo"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errNoTerminal = errors.New("the board needs an interactive terminal; use 'todoboard replay' for scripted runs")

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCode ends the command with a code after the command reported the
// failure itself.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// app holds the streams and the persistent flag values.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	theme      string
	logLevel   string
	logFile    string
	exportPath string
	noColor    bool
	forceColor bool
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
// SIGINT and SIGTERM cancel the running command.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}

	r := a.renderer(a.theme)
	var ue usageError
	if errors.As(err, &ue) {
		r.Fail(err.Error())
		fmt.Fprintln(stderr, "Run 'todoboard --help' for usage.")
		return ExitUsage
	}
	r.Fail(err.Error())
	return ExitError
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todoboard",
		Short: "A two-pane terminal todo board",
		Long: `todoboard keeps a todo list for the length of one session.

The left pane lists every todo with its status; the right pane shows the
same todos filtered by status. Run without a subcommand to open the board.

Examples:
  # Open the board
  todoboard

  # Open the board and write the final list to a file on quit
  todoboard --export todos.json

  # Replay a scripted session and print both lists
  todoboard replay demo.yaml --group`,
		Args:              usageArgs(cobra.NoArgs),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.checkFlags,
		RunE:              a.runBoard,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Config file (default: user and project files, or $"+config.EnvConfig+")")
	pf.StringVar(&a.theme, "theme", "", "Theme: "+strings.Join(ui.ThemeNames(), "|"))
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.StringVar(&a.logFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&a.exportPath, "export", "", "Write the final todo list to this file (.json, .yaml)")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colors")
	pf.BoolVar(&a.forceColor, "force-color", false, "Emit colors even when output is not a terminal")

	root.AddCommand(a.replayCommand(), a.configCommand())
	return root
}

// checkFlags rejects flag values no layer could make sense of.
func (a *app) checkFlags(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("theme") && !slices.Contains(ui.ThemeNames(), strings.ToLower(a.theme)) {
		return usageError{fmt.Errorf("unknown theme %q (want %s)", a.theme, strings.Join(ui.ThemeNames(), ", "))}
	}
	if flags.Changed("log-level") {
		switch strings.ToLower(a.logLevel) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return usageError{fmt.Errorf("unknown log level %q", a.logLevel)}
		}
	}
	if a.noColor && a.forceColor {
		return usageError{errors.New("--no-color and --force-color are mutually exclusive")}
	}
	return nil
}

// config loads the layered configuration and applies flag overrides.
func (a *app) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = strings.ToLower(a.theme)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("export") {
		cfg.Export = a.exportPath
	}
	cfg.Finalize()
	return cfg, nil
}

func (a *app) colorMode() ui.ColorMode {
	switch {
	case a.noColor:
		return ui.ColorNever
	case a.forceColor:
		return ui.ColorAlways
	}
	return ui.ColorAuto
}

func (a *app) renderer(theme string) *ui.Renderer {
	if theme == "" {
		theme = config.DefaultTheme
	}
	r := ui.NewRenderer(a.stdout, theme, a.colorMode())
	r.SetErrWriter(a.stderr)
	return r
}

// logger builds the session logger. Without a log file, output goes to
// fallback, or nowhere when fallback is nil.
func (a *app) logger(cfg config.Config, fallback io.Writer) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Level:           cfg.Log.Level,
		Format:          cfg.Log.Format,
		File:            cfg.Log.File,
		Fallback:        fallback,
		ReportTimestamp: cfg.Log.File != "",
	})
}

// exportItems writes the snapshot when an export path is configured.
func (a *app) exportItems(cfg config.Config, lg *logging.Logger, items []todo.Item, r *ui.Renderer) error {
	if cfg.Export == "" {
		return nil
	}
	if err := export.WriteFile(cfg.Export, export.New(lg.Session, items)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	lg.Info("snapshot exported", "path", cfg.Export, "items", len(items))
	r.OK("exported " + cfg.Export)
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
