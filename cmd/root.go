// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/task"
	"github.com/nibzard/tasklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Main runs the CLI with the process arguments and returns the exit code.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, os.Args[1:]); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(os.Stderr, "\nInterrupted\n")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Run executes the tasklist CLI on the process streams.
func Run(ctx context.Context, args []string) error {
	return RunWithStreams(ctx, args, StdStreams())
}

// app carries what every subcommand needs.
type app struct {
	cfg     *config.ConfigWithSources
	logger  *log.Logger
	streams Streams
}

// RunWithStreams executes the tasklist CLI on the given streams.
func RunWithStreams(ctx context.Context, args []string, streams Streams) error {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, streams.Out)
		return nil
	}
	if *showVersion {
		return versionCommand(streams.Out)
	}

	remainingArgs := fs.Args()
	subcommand := ""
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}
	if subcommand == "" {
		// Interactive on a terminal, a plain listing otherwise.
		subcommand = "ls"
		if ui.IsTTY(streams.Out) {
			subcommand = "tui"
		}
	}

	logger := logging.Discard()
	closeLog := func() error { return nil }
	if subcommand != "tui" || cws.Config.LogFile != "" {
		logger, closeLog, err = logging.FromConfig(cws.Config.LogSettings(), streams.Err)
		if err != nil {
			return err
		}
	}
	defer closeLog()

	a := &app{cfg: cws, logger: logger, streams: streams}
	err = a.dispatch(ctx, fs, subcommand, remainingArgs)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (a *app) dispatch(ctx context.Context, fs *flag.FlagSet, subcommand string, remainingArgs []string) error {
	streams := a.streams
	switch subcommand {
	case "add":
		return a.addCommand(remainingArgs)
	case "ls", "list":
		return a.lsCommand(remainingArgs)
	case "toggle", "done":
		return a.toggleCommand(remainingArgs)
	case "rm", "delete":
		return a.rmCommand(remainingArgs)
	case "clear":
		return a.clearCommand(remainingArgs)
	case "stats":
		return a.statsCommand(remainingArgs)
	case "import":
		return a.importCommand(remainingArgs)
	case "export":
		return a.exportCommand(remainingArgs)
	case "validate":
		return a.validateCommand(remainingArgs)
	case "config":
		return a.configCommand(remainingArgs)
	case "init":
		return a.initCommand(remainingArgs)
	case "tui":
		return a.tuiCommand(ctx, remainingArgs)
	case "version":
		return versionCommand(streams.Out)
	case "help":
		printUsage(fs, streams.Out)
		return nil
	default:
		printUsage(fs, streams.Err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore opens the configured task file. A file that exists but cannot
// be read is an error so that later saves never overwrite it.
func (a *app) openStore() (*task.Store, error) {
	path := a.cfg.Config.TasksFile
	store := task.Open(path, task.WithLogger(a.logger))
	if err := store.LastErr(); err != nil && !errors.Is(err, task.ErrNullCollection) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return store, nil
}

// checkSaved reports the error from the last save, if any.
func checkSaved(store *task.Store) error {
	if err := store.LastErr(); err != nil {
		return fmt.Errorf("saving %s: %w", store.Path(), err)
	}
	return nil
}

// newFlagSet returns a flag set for a subcommand that reports to the error stream.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("tasklist "+name, flag.ContinueOnError)
	fs.SetOutput(a.streams.Err)
	return fs
}

func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := a.newFlagSet("tui")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	if !ui.IsTTY(a.streams.Out) {
		return ui.ErrNotTTY
	}
	return ui.RunTUI(ctx, store,
		ui.WithConfirm(a.cfg.Config.Confirm),
		ui.WithIO(a.streams.In, a.streams.Out),
	)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasklist version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasklist - a small to-do list kept in a JSON file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [global options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                 Launch the terminal UI (default on a terminal)")
	fmt.Fprintln(w, "  add <text...>       Add a pending task")
	fmt.Fprintln(w, "  ls                  List tasks (default when not on a terminal)")
	fmt.Fprintln(w, "  toggle <id>         Flip a task between pending and completed (alias: done)")
	fmt.Fprintln(w, "  rm <id>             Delete a task")
	fmt.Fprintln(w, "  clear [-y]          Delete all tasks")
	fmt.Fprintln(w, "  stats               Show task counts")
	fmt.Fprintln(w, "  import <path>       Replace tasks with the contents of a file")
	fmt.Fprintln(w, "  export <path>       Write tasks to a file (.json is appended)")
	fmt.Fprintln(w, "  validate [path]     Check a task file against the schema")
	fmt.Fprintln(w, "  config              Show the effective configuration")
	fmt.Fprintln(w, "  init [-force]       Write an example tasklist.toml")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -json        Print the tasks as JSON")
	fmt.Fprintln(w, "  -pending     Only pending tasks")
	fmt.Fprintln(w, "  -completed   Only completed tasks")
}

// parseID parses a task id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
