// Package main is the entry point for the runemark terminal editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/runemark/internal/config"
	"github.com/dshills/runemark/internal/editor"
	"github.com/dshills/runemark/internal/surface/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ThemePath   string
	SessionPath string
	LogFile     string
	LogLevel    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	theme, err := config.NewLoader(opts.ThemePath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load theme: %v\n", err)
		return 1
	}

	sess, err := loadSession(opts.SessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load session: %v\n", err)
		return 1
	}

	surf, err := term.NewSurface(theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := surf.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer surf.Fini()

	eng, err := editor.New(surf,
		editor.WithLogger(log),
		editor.WithContent(sess.Markup),
	)
	if err != nil {
		surf.Fini()
		fmt.Fprintf(os.Stderr, "Error: failed to initialize editor: %v\n", err)
		return 1
	}
	defer eng.Close()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		surf.Interrupt()
	}()

	a := newApp(surf, eng, log)
	a.restoreSelection(sess)

	if err := a.run(); err != nil && !errors.Is(err, errQuit) {
		surf.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.SessionPath != "" {
		if err := saveSession(opts.SessionPath, a.snapshot()); err != nil {
			surf.Fini()
			fmt.Fprintf(os.Stderr, "Error: failed to save session: %v\n", err)
			return 1
		}
	}

	return 0
}

func newLogger(opts options) (*editor.Logger, func(), error) {
	if opts.LogFile == "" {
		return editor.NullLogger, func() {}, nil
	}
	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	cfg := editor.DefaultLoggerConfig()
	cfg.Output = f
	cfg.Level = editor.ParseLogLevel(opts.LogLevel)
	return editor.NewLogger(cfg), func() { f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ThemePath, "theme", "", "Path to theme file")
	flag.StringVar(&opts.ThemePath, "t", "", "Path to theme file (shorthand)")
	flag.StringVar(&opts.SessionPath, "session", "", "Path to session file")
	flag.StringVar(&opts.SessionPath, "s", "", "Path to session file (shorthand)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Runemark - terminal rich-text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: runemark [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-B  bold        Ctrl-E  italic      Ctrl-U  underline\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-K  strike      Ctrl-Y  highlight   Alt-R   align right\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-A  select all  Ctrl-Q  quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Runemark %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
