package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/golectures/internal/config"
	"github.com/olehluchkiv/golectures/internal/lecture"
	"github.com/olehluchkiv/golectures/internal/logging"
)

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "golectures algorithms -verbose". We reorder args so flags
	// come first, then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("golectures", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	list := fs.Bool("list", false, "list lectures and exit")
	recordsPath := fs.String("records", "", "album records file for the records lecture")
	sourceDir := fs.String("source", "", "path inside the golectures module, for the capabilities lecture")
	logFile := fs.String("log-file", "", "log file path")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	verbose := fs.Bool("verbose", false, "mirror logs to stderr")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: golectures [flags] [lecture...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	if *list {
		printLectures(os.Stdout)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags given explicitly win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "records":
			cfg.RecordsPath = *recordsPath
		case "source":
			cfg.SourceDir = *sourceDir
		case "log-file":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", cfg.LogLevel, err)
		os.Exit(1)
	}

	var mirror io.Writer
	if *verbose {
		mirror = os.Stderr
	}
	logger, logCleanup, err := logging.Setup(cfg.LogFile, level, mirror)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env := &lecture.Env{
		Ctx:    ctx,
		Out:    os.Stdout,
		Logger: logger,
		Config: cfg,
	}
	if err := lecture.Run(env, positional); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCleanup()
		os.Exit(1)
	}
}

func printLectures(w io.Writer) {
	for _, l := range lecture.All() {
		fmt.Fprintf(w, "%-14s %s\n", l.Name, l.Title)
	}
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the lecture names).
// Flags that take a value (e.g., -records albums.csv) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-config": true, "-records": true, "-source": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
