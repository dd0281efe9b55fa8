package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/docopt/docopt-go"

	"devhub/internal/catalog"
	"devhub/internal/config"
	"devhub/internal/logging"
	"devhub/internal/telemetry"
	"devhub/internal/ui"
)

const usage = `devhub - a terminal dashboard

Usage:
	devhub [options]
	devhub init [--config=<path>]
	devhub -h | --help

Options:
	-c <path>, --config=<path>     Config file (defaults to the user config dir).
	-n <name>, --name=<name>       Name shown in the greeting.
	-d <path>, --data=<path>       TOML file replacing the built-in sample data.
	-l <path>, --log-file=<path>   Log file.
	-v, --verbose                  Log at debug level.
	-h, --help                     Show this screen.
`

// cliArgs are the parsed command line flags. Empty strings mean "not given".
type cliArgs struct {
	init       bool
	configPath string
	name       string
	data       string
	logFile    string
	verbose    bool
}

// parseArgs parses argv (without the program name) against usage.
func parseArgs(argv []string, parser *docopt.Parser) (cliArgs, error) {
	var args cliArgs
	opts, err := parser.ParseArgs(usage, argv, "")
	if err != nil {
		return args, err
	}
	args.init, _ = opts.Bool("init")
	args.configPath, _ = opts.String("--config")
	args.name, _ = opts.String("--name")
	args.data, _ = opts.String("--data")
	args.logFile, _ = opts.String("--log-file")
	args.verbose, _ = opts.Bool("--verbose")
	return args, nil
}

// applyFlags overrides config values with the flags that were given.
func applyFlags(cfg *config.Config, args cliArgs) error {
	if args.name != "" {
		cfg.Name = args.name
	}
	if args.data != "" {
		cfg.DataFile = args.data
	}
	if args.logFile != "" {
		cfg.LogFile = args.logFile
	}
	if args.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg.Validate()
}

func writeDefaultConfig(path string) error {
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

func run(args cliArgs) error {
	if args.init {
		return writeDefaultConfig(args.configPath)
	}

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, args); err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	tp.Install()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("trace shutdown failed", "err", err)
		}
	}()

	cat, err := catalog.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	tick, err := cfg.TickInterval()
	if err != nil {
		return err
	}

	model, err := ui.NewAppModel(ui.Options{
		Name:    cfg.Name,
		Tick:    tick,
		Goal:    cfg.Habit.Goal,
		Fuzzy:   cfg.Lists.Fuzzy,
		Catalog: cat,
		Logger:  logger,
		Tracer:  tp.Tracer("devhub/searchlist"),
	})
	if err != nil {
		return err
	}

	logger.Info("starting", "name", cfg.Name, "tracing", tp.Enabled(), "data", cfg.DataFile)
	_, err = tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen()).Run()
	return err
}

func main() {
	args, err := parseArgs(os.Args[1:], &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
