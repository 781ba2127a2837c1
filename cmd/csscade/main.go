package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sebieire/csscade/batch"
	"github.com/sebieire/csscade/config"
	"github.com/sebieire/csscade/css"
	"github.com/sebieire/csscade/merge"
)

// env is the program environment prepared before command execution.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

var appEnv env

// initializeAppContext prepares application context before command execution
// but after command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if appEnv.cfg, err = config.LoadConfiguration(cmd.String("config")); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		appEnv.cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if appEnv.log, err = appEnv.cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	appEnv.log.Debug("Program started", zap.Strings("args", os.Args))
	return ctx, nil
}

func destroyAppContext(_ context.Context, _ *cli.Command) error {
	if appEnv.log != nil {
		appEnv.log.Sync() //nolint:errcheck
	}
	return nil
}

// readDeclarations returns the declaration text for a flag value: either the
// value itself or, when prefixed with '@', the contents of the named file.
func readDeclarations(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}
	data, err := os.ReadFile(value[1:])
	if err != nil {
		return "", fmt.Errorf("unable to read declarations from '%s': %w", value[1:], err)
	}
	return string(data), nil
}

// runMerge merges override declarations into source declarations and writes
// the result to stdout.
func runMerge(_ context.Context, cmd *cli.Command) error {
	srcText, err := readDeclarations(cmd.String("source"))
	if err != nil {
		return err
	}
	ovrText, err := readDeclarations(cmd.String("override"))
	if err != nil {
		return err
	}

	selector := cmd.String("selector")
	if selector != "" {
		sc := css.ClassifySelector(selector)
		if !sc.Mergeable {
			appEnv.log.Warn("Selector is not eligible for class-level merging",
				zap.String("selector", selector),
				zap.String("kind", sc.Kind.String()))
		}
	}

	parser := css.NewParser(appEnv.log)
	source, warnings := parser.ParseBlock(srcText)
	for _, w := range warnings {
		appEnv.log.Warn(w)
	}
	override, warnings := parser.ParseBlock(ovrText)
	for _, w := range warnings {
		appEnv.log.Warn(w)
	}

	opts := appEnv.cfg.Merge.EngineOptions()
	if s := cmd.String("important"); s != "" {
		opts.Important = merge.ImportantStrategy(s)
	}
	if s := cmd.String("shorthand"); s != "" {
		var ok bool
		if opts.Shorthand, ok = merge.ParseShorthandStrategy(s); !ok {
			appEnv.log.Warn("Unknown shorthand strategy, using 'smart'", zap.String("strategy", s))
		}
	}

	engine := merge.NewEngine(appEnv.log, opts)
	result := engine.MergeWith(source, override, opts.Important)

	for _, msg := range result.Info {
		appEnv.log.Info(msg)
	}
	for _, msg := range result.Warnings {
		appEnv.log.Warn(msg)
	}

	if selector != "" {
		fmt.Print(css.FormatRule(selector, result.Properties))
	} else {
		fmt.Print(result.Properties.String())
	}
	return nil
}

// runBatch merges pairs of files listed as arguments (source1 override1
// source2 override2 ...) concurrently and writes each result to stdout.
func runBatch(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("batch requires an even number of file arguments (source override pairs), got %d", len(args))
	}

	parser := css.NewParser(appEnv.log)
	jobs := make([]batch.Job, 0, len(args)/2)
	var errs error
	for i := 0; i+1 < len(args); i += 2 {
		srcData, err := os.ReadFile(args[i])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read '%s': %w", args[i], err))
			continue
		}
		ovrData, err := os.ReadFile(args[i+1])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read '%s': %w", args[i+1], err))
			continue
		}
		source, _ := parser.ParseBlock(string(srcData))
		override, _ := parser.ParseBlock(string(ovrData))
		jobs = append(jobs, batch.Job{Source: source, Override: override})
	}
	if errs != nil {
		return errs
	}

	engine := merge.NewEngine(appEnv.log, appEnv.cfg.Merge.EngineOptions())
	processor := batch.NewProcessor(engine, appEnv.cfg.Merge.Workers, appEnv.log)

	results, err := processor.Process(ctx, jobs)
	if err != nil {
		return err
	}
	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		for _, msg := range result.Warnings {
			appEnv.log.Warn(msg)
		}
		fmt.Print(result.Properties.String())
	}

	stats := processor.Stats()
	appEnv.log.Debug("Batch finished",
		zap.Int("operations", stats.Operations),
		zap.Duration("elapsed", stats.Elapsed))
	return nil
}

// outputConfiguration dumps the active configuration as YAML.
func outputConfiguration(_ context.Context, cmd *cli.Command) error {
	cfg := appEnv.cfg
	if cmd.Bool("default") {
		cfg = config.Default()
	}
	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(_ context.Context, _ *cli.Command, err error) {
	if appEnv.log != nil {
		appEnv.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "csscade",
		Usage:           "merges CSS declarations with shorthand and !important conflict resolution",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:         "merge",
				Usage:        "Merges override declarations into source declarations",
				OnUsageError: usageErrorHandler,
				Action:       runMerge,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Required: true,
						Usage: "source `DECLARATIONS` (CSS text, or @FILE to read from file)"},
					&cli.StringFlag{Name: "override", Aliases: []string{"o"}, Required: true,
						Usage: "override `DECLARATIONS` (CSS text, or @FILE to read from file)"},
					&cli.StringFlag{Name: "selector",
						Usage: "wrap output in a rule for `SELECTOR` and report merge eligibility"},
					&cli.StringFlag{Name: "important",
						Usage: "importance `STRATEGY`: match, respect, override, force, strip"},
					&cli.StringFlag{Name: "shorthand",
						Usage: "shorthand `STRATEGY`: cascade, smart, expand"},
				},
			},
			{
				Name:         "batch",
				Usage:        "Merges file pairs concurrently",
				OnUsageError: usageErrorHandler,
				Action:       runBatch,
				ArgsUsage:    "SOURCE OVERRIDE [SOURCE OVERRIDE ...]",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
