// Command flexmldump parses a Flexml document and dumps its pipeline
// output - warnings, the cascaded layout tree, and the post-layout
// fragment model - for inspection. Its shape (urfave/cli/v3 commands, a
// YAML config layer, zap logging, a zip debug report) follows the
// teacher's fbc command even though its domain does not.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	flexml "github.com/zachzurn/flexml"
	"github.com/zachzurn/flexml/config"
	"github.com/zachzurn/flexml/fragment"
	"github.com/zachzurn/flexml/layout"
	"github.com/zachzurn/flexml/state"
)

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Reporting.Destination = reportDestination(cmd)
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug report: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()
	return ctx, nil
}

func reportDestination(cmd *cli.Command) string {
	if d := cmd.String("report"); d != "" {
		return d
	}
	return filepath.Join(os.TempDir(), "flexmldump-report.zip")
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("program ended", zap.Duration("elapsed", env.Uptime()))
	}
	env.RestoreStdLog()
	if env.Rpt != nil {
		if err := env.Rpt.Close(); err != nil {
			return fmt.Errorf("unable to close debug report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "debug report written to %s\n", env.Cfg.Reporting.Destination)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:            "flexmldump",
		Usage:           "parse and lay out a Flexml document, dumping each pipeline stage",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose logging and a zip debug report"},
			&cli.StringFlag{Name: "report", Usage: "debug report `FILE` path (used with --debug)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse SOURCE and dump the requested pipeline stage",
				ArgsUsage: "SOURCE",
				Action:    runParse,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base-path", Aliases: []string{"b"}, Usage: "directory or .zip bundle font/image paths resolve against, overriding config"},
					&cli.IntFlag{Name: "max-depth", Usage: "nesting depth guard, overriding config"},
					&cli.IntFlag{Name: "max-nodes", Usage: "node count guard, overriding config"},
					&cli.FloatFlag{Name: "page-width", Usage: "fallback solver page width in pixels, overriding config"},
					&cli.FloatFlag{Name: "page-height", Usage: "fallback solver page height in pixels, overriding config"},
					&cli.BoolFlag{Name: "tree", Usage: "dump the cascaded layout tree as XML"},
					&cli.BoolFlag{Name: "fragments", Usage: "dump the fragment model as binary Ion to stdout"},
				},
			},
			{
				Name:      "dumpconfig",
				Usage:     "dumps either default or actual configuration (YAML)",
				ArgsUsage: "DESTINATION",
				Action:    runDumpConfig,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "flexmldump: %v\n", err)
		os.Exit(1)
	}
}

func runParse(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one SOURCE argument, got %d", cmd.Args().Len())
	}
	source := cmd.Args().Get(0)

	input, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading %q: %w", source, err)
	}

	maxDepth, maxNodes := env.Cfg.Limits.MaxDepth, env.Cfg.Limits.MaxNodes
	if cmd.IsSet("max-depth") {
		maxDepth = int(cmd.Int("max-depth"))
	}
	if cmd.IsSet("max-nodes") {
		maxNodes = int(cmd.Int("max-nodes"))
	}
	basePath := env.Cfg.BasePath
	if cmd.IsSet("base-path") {
		basePath = cmd.String("base-path")
	}
	pageWidth, pageHeight := env.Cfg.Page.Width, env.Cfg.Page.Height
	if cmd.IsSet("page-width") {
		pageWidth = cmd.Float("page-width")
	}
	if cmd.IsSet("page-height") {
		pageHeight = cmd.Float("page-height")
	}

	b := flexml.New(input).
		WithName(source).
		WithMaxDepth(maxDepth).
		WithMaxNodes(maxNodes).
		WithLogger(env.Log)
	if basePath != "" {
		b = b.WithBasePath(basePath)
	}

	doc := b.Parse()
	if err := doc.Err(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	env.Log.Info("parsed document",
		zap.String("buildID", doc.BuildID()),
		zap.Int("nodes", len(doc.Nodes())),
		zap.Int("warnings", len(doc.Warnings())))

	for _, w := range doc.Warnings() {
		env.Log.Warn("warning", zap.String("kind", w.Kind.String()), zap.Int("start", w.Span.Start), zap.Int("end", w.Span.End))
	}
	if env.Rpt != nil {
		env.Rpt.Store("source", source)
	}

	tree := doc.Layout()
	layout.SolveFallback(tree, pageWidth, pageHeight)

	var wroteStage bool
	if cmd.Bool("tree") {
		xml := layout.DebugXML(tree)
		xml.Indent(2)
		if _, err := xml.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("writing layout tree: %w", err)
		}
		wroteStage = true
	}

	if cmd.Bool("fragments") {
		group := fragment.Collect(tree)
		data, err := fragment.ExportIon(group)
		if err != nil {
			return fmt.Errorf("exporting fragments: %w", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing fragments: %w", err)
		}
		if env.Rpt != nil {
			env.Rpt.StoreData("fragments.ion", data)
		}
		wroteStage = true
	}

	if !wroteStage {
		fmt.Fprintf(os.Stdout, "parsed %q: %d nodes, %d warnings, buildID %s\n",
			source, len(doc.Nodes()), len(doc.Warnings()), doc.BuildID())
	}
	return nil
}

func runDumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("too many destinations: %v", cmd.Args().Slice()[1:])
	}
	fname := cmd.Args().Get(0)

	out := os.Stdout
	if fname != "" {
		f, err := os.Create(fname)
		if err != nil {
			return multierr.Append(fmt.Errorf("unable to create destination file %q", fname), err)
		}
		defer f.Close()
		out = f
	}

	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}
