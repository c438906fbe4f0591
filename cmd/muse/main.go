package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/lexlabs/muse/internal/adapters/fs"
	musehttp "github.com/lexlabs/muse/internal/adapters/http"
	"github.com/lexlabs/muse/internal/app"
	"github.com/lexlabs/muse/internal/cliconfig"
	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/render"
	"github.com/lexlabs/muse/pkg/log"
)

const helpDescription = `
Look up word associations from a Datamuse-style service and group the results.

Highlights:
  - Rhymes, similar-meaning, sounds-like and spelled-like lookups.
  - Group results by syllable count, score, first letter, or any result field.
  - Watch a terms file and re-run the lookup on every save.
  - Keep a saved-words list for the session with --interactive.

Configuration precedence: flags > MUSE_* environment > config file.
`

var exampleUsage = strings.TrimSpace(`
  muse orange
  muse orange --rel means-like --max 20
  muse orange --group-by syllables --json
  muse --watch terms.txt --rel rhymes
  muse fruit --rel similar --interactive
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "muse [term]",
		Short:   "Look up word associations and group the results",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.muse/config.toml),
			// then env, then flag overrides via the changed set.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			var term string
			if len(args) > 0 {
				term = args[0]
			}
			if term == "" && cfg.WatchPath == "" {
				return fmt.Errorf("a term is required unless --watch is set")
			}

			relation, err := domain.ParseRelation(cfg.Relation)
			if err != nil {
				return err
			}

			logger := log.NewZerologAdapterWithLogger(cliconfig.Logger(cfg.LogLevel))

			source := musehttp.NewClient(cfg.ServiceURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
			pipeline := app.NewPipeline(source, logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.WatchPath != "" {
				watcher := app.NewWatcher(app.WatchConfig{
					Path:     cfg.WatchPath,
					Relation: relation,
					Max:      cfg.MaxResults,
					GroupBy:  cfg.GroupBy,
					JSON:     cfg.JSON,
					Debounce: cfg.Debounce,
				}, pipeline, os.Stdout, logger)
				return watcher.Run(ctx)
			}

			query := domain.Query{Term: term, Relation: relation, Max: cfg.MaxResults}

			if err := runLookup(ctx, pipeline, query, cfg); err != nil {
				return err
			}

			if cfg.Interactive {
				return app.NewSession(os.Stdin, os.Stdout, logger).Run(ctx)
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.muse/config.toml)")
	root.Flags().StringVar(&cfg.Relation, "rel", cfg.Relation, "relation to look up (rhymes, means-like, sounds-like, spelled-like)")
	root.Flags().IntVar(&cfg.MaxResults, "max", cfg.MaxResults, "maximum number of results")
	root.Flags().StringVar(&cfg.GroupBy, "group-by", cfg.GroupBy, "group results by key (syllables, score, first-letter, or a result field)")
	root.Flags().BoolVar(&cfg.JSON, "json", cfg.JSON, "emit JSON instead of text")
	root.Flags().StringVar(&cfg.OutPath, "out", cfg.OutPath, "write results to a JSON file")
	root.Flags().StringVar(&cfg.WatchPath, "watch", cfg.WatchPath, "watch a terms file and re-run the lookup on change")
	root.Flags().BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "enter the saved-words session after the lookup")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay between a watched-file change and the re-run")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	root.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, fmt.Sprintf("base service URL (defaults to %s)", cliconfig.DefaultServiceURL))
	if err := root.Flags().MarkHidden("service-url"); err != nil {
		fmt.Fprintln(os.Stderr, "failed to hide service-url flag:", err)
	}

	if err := root.Execute(); err != nil {
		log.NewZerologAdapter().Error("muse", log.Err(err))
		os.Exit(1)
	}
}

// runLookup executes a one-shot lookup, renders it to stdout, and exports it
// when --out is set.
func runLookup(ctx context.Context, pipeline *app.Pipeline, query domain.Query, cfg cliconfig.Config) error {
	if cfg.GroupBy != "" {
		res, err := pipeline.LookupGrouped(ctx, query, cfg.GroupBy)
		if err != nil {
			return err
		}
		if cfg.OutPath != "" {
			if err := fs.NewExporter().Export(ctx, cfg.OutPath, res); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		}
		if cfg.JSON {
			return render.GroupsJSON(os.Stdout, res)
		}
		return render.Groups(os.Stdout, res)
	}

	words, err := pipeline.Lookup(ctx, query)
	if err != nil {
		return err
	}
	if cfg.OutPath != "" {
		if err := fs.NewExporter().Export(ctx, cfg.OutPath, words); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	if cfg.JSON {
		return render.WordsJSON(os.Stdout, words)
	}
	return render.Words(os.Stdout, words)
}
