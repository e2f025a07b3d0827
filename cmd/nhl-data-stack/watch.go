package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pucklab/nhl-data-stack/internal/schema"
	"github.com/pucklab/nhl-data-stack/internal/template"
)

// newWatchCmd creates the "watch" subcommand for auto-resynthesis on
// config file changes.
func newWatchCmd() *cobra.Command {
	var (
		flags        configFlags
		debounce     time.Duration
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Auto-resynthesize on config file changes",
		Long: `Watch monitors the config file for changes and automatically resynthesizes.

The watch command:
- Monitors the config file given with --config
- Validates and resynthesizes the template on each change
- Debounces rapid changes to avoid excessive rebuilds

Examples:
    nhl-data-stack watch -c deploy.yaml
    nhl-data-stack watch -c deploy.yaml -o build/template.json
    nhl-data-stack watch -c deploy.yaml --debounce 1s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.configFile == "" {
				return fmt.Errorf("watch requires --config")
			}
			return runWatch(&flags, watchOptions{
				debounce:     debounce,
				outputFormat: outputFormat,
				outputFile:   outputFile,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout summary only)")

	return cmd
}

type watchOptions struct {
	debounce     time.Duration
	outputFormat string
	outputFile   string
}

// runWatch monitors the config file and resynthesizes on changes.
func runWatch(flags *configFlags, opts watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	configPath, err := filepath.Abs(flags.configFile)
	if err != nil {
		return err
	}

	// Watch the directory, not the file: editors often replace the file
	// on save, which drops a watch registered on the file itself.
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	fmt.Printf("Watching: %s\n", configPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initial synthesis
	fmt.Println("Running initial synthesis...")
	runWatchSynth(flags, opts)

	// Debounce timer
	var debounceTimer *time.Timer
	rebuildChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != configPath {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case rebuildChan <- struct{}{}:
				default:
				}
			})

		case <-rebuildChan:
			fmt.Printf("\n[%s] Change detected, resynthesizing...\n", time.Now().Format("15:04:05"))
			runWatchSynth(flags, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// runWatchSynth synthesizes, validates, and outputs the template once.
func runWatchSynth(flags *configFlags, opts watchOptions) {
	cfg, err := flags.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return
	}

	tmpl, err := synthesize(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Synthesis error: %v\n", err)
		return
	}

	schemaResult := schema.ValidateTemplate(tmpl, schema.Options{})
	for _, e := range schemaResult.Errors {
		fmt.Fprintf(os.Stderr, "Schema error: %s: %s\n", e.Resource, e.Message)
	}
	if !schemaResult.Valid {
		return
	}

	var data []byte
	switch opts.outputFormat {
	case "json":
		data, err = template.ToJSON(tmpl)
	case "yaml":
		data, err = template.ToYAML(tmpl)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", opts.outputFormat)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		return
	}

	if opts.outputFile == "" {
		fmt.Println("Synthesis successful")
		fmt.Printf("Generated %d resources\n", len(tmpl.Resources))
		return
	}

	if err := os.WriteFile(opts.outputFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		return
	}
	fmt.Printf("Synthesis successful, wrote %s\n", opts.outputFile)
}
