package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/menukit/internal/config"
	"github.com/zjrosen/menukit/internal/definition"
	"github.com/zjrosen/menukit/internal/log"
	"github.com/zjrosen/menukit/internal/watcher"
)

var (
	renderFile  string
	renderOut   string
	renderWatch bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a menu definition to HTML",
	Long: `Render the menu defined in a YAML file to an HTML string.

Examples:
  # Render to stdout
  menukit render -f menu.yaml

  # Render to a file
  menukit render -f menu.yaml -o nav.html

  # Re-render whenever the definition changes
  menukit render -f menu.yaml -o nav.html --watch`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "menu.yaml",
		"menu definition file")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "",
		"write output to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false,
		"keep running and re-render when the definition changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := renderOnce(); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	w, err := watcher.New(watcher.Config{
		Path:        renderFile,
		DebounceDur: time.Duration(cfg.WatchDebounceMS) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	log.Info(log.CatWatch, "watching definition", "path", renderFile)

	for range onChange {
		// A broken intermediate save shouldn't kill watch mode.
		if err := renderOnce(); err != nil {
			log.ErrorErr(log.CatRender, "render failed", err, "path", renderFile)
		}
	}
	return nil
}

func renderOnce() error {
	// Options thread through every definition level, nested menus included.
	m, err := definition.LoadWithOptions(renderFile, definition.Options{
		URLPrefix:   cfg.URLPrefix,
		ActiveClass: cfg.ActiveClass,
	})
	if err != nil {
		return err
	}

	out, err := m.Render()
	if err != nil {
		return fmt.Errorf("rendering menu: %w", err)
	}
	log.Debug(log.CatRender, "rendered menu", "items", m.Count(), "bytes", len(out))

	if renderOut == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output %s: %w", renderOut, err)
	}
	return nil
}
