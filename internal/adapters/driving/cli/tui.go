package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui"
	"github.com/custodia-labs/profdir/internal/logger"
)

// runApp runs the TUI. Tests replace it to avoid taking over the terminal.
var runApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive profile browser.

Controls:
  ↑/k, ↓/j - Navigate profiles
  /        - Search
  a, c, t  - Cycle area, city and technology filters
  x        - Clear filters
  Enter    - Open profile
  r        - Recommend (in a profile)
  m        - Send message (in a profile)
  ctrl+s   - Send (while composing)
  Esc      - Back / Cancel
  d        - Toggle dark mode
  ?        - Toggle help
  q        - Quit

With --watch, a JSON source is reloaded whenever the file changes.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if settingsService == nil {
		return errNoSettings
	}

	s, err := openSession(cmd, flagWatch)
	if err != nil {
		return err
	}

	// The alt screen owns stderr; logs go to --log-file or nowhere.
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	ports := tui.NewPorts(s.Page, settingsService)
	ports.Images = s.Images
	ports.Notifications = s.Notifications
	ports.Watcher = s.Watcher
	ports.Reload = s.Reload

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
