package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

var errNoSettings = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current settings",
	Long:  `Shows the persisted theme, profile source and notification duration.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light|toggle]",
	Short: "Show or set the colour theme",
	Long: `Without an argument, prints the persisted theme.

  dark   - use the dark theme
  light  - use the light theme
  toggle - switch to the other theme`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

var sourceFormat string

var sourceCmd = &cobra.Command{
	Use:   "source [path]",
	Short: "Show or set the default profile source",
	Long: `Without an argument, prints the configured profile source.
With a path, stores it as data.path. The format is taken from --format,
or inferred from the extension (.db, .sqlite, .sqlite3 are SQLite).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSource,
}

func init() {
	sourceCmd.Flags().StringVar(&sourceFormat, "as", "", "source format: json or sqlite")
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(sourceCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Theme: %s\n", themeName(settingsService.UI().DarkMode))
	cmd.Println()

	data := settingsService.Data()
	cmd.Println("[Data]")
	if data.Path == "" {
		cmd.Println("  Path: (not set)")
	} else {
		cmd.Printf("  Path: %s\n", data.Path)
		cmd.Printf("  Format: %s\n", data.Format)
	}
	cmd.Println()

	cmd.Println("[Notifications]")
	cmd.Printf("  Duration: %s\n", settingsService.NotificationDuration())

	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	if len(args) == 0 {
		cmd.Printf("Theme: %s\n", themeName(settingsService.UI().DarkMode))
		return nil
	}

	var dark bool
	switch args[0] {
	case "dark":
		dark = true
		if err := settingsService.SetDarkMode(true); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
	case "light":
		if err := settingsService.SetDarkMode(false); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
	case "toggle":
		var err error
		dark, err = settingsService.ToggleDarkMode()
		if err != nil {
			return fmt.Errorf("failed to toggle theme: %w", err)
		}
	default:
		return fmt.Errorf("%w: theme must be dark, light or toggle", domain.ErrInvalidInput)
	}

	cmd.Printf("Theme set to: %s\n", themeName(dark))
	return nil
}

func runSource(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	if len(args) == 0 {
		data := settingsService.Data()
		if data.Path == "" {
			cmd.Println("No profile source configured.")
			return nil
		}
		cmd.Printf("%s (%s)\n", data.Path, data.Format)
		return nil
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}
	data := domain.DataSettings{Path: path, Format: domain.SourceFormat(sourceFormat)}
	if err := settingsService.SetData(data); err != nil {
		return fmt.Errorf("failed to set source: %w", err)
	}

	cmd.Printf("Profile source set to: %s\n", path)
	return nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
