// Package cli provides the Cobra commands of the profdir binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
	"github.com/custodia-labs/profdir/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Backend builds the services the commands run against.
// The composition root supplies it with SetBackend.
type Backend struct {
	// Settings opens the persisted settings in configDir.
	// An empty configDir selects the default location.
	Settings func(configDir string) (driving.SettingsService, error)

	// Open loads the profile source and wires a session around it.
	// watch asks for a watcher on the source when the format supports one.
	Open func(ctx context.Context, data domain.DataSettings, settings driving.SettingsService, watch bool) (*Session, error)

	// Import copies a JSON profile file into a SQLite database and
	// returns the number of profiles written.
	Import func(ctx context.Context, jsonPath, sqlitePath string) (int, error)
}

// Session is a loaded directory and the page state around it.
type Session struct {
	Directory     driving.DirectoryService
	Page          driving.PageController
	Notifications tui.NotificationSource
	Images        driven.ImageResolver

	// Watcher is nil unless watching was requested and supported.
	Watcher driven.ProfileWatcher

	// Reload re-reads the source into Directory.
	Reload func(ctx context.Context) (int, error)

	// Location describes the loaded source.
	Location string

	// Close releases the source, watcher and timers.
	Close func() error
}

var (
	backend         *Backend
	settingsService driving.SettingsService
	session         *Session
	logCloser       io.Closer
)

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
	flagData      string
	flagFormat    string
	flagLogFile   string
	flagWatch     bool
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "profdir",
	Short: "Browse a directory of professional profiles",
	Long: `profdir is a terminal directory of professional profiles.

Run without a subcommand on a terminal to open the interactive browser.
When output is not a terminal the matching profiles are printed instead.

The profile source is taken from --data, or from data.path in
~/.profdir/config.toml (see "profdir source").`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.profdir)")
	flags.StringVar(&flagData, "data", "", "profile source path (overrides data.path)")
	flags.StringVar(&flagFormat, "format", "", "profile source format: json or sqlite (default from extension)")
	flags.StringVar(&flagLogFile, "log-file", "", "append logs to this file")
	flags.BoolVar(&flagWatch, "watch", false, "reload the profiles when the JSON source changes")
}

// SetBackend sets the service factory used by every command.
func SetBackend(b *Backend) {
	backend = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases everything it opened.
func Execute(ctx context.Context) error {
	defer teardown()
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if flagLogFile != "" {
		closer, err := logger.OpenFile(flagLogFile)
		if err != nil {
			return err
		}
		logCloser = closer
	}

	if backend == nil || backend.Settings == nil {
		return nil
	}
	s, err := backend.Settings(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settingsService = s
	return nil
}

// teardown closes the session and the log file.
func teardown() {
	if session != nil && session.Close != nil {
		if err := session.Close(); err != nil {
			logger.Warn("Closing session: %v", err)
		}
	}
	session = nil

	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// dataSettings resolves the profile source from flags and settings.
func dataSettings() (domain.DataSettings, error) {
	var data domain.DataSettings
	if settingsService != nil {
		data = settingsService.Data()
	}
	if flagData != "" {
		data = domain.DataSettings{Path: flagData}
	}
	if flagFormat != "" {
		format := domain.SourceFormat(flagFormat)
		if !format.IsValid() {
			return data, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, flagFormat)
		}
		data.Format = format
	}
	if data.Path == "" {
		return data, errNoSource
	}
	return data, nil
}

var errNoSource = errors.New(`no profile source configured: pass --data or run "profdir source <path>"`)

// openSession loads the profile source once per invocation.
func openSession(cmd *cobra.Command, watch bool) (*Session, error) {
	if session != nil {
		return session, nil
	}
	if backend == nil || backend.Open == nil {
		return nil, errors.New("profile backend not configured")
	}

	data, err := dataSettings()
	if err != nil {
		return nil, err
	}

	s, err := backend.Open(cmd.Context(), data, settingsService, watch)
	if err != nil {
		return nil, fmt.Errorf("opening profiles: %w", err)
	}
	logger.Debug("Loaded %d profiles from %s", s.Directory.Count(), s.Location)
	session = s
	return s, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runTUI(cmd, args)
	}
	return runList(cmd, args)
}
