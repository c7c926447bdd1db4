package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/adapters/driven/clock"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
	"github.com/custodia-labs/profdir/internal/core/services"
)

func testProfiles() []domain.Profile {
	return []domain.Profile{
		{
			ID: "1", Name: "Ana Silva", Role: "Frontend Developer", Area: "Tech", Location: "São Paulo",
			Summary:     "Builds accessible interfaces.",
			Skills:      []string{"JavaScript", "React", "CSS", "Testing Library", "Vite"},
			SoftSkills:  []string{"Mentoring"},
			Experiences: []domain.Experience{{Role: "Developer", Employer: "Loja Azul", Start: "2021", End: "Present"}},
			Education:   []domain.Education{{Course: "Computer Science", Institution: "USP", Year: "2020"}},
			Languages:   []domain.Language{{Name: "English", Level: "Fluent"}},
		},
		{ID: "2", Name: "Bruno Costa", Role: "Product Designer", Area: "Design", Location: "Recife",
			Skills: []string{"Figma"}},
		{ID: "3", Name: "Carla Souza", Role: "Backend Engineer", Area: "Tech", Location: "Recife",
			Skills: []string{"Go", "Java"}},
	}
}

// testBackend records what the commands asked of it.
type testBackend struct {
	config   *memory.ConfigStore
	settings *services.SettingsService
	profiles []domain.Profile

	opened    *domain.DataSettings
	watched   bool
	closed    bool
	imported  []string
	importErr error
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	config := memory.NewConfigStore()
	require.NoError(t, config.Set("data.path", "/data/profiles.json"))
	return &testBackend{
		config:   config,
		settings: services.NewSettingsService(config),
		profiles: testProfiles(),
	}
}

func (b *testBackend) backend() *Backend {
	return &Backend{
		Settings: func(string) (driving.SettingsService, error) {
			return b.settings, nil
		},
		Open: func(
			_ context.Context, data domain.DataSettings, _ driving.SettingsService, watch bool,
		) (*Session, error) {
			b.opened = &data
			b.watched = watch

			dir, err := services.NewDirectory(b.profiles)
			if err != nil {
				return nil, err
			}
			clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
			notifier := services.NewNotifier(clk, time.Second)
			page := services.NewPage(
				dir,
				services.NewRecommendations(memory.NewRecommendationStore()),
				notifier,
				services.NewComposer(memory.NewOutbox(), clk),
			)
			return &Session{
				Directory:     dir,
				Page:          page,
				Notifications: notifier,
				Location:      data.Path,
				Reload:        func(context.Context) (int, error) { return dir.Count(), nil },
				Close: func() error {
					b.closed = true
					return nil
				},
			}, nil
		},
		Import: func(_ context.Context, jsonPath, sqlitePath string) (int, error) {
			b.imported = []string{jsonPath, sqlitePath}
			if b.importErr != nil {
				return 0, b.importErr
			}
			return len(b.profiles), nil
		},
	}
}

// setupTestBackend installs a fresh backend and restores the package
// state when the test ends.
func setupTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := newTestBackend(t)
	SetBackend(b.backend())
	t.Cleanup(func() {
		backend = nil
		settingsService = nil
	})
	return b
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		teardown()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	flagVerbose = false
	flagConfigDir = ""
	flagData = ""
	flagFormat = ""
	flagLogFile = ""
	flagWatch = false
	listSearch, listArea, listCity, listTech = "", "", "", ""
	listJSON = false
	facetsJSON = false
	sourceFormat = ""
	mcpHTTPAddr = ""
}
