package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/avatar"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/views/compose"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/views/directory"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
	"github.com/custodia-labs/profdir/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The App keeps no navigation state of its own: the active view is
// derived from the page's modal slots, plus the help overlay flag.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles is shared by every view; theme changes restyle in place.
	styles *styles.Styles

	// themeSaver persists theme presses in the order they were made.
	themeSaver *themeSaver
	themeSeq   uint64

	keymap *keymap.KeyMap

	// statusbar shows hints, errors and the current notification.
	statusbar *status.Bar

	directoryView *directory.View
	detailView    *detail.View
	composeView   *compose.View
	helpView      *help.View

	// showHelp overlays the help view on whatever is open.
	showHelp bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.ForMode(ports.Settings.UI().DarkMode)
	km := keymap.DefaultKeyMap()

	var resolver avatar.Resolver
	if ports.Images != nil {
		resolver = ports.Images
	}

	a := &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		themeSaver:    &themeSaver{settings: ports.Settings},
		keymap:        km,
		statusbar:     status.NewBar(s, km),
		directoryView: directory.NewView(s, km, ports.Page, avatar.New(s, resolver)),
		detailView:    detail.NewView(s, km, ports.Page, avatar.New(s, resolver)),
		composeView:   compose.NewView(s, km, ports.Page),
		helpView:      help.NewView(s, km),
		width:         80,
		height:        24,
	}
	a.syncHints()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("profdir - Profile Directory"),
	)
}

// CurrentView derives the active view from the page state.
func (a *App) CurrentView() messages.ViewType {
	switch {
	case a.showHelp:
		return messages.ViewHelp
	case a.ports.Page.MessageTarget() != nil:
		return messages.ViewCompose
	case a.ports.Page.Detail() != nil:
		return messages.ViewDetail
	default:
		return messages.ViewDirectory
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncHints()
	return a, cmd
}

//nolint:gocyclo // central message handler
func (a *App) update(msg tea.Msg) tea.Cmd {
	page := a.ports.Page

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		a.showHelp = msg.View == messages.ViewHelp
		return nil

	case messages.ProfileOpened:
		page.OpenDetail(msg.Profile)
		a.detailView.SetProfile(page.Detail())
		return nil

	case messages.DetailClosed:
		page.CloseDetail()
		a.detailView.SetProfile(nil)
		return nil

	case messages.RecommendRequested:
		page.Recommend(msg.Profile)
		a.detailView.Refresh()
		a.directoryView.Refresh()
		a.syncNotification()
		return nil

	case messages.MessageRequested:
		page.OpenMessage(msg.Profile)
		return a.composeView.Open()

	case messages.MessageSubmitted:
		if _, err := page.SubmitMessage(); err != nil {
			a.composeView.SetError(err)
			return nil
		}
		a.composeView.Reset()
		a.syncNotification()
		return nil

	case messages.ComposeCancelled:
		page.CloseMessage()
		a.composeView.Reset()
		return nil

	case messages.NotificationChanged:
		// The payload may be stale when expiry and a new notification
		// race through Send; the page holds the truth.
		a.syncNotification()
		return nil

	case messages.ProfilesReloaded:
		if msg.Err != nil {
			a.setError(fmt.Errorf("reloading profiles: %w", msg.Err))
			return nil
		}
		a.directoryView.Refresh()
		a.statusbar.SetState(status.StateInfo)
		a.statusbar.SetMessage(fmt.Sprintf("Reloaded %d profiles", msg.Count))
		return nil

	case messages.ThemeToggled:
		if msg.Err != nil {
			// Undo the optimistic switch unless a later press replaced it.
			if msg.Seq == a.themeSeq {
				a.applyTheme(!msg.Dark)
			}
			a.setError(msg.Err)
		}
		return nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return nil

	case messages.Quit:
		return tea.Quit
	}

	// Forward other messages (cursor blink) to the active view.
	var cmd tea.Cmd
	switch a.CurrentView() {
	case messages.ViewDirectory:
		a.directoryView, cmd = a.directoryView.Update(msg)
	case messages.ViewCompose:
		a.composeView, cmd = a.composeView.Update(msg)
	case messages.ViewDetail, messages.ViewHelp:
		// Nothing to animate.
	}
	return cmd
}

// handleKeyMsg routes keys to the active view. Global keys apply only
// where they cannot be typed text.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	var cmd tea.Cmd
	switch a.CurrentView() {
	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)

	case messages.ViewCompose:
		a.composeView, cmd = a.composeView.Update(msg)

	case messages.ViewDetail:
		if global, ok := a.handleGlobalKey(msg); ok {
			return global
		}
		a.detailView, cmd = a.detailView.Update(msg)

	case messages.ViewDirectory:
		if !a.directoryView.InputFocused() {
			if global, ok := a.handleGlobalKey(msg); ok {
				return global
			}
		}
		a.directoryView, cmd = a.directoryView.Update(msg)
	}
	return cmd
}

// handleGlobalKey handles quit, help and theme toggling.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return tea.Quit, true
	case keymap.Matches(keyStr, a.keymap.Help):
		a.showHelp = true
		return nil, true
	case keymap.Matches(keyStr, a.keymap.Theme):
		return a.toggleTheme(), true
	}
	return nil, false
}

// toggleTheme flips the theme immediately and persists the new value
// off the event loop.
func (a *App) toggleTheme() tea.Cmd {
	next := !a.styles.IsDark()
	a.applyTheme(next)
	a.themeSeq++
	seq := a.themeSeq
	saver := a.themeSaver
	return func() tea.Msg {
		return messages.ThemeToggled{Dark: next, Seq: seq, Err: saver.save(seq, next)}
	}
}

// applyTheme restyles every view through the shared styles pointer.
func (a *App) applyTheme(dark bool) {
	a.styles.Apply(styles.ThemeFor(dark))
	a.helpView.Restyle()
	a.detailView.Refresh()
	logger.Debug("Theme applied: dark=%t", dark)
}

func (a *App) syncNotification() {
	a.statusbar.SetNotification(a.ports.Page.Notification())
}

func (a *App) setError(err error) {
	a.err = err
	a.statusbar.SetError(err)
	logger.Warn("%v", err)
}

// syncHints shows the key hints of the active view.
func (a *App) syncHints() {
	switch a.CurrentView() {
	case messages.ViewDirectory:
		a.statusbar.SetHints(a.keymap.DirectoryHelp())
	case messages.ViewDetail:
		a.statusbar.SetHints(a.keymap.DetailHelp())
	case messages.ViewCompose:
		a.statusbar.SetHints(a.keymap.ComposeHelp())
	case messages.ViewHelp:
		a.statusbar.SetHints(a.keymap.ShortHelp())
	}
}

// View implements tea.Model.
// It renders the current view with the status bar underneath.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.CurrentView() {
	case messages.ViewHelp:
		body = a.helpView.View()
	case messages.ViewCompose:
		body = a.composeView.View()
	case messages.ViewDetail:
		body = a.detailView.View()
	default:
		body = a.directoryView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusbar.View())
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))

	if a.ports.Notifications != nil {
		a.ports.Notifications.OnChange(func(n domain.Notification) {
			// OnChange also fires from inside Update, where a blocking
			// Send would deadlock the event loop.
			go p.Send(messages.NotificationChanged{Notification: n})
		})
		defer a.ports.Notifications.OnChange(nil)
	}

	ctx, cancel := context.WithCancel(a.ctx)
	var wg sync.WaitGroup
	if a.ports.Watcher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.watch(ctx, p.Send)
		}()
	}

	_, err := p.Run()
	cancel()
	wg.Wait()
	return err
}

// watch reloads the profiles on every change until ctx is cancelled.
func (a *App) watch(ctx context.Context, send func(tea.Msg)) {
	err := a.ports.Watcher.Watch(ctx, func() {
		count, err := a.ports.Reload(ctx)
		send(messages.ProfilesReloaded{Count: count, Err: err})
	})
	if err != nil {
		logger.Warn("Profile watcher stopped: %v", err)
	}
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Styles returns the shared styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// StatusBar returns the status bar component.
func (a *App) StatusBar() *status.Bar {
	return a.statusbar
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// One line for the status bar.
	viewHeight := height - 1
	a.directoryView.SetDimensions(width, viewHeight)
	a.detailView.SetDimensions(width, viewHeight)
	a.composeView.SetDimensions(width, viewHeight)
	a.helpView.SetDimensions(width, viewHeight)
	a.statusbar.SetWidth(width)
}

// themeSaver serialises theme writes. Commands run concurrently, so a
// write older than the last one saved is dropped.
type themeSaver struct {
	mu       sync.Mutex
	settings driving.SettingsService
	saved    uint64
}

func (t *themeSaver) save(seq uint64, dark bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq < t.saved {
		return nil
	}
	if err := t.settings.SetDarkMode(dark); err != nil {
		return err
	}
	t.saved = seq
	return nil
}
