package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/walletbar/internal/config"
	"github.com/jask/walletbar/internal/logging"
	"github.com/jask/walletbar/internal/wallet"
)

// App is the header: title, navigation, session user and the wallet button.
type App struct {
	ctx      context.Context
	cfg      config.UIConfig
	conn     *wallet.Connector
	log      *slog.Logger
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	menuOpen bool
}

// walletResultMsg carries a finished provider request back to Update.
type walletResultMsg struct {
	Result wallet.Result
}

func New(ctx context.Context, cfg config.UIConfig, conn *wallet.Connector, log *slog.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	return &App{
		ctx:     ctx,
		cfg:     cfg,
		conn:    conn,
		log:     log,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: sp,
		width:   120,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// narrow reports whether navigation collapses behind the menu toggle.
func (a *App) narrow() bool {
	return a.width < a.cfg.Breakpoint
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		if !a.narrow() {
			a.menuOpen = false
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			a.conn.Close()
			return a, tea.Quit
		case key.Matches(m, a.keys.Menu):
			if a.narrow() {
				a.menuOpen = !a.menuOpen
			}
		case key.Matches(m, a.keys.Wallet):
			return a, a.toggleWallet()
		}
	case walletResultMsg:
		if !a.conn.Resolve(m.Result) {
			a.log.Debug("wallet result dropped", "attempt", m.Result.AttemptID)
		}
	case spinner.TickMsg:
		if !a.conn.State().IsConnecting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	}
	return a, nil
}

// toggleWallet connects when disconnected and disconnects when connected.
// The button is disabled while a request is in flight.
func (a *App) toggleWallet() tea.Cmd {
	st := a.conn.State()
	switch {
	case st.IsConnecting:
		return nil
	case st.IsConnected():
		a.conn.Disconnect()
		return nil
	}

	attempt, err := a.conn.Begin()
	if err != nil {
		if !errors.Is(err, wallet.ErrProviderUnavailable) {
			a.log.Warn("wallet connect not started", "error", err)
		}
		return nil
	}
	return tea.Batch(a.spinner.Tick, a.connectCmd(attempt))
}

// commands
func (a *App) connectCmd(attempt *wallet.Attempt) tea.Cmd {
	return func() tea.Msg {
		return walletResultMsg{Result: attempt.Run(a.ctx)}
	}
}

func (a *App) View() string {
	return a.render()
}
