package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// SessionModel manages the full arcade session flow: menu -> game -> menu,
// with the scoreboard reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	svc       Services
	config    core.RuntimeConfig
	username  string
	menu      MenuModel
	gameModel *Model
	board     *ScoreboardModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		svc:      svc,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(svc, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The menu answers a choice with tea.Quit; the session keeps running
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.config = m.menu.Config()
		board := NewScoreboardModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, board.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := m.svc.CreateGame(selected.GameID)
		if err != nil {
			m.svc.logger().Error("could not start game", "game", selected.GameID, "error", err)
			m.menu = NewMenuModel(m.svc, m.config)
			return m, nil
		}

		m.config = m.menu.Config() // Get possibly updated config from resize
		m.svc.logger().Info("game started", "game", game.ID(), "user", m.username)

		gameModel := NewModel(game, m.svc, m.config)
		m.gameModel = &gameModel
		m.inGame = true

		return m, m.gameModel.Init()
	}

	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		// Rebuild the menu so best scores are current
		m.menu = NewMenuModel(m.svc, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateBoard handles updates while the scoreboard is open.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		m.board = nil
		m.menu = NewMenuModel(m.svc, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	if m.board != nil {
		return m.board.View()
	}

	return m.menu.View()
}

// InGame reports whether a game is currently running.
func (m SessionModel) InGame() bool {
	return m.inGame
}
