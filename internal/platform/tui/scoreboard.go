package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/registry"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

const (
	boardRows   = 100 // Sessions loaded per game
	boardMargin = 9   // Lines used by title, summary, frame and help
	timedGameID = "hoops"
)

// unscored lists registered programs that never end with a score.
var unscored = map[string]bool{"specular": true}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	boardInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// gameBoard is everything the scoreboard shows for one game.
type gameBoard struct {
	info    registry.GameInfo
	match   time.Duration // Zero for games without a timed match
	best    int           // From the high score backend
	bestErr error
	entries []storage.ScoreEntry
	stats   *storage.GameStats
	loadErr error
}

// loadBoard reads the persisted best and the session history for a game.
func loadBoard(svc Services, info registry.GameInfo) gameBoard {
	b := gameBoard{info: info, match: matchLength(svc, info.ID)}

	if svc.HighScores != nil {
		b.best, b.bestErr = svc.HighScores.LoadHighScore(info.ID)
		if b.bestErr != nil {
			svc.logger().Warn("could not load high score", "game", info.ID, "error", b.bestErr)
		}
	}

	if svc.Board == nil {
		return b
	}
	b.entries, b.loadErr = svc.Board.TopScores(info.ID, boardRows)
	if b.loadErr == nil {
		b.stats, b.loadErr = svc.Board.GetGameStats(info.ID)
	}
	return b
}

// matchLength returns the configured match duration of the timed game.
func matchLength(svc Services, gameID string) time.Duration {
	if gameID != timedGameID {
		return 0
	}
	cfg, err := config.LoadHoops(svc.ConfigPath)
	if err != nil {
		svc.logger().Warn("could not load game config", "game", gameID, "error", err)
		return 0
	}
	return time.Duration(cfg.Match.DurationSeconds) * time.Second
}

// pace is the scoring rate of a session over a full match.
func (b gameBoard) pace(score int) string {
	if b.match <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f/min", float64(score)/b.match.Minutes())
}

func (b gameBoard) rows() []table.Row {
	rows := make([]table.Row, len(b.entries))
	for i, e := range b.entries {
		mark := ""
		if b.best > 0 && e.Score >= b.best {
			mark = "★"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(e.Score),
			b.pace(e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
			mark,
		}
	}
	return rows
}

// summary is the one-line overview under the title.
func (b gameBoard) summary() string {
	var parts []string
	if b.bestErr != nil {
		parts = append(parts, "best unavailable")
	} else {
		parts = append(parts, fmt.Sprintf("best %d", b.best))
	}
	if b.match > 0 {
		parts = append(parts, fmt.Sprintf("%d s matches", int(b.match.Seconds())))
	}
	if b.stats != nil && b.stats.GamesCount > 0 {
		parts = append(parts,
			fmt.Sprintf("%d played", b.stats.GamesCount),
			fmt.Sprintf("average %.1f", b.stats.AvgScore))
	}
	return strings.Join(parts, "  |  ")
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	svc       Services
	games     []registry.GameInfo
	cursor    int
	board     gameBoard
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a leaderboard for every scored game.
func NewScoreboardModel(svc Services, width, height int) ScoreboardModel {
	var games []registry.GameInfo
	for _, g := range registry.List() {
		if !unscored[g.ID] {
			games = append(games, g)
		}
	}
	return newScoreboard(svc, games, width, height)
}

func newScoreboard(svc Services, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		svc:    svc,
		games:  games,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.selectGame(0)
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "Pace", Width: 9},
			{Title: "Date", Width: 13},
			{Title: "Best", Width: 4},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardMargin, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) selectGame(i int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = i % len(m.games)
	m.board = loadBoard(m.svc, m.games[m.cursor])
	m.table.SetRows(m.board.rows())
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(m.cursor + 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.table.SetRows(m.board.rows())
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "LEADERBOARD"
	if len(m.games) > 0 {
		title += " - " + m.board.info.Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	if len(m.games) > 0 {
		b.WriteString(centerText(boardInfoStyle.Render(m.board.summary()), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.content())))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

func (m ScoreboardModel) content() string {
	switch {
	case len(m.games) == 0:
		return boardEmptyStyle.Render("No scored games registered.")
	case m.svc.Board == nil:
		return boardEmptyStyle.Render("Session history is unavailable.\nThe scores database could not be opened.")
	case m.board.loadErr != nil:
		return boardErrStyle.Render("Could not load scores:\n" + m.board.loadErr.Error())
	case len(m.board.entries) == 0:
		return boardEmptyStyle.Render(fmt.Sprintf("No finished matches yet.\nPlay '%s' to set the first score!", m.board.info.ID))
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(svc Services, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(svc, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
