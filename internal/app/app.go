package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/grid"
	"github.com/vinser/snake/internal/input"
	"github.com/vinser/snake/internal/model/about"
	"github.com/vinser/snake/internal/model/intro"
	"github.com/vinser/snake/internal/model/over"
	"github.com/vinser/snake/internal/model/play"
	"github.com/vinser/snake/internal/model/quit"
	"github.com/vinser/snake/internal/model/setup"
)

type status uint

const (
	statusIntro status = iota
	statusGameplay
	statusAbout
	statusSettings
	statusGameOver
	statusQuitting
)

func (s status) String() string {
	switch s {
	case statusIntro:
		return "intro"
	case statusGameplay:
		return "gameplay"
	case statusAbout:
		return "about"
	case statusSettings:
		return "settings"
	case statusGameOver:
		return "game over"
	case statusQuitting:
		return "quitting"
	}
	return "unknown"
}

const (
	aboutWidth  = 60
	aboutHeight = 24
)

type Model struct {
	status status
	cfg    *config.Config
	log    *log.Entry
	engine *engine.Engine
	grid   *grid.Grid
	keys   input.KeyMap
	// models
	intro intro.Model
	play  play.Model
	about about.Model
	setup setup.Model
	over  over.Model
	quit  quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New returns the top level model of the terminal game.
func New(cfg *config.Config, logger *log.Logger) Model {
	entry := logger.WithField("session", uuid.NewString())
	e := engine.New(engine.WithSeed(cfg.Seed), engine.WithLogger(entry))
	g := grid.New(cfg.SpriteSize)
	keys := input.NewKeyMap(cfg.Keys)

	p := play.New(e, g, keys, cfg.Tick, entry)
	p.Suspend() // until the intro is over

	return Model{
		status: statusIntro,
		cfg:    cfg,
		log:    entry,
		engine: e,
		grid:   g,
		keys:   keys,
		intro:  intro.New(),
		play:   p,
	}
}

func (m Model) Init() tea.Cmd {
	return m.intro.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.status != statusQuitting {
			m.play.Suspend()
			m.setStatus(statusQuitting)
			m.quit = quit.New(m.play.Snapshot().Score)
			m.quit.SetSize(m.termWidth, m.termHeight)
			return m, m.quit.Init()
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.intro.SetSize(msg.Width, msg.Height)
		m.about.SetSize(msg.Width, msg.Height)
		m.setup.SetSize(msg.Width, msg.Height)
		m.over.SetSize(msg.Width, msg.Height)
		m.quit.SetSize(msg.Width, msg.Height)
		m.play, cmd = m.play.Update(msg)
		// Force a full repaint
		return m, tea.Batch(cmd, tea.ClearScreen)
	}

	switch m.status {
	case statusIntro:
		switch msg := msg.(type) {
		case intro.TimedoutMsg:
			m.setStatus(statusGameplay)
			cmd = m.play.Reset()
		default:
			m.intro, cmd = m.intro.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusGameplay:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.About):
				m.play.Suspend()
				m.setStatus(statusAbout)
				m.about = about.New(m.keys, aboutWidth, aboutHeight)
				m.about.SetSize(m.termWidth, m.termHeight)
			case key.Matches(msg, m.keys.Options):
				m.play.Suspend()
				m.setStatus(statusSettings)
				m.setup = setup.New(m.cfg.SpriteSize, m.cfg.Keys)
				m.setup.SetSize(m.termWidth, m.termHeight)
			default:
				m.play, cmd = m.play.Update(msg)
			}
		case play.GameOverMsg:
			m.setStatus(statusGameOver)
			m.over = over.New(msg.Snapshot, m.grid)
			m.over.SetSize(m.termWidth, m.termHeight)
		default:
			m.play, cmd = m.play.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.setStatus(statusGameplay)
			cmd = m.play.Resume()
		default:
			m.about, cmd = m.about.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusSettings:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			m.applySettings(msg)
			m.setStatus(statusGameplay)
			cmd = m.play.Resume()
		case setup.DiscardSettingsMsg:
			m.setStatus(statusGameplay)
			cmd = m.play.Resume()
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusGameOver:
		switch msg := msg.(type) {
		case over.PlayAgainMsg:
			m.setStatus(statusGameplay)
			cmd = m.play.Reset()
		case over.QuitGameMsg:
			m.setStatus(statusQuitting)
			m.quit = quit.New(m.over.Score())
			m.quit.SetSize(m.termWidth, m.termHeight)
			cmd = m.quit.Init()
		default:
			m.over, cmd = m.over.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		case quit.TickMsg:
			m.quit, cmd = m.quit.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(s status) {
	m.log.WithFields(log.Fields{"from": m.status, "to": s}).Debug("screen changed")
	m.status = s
}

func (m *Model) applySettings(msg setup.SaveSettingsMsg) {
	m.cfg.SpriteSize = msg.SpriteSize
	m.cfg.Keys = msg.Keys
	m.grid = grid.New(msg.SpriteSize)
	m.keys = input.NewKeyMap(msg.Keys)
	m.play.SetGrid(m.grid)
	m.play.SetKeys(m.keys)
	m.log.WithFields(log.Fields{"sprite-size": msg.SpriteSize, "keys": msg.Keys}).Info("settings saved")
}

func (m Model) View() string {
	switch m.status {
	case statusIntro:
		return m.intro.View()
	case statusGameplay:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	case statusSettings:
		return m.setup.View()
	case statusGameOver:
		return m.over.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
