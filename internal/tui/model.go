// Package tui provides the BubbleTea-based terminal user interface.
package tui

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/ctxmenu/internal/config"
	"github.com/jmylchreest/ctxmenu/internal/contextmenu"
	"github.com/jmylchreest/ctxmenu/internal/theme"
	"github.com/jmylchreest/ctxmenu/internal/ui"
	"github.com/jmylchreest/ctxmenu/internal/widget"
)

// Model is the main TUI model. It owns the context menu state and rebuilds
// the widget tree from it on every pass.
type Model struct {
	// Configuration
	cfg    *config.Config
	logger *slog.Logger
	loader *theme.Loader

	// Context menu state shared by every decorator
	menus *contextmenu.State

	// Components
	help   help.Model
	keys   KeyMap
	styles theme.Styles
	theme  string

	width   int
	height  int
	ready   bool
	cursor  widget.Cursor
	explain bool

	// Status message
	statusMsg string
	statusSeq int
	counts    map[string]int
}

// openMenuMsg asks to open the menu of a decorator at a position.
type openMenuMsg struct {
	id contextmenu.ID
	at widget.Point
}

// closeMenuMsg asks to close whichever menu is open.
type closeMenuMsg struct{}

// itemSelectedMsg is published by a menu entry.
type itemSelectedMsg struct {
	trigger string
	item    string
}

// ThemeChangedMsg carries a reloaded theme into the program.
type ThemeChangedMsg struct {
	Theme *theme.Theme
}

type clearStatusMsg struct {
	seq int
}

// New creates a new TUI model. A nil loader disables theme cycling and uses
// the bundled default palette.
func New(cfg *config.Config, loader *theme.Loader, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var th *theme.Theme
	if loader != nil {
		th = loader.Current()
	}
	if th == nil {
		th, _ = theme.Embedded(theme.DefaultThemeName)
	}

	m := Model{
		cfg:     cfg,
		logger:  logger,
		loader:  loader,
		menus:   contextmenu.NewState(),
		help:    help.New(),
		keys:    DefaultKeyMap(),
		cursor:  widget.CursorUnavailable,
		explain: cfg.TUI.Explain,
		counts:  make(map[string]int),
	}
	m.applyTheme(th)
	return m
}

func (m *Model) applyTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	m.theme = th.Name
	m.styles = th.Styles()
	m.help.Styles.ShortKey = m.styles.Key
	m.help.Styles.FullKey = m.styles.Key
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullDesc = m.styles.Muted
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		ev, cursor := widget.FromMouseMsg(msg)
		m.cursor = cursor
		return m, m.dispatch(ev).Cmd()

	case openMenuMsg:
		tr := m.menus.RequestOpen(msg.id, msg.at)
		m.logger.Debug("open requested", "id", msg.id, "at", msg.at, "transition", tr)
		return m, nil

	case closeMenuMsg:
		if tr := m.menus.RequestClose(); tr != contextmenu.Unchanged {
			m.logger.Debug("close requested", "transition", tr)
		}
		return m, nil

	case itemSelectedMsg:
		k := msg.trigger + "/" + msg.item
		m.counts[k]++
		m.menus.RequestClose()
		m.logger.Info("menu item selected", "trigger", msg.trigger, "item", msg.item, "count", m.counts[k])
		return m.setStatus(fmt.Sprintf("%s selected (%s time)", msg.item, humanize.Ordinal(m.counts[k])))

	case ThemeChangedMsg:
		m.applyTheme(msg.Theme)
		return m.setStatus("Theme " + msg.Theme.Name + " reloaded")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// setStatus shows text in the status line and schedules its removal.
func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	m.statusSeq++
	timeout := m.cfg.TUI.StatusTimeout.Std()
	if timeout <= 0 {
		return m, nil
	}
	seq := m.statusSeq
	return m, tea.Tick(timeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CloseMenu):
		return m, func() tea.Msg { return closeMenuMsg{} }

	case key.Matches(msg, m.keys.Explain):
		m.explain = !m.explain
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		clear(m.counts)
		return m.setStatus("Counts reset")

	case key.Matches(msg, m.keys.Theme):
		return m.nextTheme()
	}

	// Unbound keys go through the widget tree at the last known cursor.
	return m, m.dispatch(widget.KeyEvent{Key: msg.String()}).Cmd()
}

// nextTheme switches to the theme after the current one, alphabetically.
func (m Model) nextTheme() (tea.Model, tea.Cmd) {
	if m.loader == nil {
		return m, nil
	}
	names, err := theme.ListAvailableThemes(m.loader.Dir())
	if err != nil || len(names) == 0 {
		m.logger.Warn("failed to list themes", "error", err)
		return m, nil
	}
	next := names[(slices.Index(names, m.theme)+1)%len(names)]

	th, err := m.loader.Load(next)
	if err != nil {
		return m.setStatus("Theme failed: " + err.Error())
	}
	m.applyTheme(th)
	return m.setStatus("Theme: " + th.Name)
}

// dispatch runs one event pass over the current widget tree and returns
// the messages it published, in order.
func (m Model) dispatch(ev widget.Event) *widget.Shell {
	shell := &widget.Shell{}
	u := ui.Build(m.view(), m.viewport())
	status := u.Update(ev, m.cursor, shell)
	if len(shell.Messages()) > 0 {
		m.logger.Debug("event pass", "event", ev, "status", status, "messages", len(shell.Messages()))
	}
	return shell
}

// viewport is the area left for widgets after the footer.
func (m Model) viewport() widget.Size {
	h := m.height - lipgloss.Height(m.footer())
	return widget.Sz(max(m.width, 0), max(h, 0))
}

// view builds the widget tree for the current state: one decorated trigger
// per configured entry, stacked vertically.
func (m Model) view() widget.Widget {
	snap := m.menus.Current()
	root := widget.NewColumn()
	root.Spacing = 1

	open := func(id contextmenu.ID, at widget.Point) tea.Msg {
		return openMenuMsg{id: id, at: at}
	}

	for _, t := range m.cfg.Triggers {
		cm := contextmenu.New(
			contextmenu.NewID(t.ID),
			snap,
			open,
			closeMenuMsg{},
			m.trigger(t),
			m.menu(t),
		).KeepInView(m.cfg.Menu.KeepInView)
		root.Push(cm)
	}
	return root
}

func (m Model) trigger(t config.TriggerConfig) widget.Widget {
	label := widget.NewText(t.Label)
	label.Style = m.styles.Trigger

	border := lipgloss.RoundedBorder()
	c := widget.NewContainer(label)
	c.Width = widget.Fixed(t.Width)
	c.Height = widget.Fixed(t.Height)
	c.Padding = widget.Padding{Left: 1, Right: 1}
	c.Border = &border
	c.BorderStyle = m.styles.TriggerBorder
	c.Style = &m.styles.Trigger
	return c
}

func (m Model) menu(t config.TriggerConfig) widget.Widget {
	col := widget.NewColumn()
	col.Width = widget.Fixed(m.cfg.Menu.Width)
	for _, item := range t.Items {
		b := widget.NewButton(item, itemSelectedMsg{trigger: t.ID, item: item})
		b.Width = widget.Fill
		b.Style = m.styles.Item
		b.HoverStyle = m.styles.ItemHover
		col.Push(b)
	}

	border := lipgloss.NormalBorder()
	c := widget.NewContainer(col)
	c.Border = &border
	c.BorderStyle = m.styles.MenuBorder
	c.Style = &m.styles.Menu
	return c
}

// footer renders the status line and, if enabled, the key help.
func (m Model) footer() string {
	status := m.styles.Status.Render(m.statusMsg)
	if m.statusMsg == "" {
		status = m.styles.Muted.Render("menu " + m.menus.Current().String())
	}
	if !m.cfg.TUI.ShowHelp {
		return status
	}
	return status + "\n" + m.help.View(m.keys)
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	u := ui.Build(m.view(), m.viewport())
	canvas := u.Draw(m.cursor)
	if m.explain {
		u.Explain(canvas, m.styles.Outline)
	}
	return canvas.Render() + "\n" + m.footer()
}
