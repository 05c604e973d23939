// Package host mounts a widget inside a BubbleTea program. It turns key
// presses into widget messages, delivers them one per Update and keeps the
// last rendered frame until the widget asks for a new one.
// https://github.com/charmbracelet/bubbletea
package host

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jwebster45206/fourhills/internal/config"
	"github.com/jwebster45206/fourhills/internal/logger"
	"github.com/jwebster45206/fourhills/pkg/console"
	"github.com/jwebster45206/fourhills/pkg/ui"
	"github.com/jwebster45206/fourhills/pkg/widget"
)

// dispatchMsg carries a widget message through the program queue.
type dispatchMsg struct {
	msg widget.Msg
}

type copiedMsg struct {
	err error
}

var (
	frameStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("196")) // red
)

// Model is the BubbleTea model hosting one mounted widget.
type Model struct {
	widget    *widget.Model
	mountID   uuid.UUID
	logger    *slog.Logger
	keys      keyMap
	help      help.Model
	renderer  ui.Renderer
	wrapWidth int
	frame     string
	status    string
	statusErr bool
	processed int
	writeClip func(string) error
}

// New mounts a fresh widget. Every instance gets its own mount ID, which is
// attached to everything the widget logs.
func New(cfg *config.Config, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	mountID := uuid.New()
	log = logger.WithMountID(log, mountID)

	m := Model{
		widget:    widget.Create(widget.Properties{}, console.NewSlogSink(log)),
		mountID:   mountID,
		logger:    log,
		keys:      defaultKeyMap(),
		help:      help.New(),
		renderer:  ui.Renderer{Width: cfg.WrapWidth, Focus: 0},
		wrapWidth: cfg.WrapWidth,
		writeClip: clipboard.WriteAll,
	}
	m.redraw()

	log.Info("Widget mounted")
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.renderer.Width = m.fitWidth(msg.Width)
		m.redraw()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("Widget unmounted", "messages", m.processed)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
		case key.Matches(msg, m.keys.Activate):
			return m, m.activate()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyText()
		}

	case dispatchMsg:
		m.processed++
		if m.widget.Update(msg.msg) {
			m.redraw()
		}

	case copiedMsg:
		if msg.err != nil {
			logger.WithError(m.logger, msg.err).Warn("Clipboard copy failed")
			m.setStatus("Copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Copied to clipboard", false)
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(frameStyle.Render(m.frame))
	b.WriteString("\n\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Text exposes the hosted widget's display buffer.
func (m Model) Text() string {
	return m.widget.Text()
}

func (m Model) MountID() uuid.UUID {
	return m.mountID
}

func (m *Model) redraw() {
	m.frame = m.renderer.Render(m.widget.View())
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// fitWidth keeps paragraphs inside the window. A configured width of 0
// still wraps at the window edge.
func (m Model) fitWidth(windowWidth int) int {
	usable := windowWidth - frameStyle.GetHorizontalPadding()
	if usable <= 0 {
		return m.wrapWidth
	}
	if m.wrapWidth == 0 || m.wrapWidth > usable {
		return usable
	}
	return m.wrapWidth
}

func (m *Model) moveFocus(delta int) {
	n := len(ui.Clickables(m.widget.View()))
	if n == 0 {
		return
	}
	m.renderer.Focus = ((m.renderer.Focus+delta)%n + n) % n
	m.redraw()
}

// activate enqueues the focused control's message; it is applied on a
// later Update, after anything already queued.
func (m Model) activate() tea.Cmd {
	clickables := ui.Clickables(m.widget.View())
	if m.renderer.Focus < 0 || m.renderer.Focus >= len(clickables) {
		return nil
	}
	wm, ok := clickables[m.renderer.Focus].OnClick.(widget.Msg)
	if !ok {
		m.logger.Error("Control has no widget message", "type", fmt.Sprintf("%T", clickables[m.renderer.Focus].OnClick))
		return nil
	}
	return func() tea.Msg {
		return dispatchMsg{msg: wm}
	}
}

func (m Model) copyText() tea.Cmd {
	text := m.widget.Text()
	write := m.writeClip
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copiedMsg{err: fmt.Errorf("failed to write clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
