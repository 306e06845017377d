// Package ui renders interactive lint progress with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Status is the lifecycle of one file in the run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports a status change for one file.
type Event struct {
	File        string
	Status      Status
	Diagnostics int
}

// Relay adapts per-file lint callbacks onto an Event channel. Call
// Finish once the run ends so the model can quit; call Detach when the
// model stops receiving so senders never block on a dead UI.
type Relay struct {
	ch   chan Event
	done chan struct{}
}

// NewRelay creates a relay with a small buffer so lint workers rarely
// wait on the terminal.
func NewRelay() *Relay {
	return &Relay{
		ch:   make(chan Event, 64),
		done: make(chan struct{}),
	}
}

// Events exposes the receive side for the progress model.
func (r *Relay) Events() <-chan Event { return r.ch }

func (r *Relay) FileStarted(path string) {
	r.send(Event{File: path, Status: StatusWorking})
}

func (r *Relay) FileDone(path string, diagnostics int, err error) {
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	r.send(Event{File: path, Status: status, Diagnostics: diagnostics})
}

func (r *Relay) send(ev Event) {
	select {
	case r.ch <- ev:
	case <-r.done:
	}
}

// Detach drops all further events. Call it exactly once, after the
// program that was receiving Events has returned.
func (r *Relay) Detach() { close(r.done) }

// Finish signals the model that no more events follow. Callers must
// not send after Finish.
func (r *Relay) Finish() { close(r.ch) }

type progressModel struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path        string
	status      Status
	diagnostics int
}

type eventMsg Event
type doneMsg struct{}

// NewProgressModel builds a Bubble Tea model listing every file with
// its live status.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: StatusQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		model, cmd := m.prog.Update(msg)
		m.prog = model.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		label := m.statusLabel(item)
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styleStatus(item.status).Render(fmt.Sprintf("%12s", label)),
			truncate(item.path, nameWidth),
		))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) statusLabel(item fileItem) string {
	switch item.status {
	case StatusWorking:
		return "linting"
	case StatusDone:
		if item.diagnostics == 0 {
			return "clean"
		}
		return fmt.Sprintf("%d issues", item.diagnostics)
	case StatusError:
		return "error"
	default:
		return "queued"
	}
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status
	m.items[idx].diagnostics = ev.Diagnostics

	finished := 0
	for _, item := range m.items {
		if item.status == StatusDone || item.status == StatusError {
			finished++
		}
	}
	return m.prog.SetPercent(float64(finished) / float64(len(m.items)))
}

func styleStatus(status Status) lipgloss.Style {
	switch status {
	case StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	default:
		return lipgloss.NewStyle().Faint(true)
	}
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}
