// Package ui provides the animated terminal dashboard.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/checkmarks-go/internal/checklist"
	"github.com/nibzard/checkmarks-go/internal/tracker"
)

const defaultTickInterval = 2 * time.Second

// RunDashboard starts the animated dashboard for the tracked files.
// Tracked files are re-parsed on every tick so edits show up live.
func RunDashboard(ctx context.Context, mgr *tracker.Manager) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("progress dashboard requires a TTY")
	}

	model := newDashboardModel(mgr)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type dashboardModel struct {
	mgr          *tracker.Manager
	stats        []checklist.Stat
	bars         []progress.Model
	tickInterval time.Duration
	width        int
}

type tickMsg time.Time

func newDashboardModel(mgr *tracker.Manager) *dashboardModel {
	return &dashboardModel{
		mgr:          mgr,
		tickInterval: defaultTickInterval,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	cmds := m.refresh()
	cmds = append(cmds, tickCmd(m.tickInterval))
	return tea.Batch(cmds...)
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			return m, tea.Batch(m.refresh()...)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.bars {
			m.bars[i].Width = barWidth(msg.Width)
		}
		return m, nil
	case tickMsg:
		cmds := m.refresh()
		cmds = append(cmds, tickCmd(m.tickInterval))
		return m, tea.Batch(cmds...)
	case progress.FrameMsg:
		var cmds []tea.Cmd
		for i := range m.bars {
			updated, cmd := m.bars[i].Update(msg)
			m.bars[i] = updated.(progress.Model)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	var b strings.Builder
	title := "Checkmarks Dashboard"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	if len(m.stats) == 0 {
		b.WriteString("No files tracked yet. Use 'checkmarks add <file.md>' first.\n\n")
	}

	for i, s := range m.stats {
		b.WriteString(fmt.Sprintf("%s (%d/%d)\n", s.Title, s.Completed, s.Total))
		if i < len(m.bars) {
			b.WriteString(m.bars[i].View() + "\n\n")
		}
	}

	b.WriteString(fmt.Sprintf("Press r to refresh | q to quit | Refreshing every %s\n", m.tickInterval))
	return b.String()
}

// refresh re-parses the tracked files and animates the bars toward the new
// completion ratios.
func (m *dashboardModel) refresh() []tea.Cmd {
	m.stats = m.mgr.Stats()

	for len(m.bars) < len(m.stats) {
		bar := progress.New(progress.WithDefaultGradient())
		bar.Width = barWidth(m.width)
		m.bars = append(m.bars, bar)
	}
	m.bars = m.bars[:len(m.stats)]

	cmds := make([]tea.Cmd, 0, len(m.stats))
	for i, s := range m.stats {
		target := s.Percent() / 100
		if s.Total == 0 {
			// Zero-task files fill the bar, as a completed placeholder.
			target = 1
		}
		cmds = append(cmds, m.bars[i].SetPercent(target))
	}
	return cmds
}

func barWidth(termWidth int) int {
	const defaultWidth = 40
	if termWidth <= 0 {
		return defaultWidth
	}
	w := termWidth - 4
	if w > defaultWidth {
		w = defaultWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
