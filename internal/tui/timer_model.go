package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lfmoreira/studylog/internal/timer"
)

// TimerModel is the TUI model shown while a study session is running.
// It only reads the timer: every tick re-renders the elapsed time, and
// no tick ever causes a state transition or a store write. Deciding to
// stop happens outside, after the program quits.
type TimerModel struct {
	width  int
	height int

	timer   *timer.Timer
	elapsed time.Duration
	skewed  bool

	pulse int // animated header frame

	stopping bool // user pressed S: caller should stop and save
	exiting  bool // user left the timer running
}

// clockTickMsg is sent every second to refresh the elapsed display
type clockTickMsg struct{}

// pulseTickMsg drives the header animation
type pulseTickMsg struct{}

// NewTimerModel creates a timer display for a running session
func NewTimerModel(t *timer.Timer) TimerModel {
	elapsed, skewed := t.Elapsed(time.Now())
	return TimerModel{
		timer:   t,
		elapsed: elapsed,
		skewed:  skewed,
	}
}

// Init starts the display and animation tickers
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return clockTickMsg{}
		}),
		tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		}),
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.elapsed, m.skewed = m.timer.Elapsed(time.Now())

		// Stop preempts the loop: once the user decided, no further
		// ticks are scheduled and the program quits within one interval
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return clockTickMsg{}
		})

	case pulseTickMsg:
		m.pulse = (m.pulse + 1) % 2
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S", "enter":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// Stopping reports whether the user asked to stop and save
func (m TimerModel) Stopping() bool { return m.stopping }

// View renders the timer screen
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	pulseChars := []string{"●", "○"}
	headerText := fmt.Sprintf("%s  STUDYING  %s", pulseChars[m.pulse], pulseChars[m.pulse])
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	session := m.timer.Session()

	subjectStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, subjectStyle.Render(session.Subject))

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 6)
	clock := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(clockStyle.Render(formatClock(m.elapsed)))
	components = append(components, clock)

	startedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, startedStyle.Render(
		fmt.Sprintf("Started at %s", session.StartedAt.Format("15:04:05"))))

	components = append(components, m.renderStatusLine())

	content := strings.Join(components, "\n\n")

	layout := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		layout.Render(content),
		m.renderHelpBar(),
	)
}

// renderStatusLine shows whether stopping now would record or discard
func (m TimerModel) renderStatusLine() string {
	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width)

	if m.skewed {
		return lineStyle.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render("⚠ system clock moved backwards, elapsed clamped to zero"))
	}

	min := m.timer.MinDuration()
	if m.elapsed < min {
		remaining := min - m.elapsed
		return lineStyle.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render(fmt.Sprintf("below the %s minimum — stopping in the next %s discards this session",
				formatClockShort(min), formatClockShort(remaining))))
	}

	return lineStyle.Render(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Render("✓ long enough to record"))
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s stop & save · esc/q leave running · ctrl+c force quit")
}

// formatClock renders elapsed time as HH:MM:SS (or MM:SS under an hour)
func formatClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// formatClockShort renders a duration compactly for hint text
func formatClockShort(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()+0.5))
}
