package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lfmoreira/studylog/internal/timer"
)

// RunTimer shows the running clock for an active session. It returns
// true when the user asked to stop and save; actually stopping the timer
// and persisting the record stays with the caller.
func RunTimer(t *timer.Timer) (bool, error) {
	p := tea.NewProgram(NewTimerModel(t), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	return finalModel.(TimerModel).Stopping(), nil
}

// RunSubjectPicker lets the user choose a subject interactively. An
// empty result means the user cancelled.
func RunSubjectPicker(subjects []string, freeText bool) (string, error) {
	p := tea.NewProgram(NewPickerModel(subjects, freeText), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(PickerModel).Choice(), nil
}
