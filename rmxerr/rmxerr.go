package rmxerr

import tea "github.com/charmbracelet/bubbletea"

type (
	ErrMsg struct {
		Err error
	}
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

// Cmd wraps err in an ErrMsg command. A nil err yields a nil command.
func Cmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}
