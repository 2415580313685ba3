package widget

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Shell collects the messages widgets publish while handling input.
type Shell struct {
	messages []tea.Msg
}

// Publish queues msg for delivery to the program.
func (s *Shell) Publish(msg tea.Msg) {
	if msg == nil {
		return
	}
	s.messages = append(s.messages, msg)
}

// Messages returns the published messages in order.
func (s *Shell) Messages() []tea.Msg {
	return s.messages
}

// Cmd returns a command delivering every published message in publication
// order, or nil when nothing was published.
func (s *Shell) Cmd() tea.Cmd {
	if len(s.messages) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(s.messages))
	for i, msg := range s.messages {
		cmds[i] = deliver(msg)
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func deliver(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
