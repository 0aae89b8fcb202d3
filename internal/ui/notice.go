package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/camswap/internal/shot"
	"github.com/backmassage/camswap/internal/term"
)

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("9")).
	Padding(0, 1)

// Notifier writes the unresolved-shot notice to Out. A nil Out discards it.
type Notifier struct {
	Out io.Writer
}

// Notice renders the message shown when no camera file exists for id.
func Notice(id shot.Identity) string {
	return noticeStyle.Render(fmt.Sprintf("%s No camera file found for %s\n  episode %s, sequence %s, shot %s",
		term.Warn.Render("!"), id.Project, id.Episode, id.Sequence, id.Shot))
}

func (n Notifier) NotifyUnresolved(id shot.Identity) {
	if n.Out == nil {
		return
	}
	fmt.Fprintln(n.Out, Notice(id))
}
