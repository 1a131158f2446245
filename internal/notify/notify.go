// Package notify shows short user-facing notices.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
)

const appName = "Daily notes"

var noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))

// Notifier prints notices to Out and, when Desktop is set, also raises a
// desktop notification.
type Notifier struct {
	Out     io.Writer
	Desktop bool

	// desktop notification hook, swapped in tests
	send func(title, message string) error
}

func New(out io.Writer, desktop bool) *Notifier {
	if out == nil {
		out = os.Stderr
	}
	return &Notifier{Out: out, Desktop: desktop, send: Info}
}

// Notice reports msg to the user. Desktop delivery failures are ignored.
func (n *Notifier) Notice(msg string) {
	fmt.Fprintln(n.Out, noticeStyle.Render(msg))
	if n.Desktop && n.send != nil {
		_ = n.send(appName, msg)
	}
}

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// FormatDailyPrompt is the reminder to open today's note.
func FormatDailyPrompt(missing bool) (string, string) {
	title := "Daily note reminder"
	if missing {
		return title, "Today's daily note doesn't exist yet. Run `dailynote open today`."
	}
	return title, "Anything to add to today's daily note? Run `dailynote open today`."
}
