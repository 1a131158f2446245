package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotice(t *testing.T) {
	var buf bytes.Buffer
	var sent []string

	n := New(&buf, true)
	n.send = func(title, message string) error {
		sent = append(sent, title+": "+message)
		return nil
	}

	n.Notice("Unable to parse date")
	assert.Contains(t, buf.String(), "Unable to parse date")
	assert.Equal(t, []string{"Daily notes: Unable to parse date"}, sent)
}

func TestNoticeWithoutDesktop(t *testing.T) {
	var buf bytes.Buffer
	called := false

	n := New(&buf, false)
	n.send = func(string, string) error {
		called = true
		return nil
	}

	n.Notice("Please enable Natural Language Dates plugin")
	assert.False(t, called)
	assert.Contains(t, buf.String(), "Please enable Natural Language Dates plugin")
}

func TestFormatDailyPrompt(t *testing.T) {
	title, msg := FormatDailyPrompt(true)
	assert.Equal(t, "Daily note reminder", title)
	assert.Contains(t, msg, "doesn't exist yet")

	_, msg = FormatDailyPrompt(false)
	assert.Contains(t, msg, "dailynote open today")
}
