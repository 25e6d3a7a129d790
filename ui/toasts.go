package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndhoang/shopfront/notify"
)

type toast struct {
	id int
	notify.Notification
}

// toastStack holds active toasts until their auto-dismiss timers fire.
type toastStack struct {
	active []toast
	nextID int
}

// push registers drained notifications and returns the dismiss commands
// for them.
func (t *toastStack) push(notifications []notify.Notification) []tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range notifications {
		t.nextID++
		t.active = append(t.active, toast{id: t.nextID, Notification: n})
		cmds = append(cmds, scheduleToastDismiss(t.nextID, n.AutoDismiss))
	}
	return cmds
}

// expire removes the toast with the given id.
func (t *toastStack) expire(id int) {
	for i, tst := range t.active {
		if tst.id == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			return
		}
	}
}

// render joins active toasts newest last.
func (t *toastStack) render() string {
	if len(t.active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.active))
	for _, tst := range t.active {
		style := toastStyles[tst.Severity.String()]
		lines = append(lines, style.Render("▪ "+tst.Message))
	}
	return strings.Join(lines, "\n")
}
