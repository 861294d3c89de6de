package worker

import "context"

// Tick is exported for testing
var Tick = (*ReminderAnnouncer).tick

// SetAnnounce is exported for testing
func (w *ReminderAnnouncer) SetAnnounce(fn func(ctx context.Context, title, text string)) {
	w.announce = fn
}
