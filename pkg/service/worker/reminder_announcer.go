// Package worker holds background loops started alongside the HTTP
// server.
package worker

import (
	"context"
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/service/speech"
	"github.com/waqt-lab/sawtak/pkg/utils/logging"
)

// ReminderAnnouncer watches pending reminders and announces the ones due
// at the current minute.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - Reminder times are wall-clock "HH:MM" strings in server local time
type ReminderAnnouncer struct {
	repo     interfaces.Repository
	renderer *speech.Renderer
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}

	// announce is swapped by tests to observe triggered reminders.
	announce func(ctx context.Context, title, text string)
}

func NewReminderAnnouncer(repo interfaces.Repository, renderer *speech.Renderer, interval time.Duration) *ReminderAnnouncer {
	w := &ReminderAnnouncer{
		repo:     repo,
		renderer: renderer,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	w.announce = w.logAnnouncement
	return w
}

// Start begins the announcement loop without blocking server startup.
func (w *ReminderAnnouncer) Start(ctx context.Context) error {
	logging.Default().Info("Reminder announcer starting", "interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion.
func (w *ReminderAnnouncer) Stop() {
	logging.Default().Info("Reminder announcer stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Reminder announcer stopped")
}

func (w *ReminderAnnouncer) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			// Store errors are logged and retried next tick.
			if err := w.tick(ctx, now); err != nil {
				logging.Default().Error("Reminder check failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Reminder announcer context cancelled")
			return
		}
	}
}

func (w *ReminderAnnouncer) tick(ctx context.Context, now time.Time) error {
	reminders, err := w.repo.Reminder().List(ctx, false)
	if err != nil {
		return err
	}

	current := now.Format("15:04")
	for _, reminder := range reminders {
		if reminder.Time != current {
			continue
		}
		rendered := w.renderer.Render("C'est l'heure : " + reminder.Title)
		w.announce(ctx, reminder.Title, rendered.Text)
	}

	return nil
}

func (w *ReminderAnnouncer) logAnnouncement(ctx context.Context, title, text string) {
	logging.From(ctx).Info("Reminder due", "title", title, "speech", text)
}
