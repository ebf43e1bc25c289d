package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"yogaflow/internal/pkg/config"
	"yogaflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReminderSweeper claims and dispatches due session reminders; the worker
// runs it on a fixed schedule.
type ReminderSweeper interface {
	RunReminderSweep(ctx context.Context) error
}

// Worker consumes notification tasks and renders them into mail, and drives
// the periodic reminder sweep.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewWorker(cfg config.Config, mailer Mailer, sweeper ReminderSweeper) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	h := &handlers{mailer: mailer, sweeper: sweeper, userDomain: cfg.SMTP.UserDomain}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmed, h.handleBookingConfirmed)
	mux.HandleFunc(TypeBookingCancelled, h.handleBookingCancelled)
	mux.HandleFunc(TypeSessionReminder, h.handleSessionReminder)
	mux.HandleFunc(TypeReminderSweep, h.handleReminderSweep)

	return &Worker{server: server, scheduler: scheduler, mux: mux}
}

func (w *Worker) Start() error {
	if _, err := w.scheduler.Register("@every 1m", asynq.NewTask(TypeReminderSweep, nil)); err != nil {
		return errs.Wrap(err, "failed to register reminder sweep schedule")
	}
	if err := w.scheduler.Start(); err != nil {
		return errs.Wrap(err, "failed to start scheduler")
	}
	if err := w.server.Start(w.mux); err != nil {
		return errs.Wrap(err, "failed to start task server")
	}
	return nil
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

type handlers struct {
	mailer     Mailer
	sweeper    ReminderSweeper
	userDomain string
}

// TODO: resolve real addresses once the identity provider exposes its
// directory API.
func (h *handlers) addressFor(userID uuid.UUID) string {
	return fmt.Sprintf("%s@%s", userID, h.userDomain)
}

func (h *handlers) handleBookingConfirmed(ctx context.Context, task *asynq.Task) error {
	var p BookingConfirmedPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrap(err, "invalid booking confirmed payload")
	}

	body := fmt.Sprintf("Your yoga session on %s is confirmed.", p.Start.Format(time.RFC1123))
	if p.MeetingLink != nil {
		body += "\nJoin here: " + *p.MeetingLink
	}

	if err := h.mailer.Send(ctx, h.addressFor(p.StudentID), "Session confirmed", body); err != nil {
		return err
	}
	instructorBody := fmt.Sprintf("A student booked your session on %s.", p.Start.Format(time.RFC1123))
	return h.mailer.Send(ctx, h.addressFor(p.InstructorID), "New booking", instructorBody)
}

func (h *handlers) handleBookingCancelled(ctx context.Context, task *asynq.Task) error {
	var p BookingCancelledPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrap(err, "invalid booking cancelled payload")
	}

	body := fmt.Sprintf("The session on %s was cancelled.", p.Start.Format(time.RFC1123))
	if p.ByInstructor {
		body = fmt.Sprintf("The instructor cancelled the session on %s.", p.Start.Format(time.RFC1123))
	}
	if p.Refunded {
		body += "\nYour session credit has been returned."
	}

	return h.mailer.Send(ctx, h.addressFor(p.RecipientID), "Session cancelled", body)
}

func (h *handlers) handleSessionReminder(ctx context.Context, task *asynq.Task) error {
	var p SessionReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrap(err, "invalid session reminder payload")
	}

	body := fmt.Sprintf("Your yoga session starts at %s.", p.Start.Format(time.RFC1123))
	if p.MeetingLink != nil {
		body += "\nJoin here: " + *p.MeetingLink
	}

	return h.mailer.Send(ctx, h.addressFor(p.RecipientID), "Session starting soon", body)
}

func (h *handlers) handleReminderSweep(ctx context.Context, _ *asynq.Task) error {
	if err := h.sweeper.RunReminderSweep(ctx); err != nil {
		slog.Error("reminder sweep failed", "error", err.Error())
		return err
	}
	return nil
}
