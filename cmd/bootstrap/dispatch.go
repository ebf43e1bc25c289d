package bootstrap

import (
	"context"

	"yogaflow/internal/dispatch"
	"yogaflow/internal/infra/meeting"
	"yogaflow/internal/pkg/config"
	"yogaflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var DispatchModule = fx.Module("dispatch",
	fx.Provide(
		NewNotifier,
		NewMeetingProvisioner,
		NewMailer,
		func(c commands.ReminderCommands) dispatch.ReminderSweeper { return c },
		dispatch.NewWorker,
	),
	fx.Invoke(StartWorker),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config) commands.Notifier {
	notifier, cleanup := dispatch.NewAsynqNotifier(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return notifier
}

func NewMeetingProvisioner(cfg config.Config) commands.MeetingProvisioner {
	return meeting.NewProvisioner(context.Background(), cfg.Meeting)
}

func NewMailer(cfg config.Config) dispatch.Mailer {
	return dispatch.NewMailer(cfg.SMTP)
}

func StartWorker(lc fx.Lifecycle, worker *dispatch.Worker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return worker.Start()
		},
		OnStop: func(_ context.Context) error {
			worker.Shutdown()
			return nil
		},
	})
}
