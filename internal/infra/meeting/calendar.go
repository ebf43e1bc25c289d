package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"yogaflow/internal/pkg/config"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/commands"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarProvisioner creates a calendar event with an attached Meet
// conference and returns the join URL.
type GoogleCalendarProvisioner struct {
	svc        *calendar.Service
	calendarID string
}

func NewGoogleCalendarProvisioner(ctx context.Context, cfg config.MeetingConfig) (*GoogleCalendarProvisioner, error) {
	svc, err := calendar.NewService(ctx, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build calendar service")
	}
	return &GoogleCalendarProvisioner{svc: svc, calendarID: cfg.CalendarID}, nil
}

func (p *GoogleCalendarProvisioner) Provision(ctx context.Context, details commands.SessionDetails) (*commands.MeetingInfo, error) {
	event := &calendar.Event{
		Summary:     "Yoga session",
		Description: fmt.Sprintf("Booking %s", details.BookingID),
		Start:       &calendar.EventDateTime{DateTime: details.Start.Format("2006-01-02T15:04:05-07:00")},
		End:         &calendar.EventDateTime{DateTime: details.End.Format("2006-01-02T15:04:05-07:00")},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := p.svc.Events.Insert(p.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errs.Wrap(err, "failed to insert calendar event")
	}

	joinURL := created.HangoutLink
	if joinURL == "" && created.ConferenceData != nil {
		for _, ep := range created.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				joinURL = ep.Uri
				break
			}
		}
	}

	return &commands.MeetingInfo{
		JoinURL:         joinURL,
		CalendarEventID: created.Id,
	}, nil
}

// NoopProvisioner stands in when no calendar credentials are configured;
// bookings carry no meeting link.
type NoopProvisioner struct{}

func (NoopProvisioner) Provision(_ context.Context, details commands.SessionDetails) (*commands.MeetingInfo, error) {
	slog.Debug("meeting provisioning skipped: no credentials configured", "booking_id", details.BookingID)
	return nil, nil
}

func NewProvisioner(ctx context.Context, cfg config.MeetingConfig) commands.MeetingProvisioner {
	if cfg.CredentialsJSON == "" || cfg.CalendarID == "" {
		return NoopProvisioner{}
	}
	p, err := NewGoogleCalendarProvisioner(ctx, cfg)
	if err != nil {
		slog.Warn("falling back to noop meeting provisioner", "error", err.Error())
		return NoopProvisioner{}
	}
	return p
}
