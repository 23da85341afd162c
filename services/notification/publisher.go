package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tutormatch/models"
	"tutormatch/utils"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const SubjectAppointmentBooked = "appointment.booked"

// Publisher announces booking events to interested consumers.
type Publisher interface {
	PublishAppointmentBooked(ctx context.Context, appt models.Appointment) error
}

// AppointmentBookedEvent is the payload sent on SubjectAppointmentBooked.
type AppointmentBookedEvent struct {
	EventType   string             `json:"event_type"`
	Appointment models.Appointment `json:"appointment"`
	BookedAt    time.Time          `json:"booked_at"`
}

// conn is the subset of *nats.Conn the publisher needs.
type conn interface {
	Publish(subj string, data []byte) error
}

type NatsPublisher struct {
	conn conn
	now  func() time.Time
}

// NewNatsPublisher connects to natsURL. The returned close func drains the connection.
func NewNatsPublisher(natsURL string) (*NatsPublisher, func(), error) {
	nc, err := nats.Connect(natsURL, nats.Name("tutormatch"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	closeFn := func() {
		if err := nc.Drain(); err != nil {
			utils.GetLogger().Warn("NATS drain failed", zap.Error(err))
		}
	}
	return newPublisher(nc), closeFn, nil
}

func newPublisher(c conn) *NatsPublisher {
	return &NatsPublisher{conn: c, now: time.Now}
}

func (p *NatsPublisher) PublishAppointmentBooked(ctx context.Context, appt models.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(AppointmentBookedEvent{
		EventType:   SubjectAppointmentBooked,
		Appointment: appt,
		BookedAt:    p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.conn.Publish(SubjectAppointmentBooked, payload); err != nil {
		return fmt.Errorf("failed to publish %s: %w", SubjectAppointmentBooked, err)
	}
	utils.GetLogger().Debug("Published event",
		zap.String("subject", SubjectAppointmentBooked),
		zap.String("teacherID", appt.TeacherID),
		zap.String("studentID", appt.StudentID))
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishAppointmentBooked(context.Context, models.Appointment) error { return nil }
