package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tutormatch/models"

	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (c *recordingConn) Publish(subj string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subj)
	c.payloads = append(c.payloads, data)
	return nil
}

func TestPublishAppointmentBooked(t *testing.T) {
	rc := &recordingConn{}
	p := newPublisher(rc)
	bookedAt := time.Date(2030, 1, 7, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return bookedAt }

	appt := models.Appointment{
		Date:      time.Date(2030, 1, 7, 13, 0, 0, 0, time.UTC),
		TeacherID: "t1",
		StudentID: "s1",
		Course:    "Math",
	}
	require.NoError(t, p.PublishAppointmentBooked(context.Background(), appt))
	require.Equal(t, []string{SubjectAppointmentBooked}, rc.subjects)

	var event AppointmentBookedEvent
	require.NoError(t, json.Unmarshal(rc.payloads[0], &event))
	require.Equal(t, "appointment.booked", event.EventType)
	require.Equal(t, "Math", event.Appointment.Course)
	require.True(t, event.Appointment.Date.Equal(appt.Date))
	require.True(t, event.BookedAt.Equal(bookedAt))
}

func TestPublishAppointmentBooked_Errors(t *testing.T) {
	p := newPublisher(&recordingConn{err: errors.New("nats: connection closed")})
	err := p.PublishAppointmentBooked(context.Background(), models.Appointment{})
	require.ErrorContains(t, err, "connection closed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, newPublisher(&recordingConn{}).PublishAppointmentBooked(ctx, models.Appointment{}), context.Canceled)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	require.NoError(t, p.PublishAppointmentBooked(context.Background(), models.Appointment{}))
}
