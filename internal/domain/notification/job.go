package notification

import (
	"encoding/json"
	"time"

	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusQueued Status = "queued"
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

const (
	KindEmail        = "email"
	TopicSaleCreated = "sale.created"
)

var ErrInvalidPayload = errs.New("notification payload is not a valid email")

// Job is an outbox entry written in the same transaction as the event it announces.
type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    Status
	LastError string
	CreatedAt time.Time
}

func NewEmailJob(topic string, email sale.Email, now time.Time) (Job, error) {
	payload, err := json.Marshal(emailPayload{To: email.To, Subject: email.Subject, Body: email.Body})
	if err != nil {
		return Job{}, errs.Wrap(err, "failed to encode email payload")
	}
	return Job{
		ID:        uuid.New(),
		Kind:      KindEmail,
		Topic:     topic,
		Payload:   payload,
		RunAt:     now,
		Status:    StatusQueued,
		CreatedAt: now,
	}, nil
}

func (j Job) Email() (sale.Email, error) {
	var p emailPayload
	if err := json.Unmarshal(j.Payload, &p); err != nil || p.To == "" {
		return sale.Email{}, ErrInvalidPayload
	}
	return sale.Email{To: p.To, Subject: p.Subject, Body: p.Body}, nil
}

// Outcome is the state a job moves to after one delivery attempt.
type Outcome struct {
	Status    Status
	RunAt     time.Time
	LastError string
}

// NextAfterFailure queues the job again with linear backoff until maxAttempts is reached.
func (j Job) NextAfterFailure(cause error, now time.Time, maxAttempts int, delay time.Duration) Outcome {
	attempts := j.Attempts + 1
	if attempts >= maxAttempts {
		return Outcome{Status: StatusFailed, RunAt: now, LastError: cause.Error()}
	}
	return Outcome{
		Status:    StatusQueued,
		RunAt:     now.Add(time.Duration(attempts) * delay),
		LastError: cause.Error(),
	}
}

type emailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
