//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/infra/memstore"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/usecase/shared"
	"cinema-ticketing/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type fakeMailer struct {
	mu    sync.Mutex
	sent  []sale.Email
	fails int
}

func (m *fakeMailer) Send(_ context.Context, email sale.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails > 0 {
		m.fails--
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type statusCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *statusCounter) ObserveNotification(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[status]++
}

type setup struct {
	store  *memstore.Store
	uow    shared.UnitOfWork
	clock  *clock.MockClock
	mailer *fakeMailer
	cfg    config.WorkerConfig
}

func newSetup(t *testing.T) *setup {
	t.Helper()
	store := memstore.NewStore()
	return &setup{
		store:  store,
		uow:    memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 3}),
		clock:  clock.NewMockClock(now),
		mailer: &fakeMailer{},
		cfg: config.WorkerConfig{
			NotifyInterval:    10 * time.Millisecond,
			NotifyBatchSize:   10,
			NotifyMaxAttempts: 3,
			NotifyRetryDelay:  time.Minute,
			NotifyLease:       30 * time.Second,
		},
	}
}

func (s *setup) enqueue(t *testing.T, jobs ...notification.Job) {
	t.Helper()
	require.NoError(t, s.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, j := range jobs {
			if err := tx.Notifications().Enqueue(ctx, j); err != nil {
				return err
			}
		}
		return nil
	}))
}

func emailJob(t *testing.T, to string, at time.Time) notification.Job {
	t.Helper()
	job, err := notification.NewEmailJob(notification.TopicSaleCreated, sale.Email{To: to, Subject: "You have new tickets!", Body: "Seats: 1"}, at)
	require.NoError(t, err)
	return job
}

func TestDispatcherSendsDueJobs(t *testing.T) {
	s := newSetup(t)
	s.enqueue(t, emailJob(t, "a@example.com", now), emailJob(t, "b@example.com", now.Add(time.Hour)))
	counter := &statusCounter{}
	d := worker.NewNotificationDispatcher(s.uow, s.mailer, s.clock, s.cfg, counter)

	sent, err := d.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, "a@example.com", s.mailer.sent[0].To)
	assert.Equal(t, 1, counter.counts["sent"])

	jobs := s.store.Jobs()
	assert.Equal(t, notification.StatusSent, jobs[0].Status)
	assert.Equal(t, 1, jobs[0].Attempts)
	assert.Equal(t, notification.StatusQueued, jobs[1].Status)

	sent, err = d.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent, "sent jobs are not delivered twice")
}

func TestDispatcherRetriesThenGivesUp(t *testing.T) {
	s := newSetup(t)
	s.enqueue(t, emailJob(t, "a@example.com", now))
	s.mailer.fails = 10
	counter := &statusCounter{}
	d := worker.NewNotificationDispatcher(s.uow, s.mailer, s.clock, s.cfg, counter)
	ctx := context.Background()

	_, err := d.RunOnce(ctx)
	require.NoError(t, err)
	job := s.store.Jobs()[0]
	assert.Equal(t, notification.StatusQueued, job.Status)
	assert.Equal(t, "smtp down", job.LastError)
	assert.Equal(t, now.Add(time.Minute), job.RunAt)

	sent, err := d.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent, "not due before the retry delay")
	assert.Equal(t, 1, counter.counts["retry"])

	s.clock.Add(time.Minute)
	_, err = d.RunOnce(ctx)
	require.NoError(t, err)
	s.clock.Add(2 * time.Minute)
	_, err = d.RunOnce(ctx)
	require.NoError(t, err)

	job = s.store.Jobs()[0]
	assert.Equal(t, notification.StatusFailed, job.Status)
	assert.Equal(t, 3, job.Attempts)
	assert.Equal(t, 2, counter.counts["retry"])
	assert.Equal(t, 1, counter.counts["failed"])
	assert.Zero(t, s.mailer.count())
}

func TestDispatcherFailsUnreadablePayloadAtOnce(t *testing.T) {
	s := newSetup(t)
	job := emailJob(t, "a@example.com", now)
	job.Payload = []byte(`{"subject":"no recipient"}`)
	s.enqueue(t, job)
	d := worker.NewNotificationDispatcher(s.uow, s.mailer, s.clock, s.cfg, nil)

	_, err := d.RunOnce(context.Background())
	require.NoError(t, err)

	stored := s.store.Jobs()[0]
	assert.Equal(t, notification.StatusFailed, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
}

func TestSchedulerRunsDispatcher(t *testing.T) {
	s := newSetup(t)
	s.enqueue(t, emailJob(t, "a@example.com", now))
	d := worker.NewNotificationDispatcher(s.uow, s.mailer, s.clock, s.cfg, nil)

	sched, err := worker.NewScheduler(d, s.cfg)
	require.NoError(t, err)
	sched.Start()
	t.Cleanup(func() { _ = sched.Stop() })

	assert.Eventually(t, func() bool { return s.mailer.count() == 1 }, 2*time.Second, 10*time.Millisecond)
}
