//go:build unit

package metrics_test

import (
	"testing"

	"cinema-ticketing/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	require.NotNil(t, m)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.TxAttemptsTotal)
	assert.NotNil(t, m.BookingOperationsTotal)
	assert.NotNil(t, m.SeatMapCacheTotal)
	assert.NotNil(t, m.NotificationsTotal)
}

func TestObserveTxAttempt(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.ObserveTxAttempt("conflict")
	m.ObserveTxAttempt("conflict")
	m.ObserveTxAttempt("committed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TxAttemptsTotal.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TxAttemptsTotal.WithLabelValues("committed")))
}

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.ObserveOperation("reserve", "ok")
	m.ObserveOperation("reserve", "SEATS_BUSY")
	m.ObserveOperation("purchase", "ok")

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "booking_operations_total" {
			found = true
			assert.Len(t, f.GetMetric(), 3)
		}
	}
	assert.True(t, found, "booking_operations_total metric not found")
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewWithRegistry(reg)

	assert.Panics(t, func() { metrics.NewWithRegistry(reg) })
}
