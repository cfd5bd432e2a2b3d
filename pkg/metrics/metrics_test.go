package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordBooking(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "test")

	m.RecordBooking("created")
	m.RecordBooking("created")
	m.RecordBooking("conflict")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("conflict")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBooking("created")
		m.RecordNotification("sent")
		m.RecordRosterOperation("add", "ok")
	})
}
