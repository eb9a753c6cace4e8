package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCheckoutCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCheckout(reg)

	c.ObserveCheckout("complete")
	c.ObserveCheckout("failed")
	c.ObserveCheckout("failed")
	c.ObserveStageFailure("PERSISTING")
	c.ObserveNotification(true)
	c.ObserveNotification(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Attempts.WithLabelValues("complete")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Attempts.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StageFailures.WithLabelValues("PERSISTING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Notifications.WithLabelValues("false")))
}

func TestHTTPRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewHTTP(reg)
	h.Requests.WithLabelValues("/pos/checkout", "200").Inc()
	h.LatencyMS.WithLabelValues("/pos/checkout").Observe(12)

	n, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
