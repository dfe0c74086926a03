package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGetIsSingleton(t *testing.T) {
	assert.Same(t, Get(), Initialize())
}

func TestCounters(t *testing.T) {
	m := Get()

	before := testutil.ToFloat64(m.LikesTotal.WithLabelValues("set"))
	m.LikesTotal.WithLabelValues("set").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(m.LikesTotal.WithLabelValues("set")))

	beforeComments := testutil.ToFloat64(m.CommentsCreatedTotal)
	m.CommentsCreatedTotal.Inc()
	assert.Equal(t, beforeComments+1, testutil.ToFloat64(m.CommentsCreatedTotal))
}
