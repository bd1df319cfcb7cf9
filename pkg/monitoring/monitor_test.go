package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubmission(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(AssessmentSubmissions.WithLabelValues("stres", "sedang", "false"))
	RecordSubmission("stres", "sedang", false)
	after := testutil.ToFloat64(AssessmentSubmissions.WithLabelValues("stres", "sedang", "false"))

	assert.Equal(t, before+1, after)
}
