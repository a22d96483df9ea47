package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEvaluation(t *testing.T) {
	okBefore := testutil.ToFloat64(CostEvaluationsTotal.WithLabelValues("road", "ok"))
	errBefore := testutil.ToFloat64(CostEvaluationsTotal.WithLabelValues("road", "error"))

	RecordEvaluation("road", nil)
	RecordEvaluation("road", errors.New("boom"))
	RecordEvaluation("road", nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(CostEvaluationsTotal.WithLabelValues("road", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(CostEvaluationsTotal.WithLabelValues("road", "error")))
}

func TestRecordMatrixBuild(t *testing.T) {
	before := testutil.ToFloat64(MatrixBuildsTotal)

	RecordMatrixBuild(3 * time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(MatrixBuildsTotal))
}

func TestRecordMatrixCache(t *testing.T) {
	hits := testutil.ToFloat64(MatrixCacheResults.WithLabelValues("hit"))
	misses := testutil.ToFloat64(MatrixCacheResults.WithLabelValues("miss"))

	RecordMatrixCache(true)
	RecordMatrixCache(false)
	RecordMatrixCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(MatrixCacheResults.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(MatrixCacheResults.WithLabelValues("miss")))
}
