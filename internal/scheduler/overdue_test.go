package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeMarker struct {
	calls   int
	cutoffs []time.Time
}

func (f *fakeMarker) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoffs = append(f.cutoffs, cutoff)
	return 1, nil
}

func TestOverdueJob_DisabledByDefault(t *testing.T) {
	marker := &fakeMarker{}
	job := NewOverdueJob(marker, 0)

	assert.NoError(t, job.Start())
	job.Stop()
	assert.Zero(t, marker.calls)
}

func TestOverdueJob_RunsOnStart(t *testing.T) {
	marker := &fakeMarker{}
	job := NewOverdueJob(marker, 30)

	assert.NoError(t, job.Start())
	defer job.Stop()

	assert.Equal(t, 1, marker.calls)
	wantDay := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	assert.Equal(t, wantDay, marker.cutoffs[0].Format("2006-01-02"))
}
