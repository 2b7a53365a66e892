package async_test

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharrell-gis/geoloader/internal/async"
	"github.com/jharrell-gis/geoloader/internal/entity"
	"github.com/jharrell-gis/geoloader/internal/records"
)

// countingRunner satisfies jobs.Runner for queue tests.
type countingRunner struct {
	runs atomic.Int32
	err  error
}

func (r *countingRunner) Run(context.Context) error {
	r.runs.Add(1)
	return r.err
}

func (r *countingRunner) CreateRecord(io.Reader) (records.GeoRecord, error) {
	return records.GeoRecord{}, nil
}

func (r *countingRunner) Job() *entity.Job { return &entity.Job{} }

func TestRunnerQueue(t *testing.T) {
	t.Run("runs queued jobs and drains on shutdown", func(t *testing.T) {
		q := async.NewRunnerQueue(nil, async.WithWorkers(2), async.WithQueueSize(8))

		runners := make([]*countingRunner, 5)
		for i := range runners {
			runners[i] = &countingRunner{}
			err := q.Enqueue(context.Background(), async.Task{
				JobID:       uuid.New(),
				Runner:      runners[i],
				SubmittedAt: time.Now(),
			})
			require.NoError(t, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		q.Shutdown(ctx)

		for i, r := range runners {
			assert.Equal(t, int32(1), r.runs.Load(), "runner %d", i)
		}
	})

	t.Run("a failing run does not stop the workers", func(t *testing.T) {
		q := async.NewRunnerQueue(nil, async.WithWorkers(1))

		failing := &countingRunner{err: errors.New("index down")}
		ok := &countingRunner{}
		require.NoError(t, q.Enqueue(context.Background(), async.Task{JobID: uuid.New(), Runner: failing}))
		require.NoError(t, q.Enqueue(context.Background(), async.Task{JobID: uuid.New(), Runner: ok}))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		q.Shutdown(ctx)

		assert.Equal(t, int32(1), failing.runs.Load())
		assert.Equal(t, int32(1), ok.runs.Load())
	})

	t.Run("enqueue after shutdown is a no-op", func(t *testing.T) {
		q := async.NewRunnerQueue(nil, async.WithWorkers(1))
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		q.Shutdown(ctx)

		late := &countingRunner{}
		require.NoError(t, q.Enqueue(context.Background(), async.Task{JobID: uuid.New(), Runner: late}))
		assert.Zero(t, late.runs.Load())
	})
}
