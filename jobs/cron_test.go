package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotelinfo/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	calls  []time.Time
	result int64
	err    error
}

func (f *fakeCompleter) CompleteBookingsBefore(_ context.Context, t time.Time) (int64, error) {
	f.calls = append(f.calls, t)
	return f.result, f.err
}

func TestCompleteFinishedStays(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeCompleter{result: 3}

	n := CompleteFinishedStays(context.Background(), store, logger.Nop(), now)
	assert.Equal(t, int64(3), n)
	require.Len(t, store.calls, 1)
	assert.Equal(t, now, store.calls[0])

	store.err = fmt.Errorf("db down")
	assert.Zero(t, CompleteFinishedStays(context.Background(), store, logger.Nop(), now))
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, &fakeCompleter{}, logger.Nop()))
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Next.After(time.Now()))
}
