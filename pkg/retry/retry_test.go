package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/mindlink/pkg/logger"
	"github.com/orgball2608/mindlink/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), logger.NewNop(), "flaky", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, retry.WithInitialInterval(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUp(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), logger.NewNop(), "down", func(context.Context) error {
		calls++
		return errors.New("still down")
	}, retry.WithMaxRetries(2), retry.WithInitialInterval(time.Millisecond))

	assert.EqualError(t, err, "still down")
	assert.Equal(t, 3, calls)
}

func TestDo_Permanent(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), logger.NewNop(), "bad config", func(context.Context) error {
		calls++
		return retry.Permanent(errors.New("invalid dsn"))
	}, retry.WithInitialInterval(time.Millisecond))

	assert.EqualError(t, err, "invalid dsn")
	assert.Equal(t, 1, calls)
}
