package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpirer struct{ mock.Mock }

func (m *MockExpirer) Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) OrdersExpired(n int) {
	m.Called(n)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce_PassesTTLAndRecordsCount(t *testing.T) {
	expirer := new(MockExpirer)
	recorder := new(MockRecorder)

	var got commands.ExpirePendingOrdersCommand
	expirer.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(commands.ExpirePendingOrdersCommand) }).
		Return(3, nil).Once()
	recorder.On("OrdersExpired", 3).Once()

	job := jobs.NewExpirePendingOrdersJob(expirer, recorder, 30*time.Minute, "", discardLogger())
	job.RunOnce(context.Background())

	assert.Equal(t, 30*time.Minute, got.TTL())
	expirer.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestRunOnce_PartialFailureStillRecordsExpired(t *testing.T) {
	expirer := new(MockExpirer)
	recorder := new(MockRecorder)
	expirer.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("expire order 9: connection reset"))
	recorder.On("OrdersExpired", 1).Once()

	job := jobs.NewExpirePendingOrdersJob(expirer, recorder, time.Hour, "", discardLogger())
	job.RunOnce(context.Background())

	recorder.AssertExpectations(t)
}

func TestRunOnce_NothingExpired(t *testing.T) {
	expirer := new(MockExpirer)
	recorder := new(MockRecorder)
	expirer.On("Handle", mock.Anything, mock.Anything).Return(0, nil)

	job := jobs.NewExpirePendingOrdersJob(expirer, recorder, time.Hour, "", discardLogger())
	job.RunOnce(context.Background())

	recorder.AssertNotCalled(t, "OrdersExpired", mock.Anything)
}

func TestRunOnce_NonPositiveTTLNeverCallsHandler(t *testing.T) {
	expirer := new(MockExpirer)
	recorder := new(MockRecorder)

	job := jobs.NewExpirePendingOrdersJob(expirer, recorder, 0, "", discardLogger())
	job.RunOnce(context.Background())

	expirer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	job := jobs.NewExpirePendingOrdersJob(new(MockExpirer), new(MockRecorder), time.Hour, "every minute", discardLogger())

	require.Error(t, job.Start())
}

func TestStart_RunsOnSchedule(t *testing.T) {
	expirer := new(MockExpirer)
	recorder := new(MockRecorder)
	ran := make(chan struct{}, 1)
	expirer.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(0, nil)

	job := jobs.NewExpirePendingOrdersJob(expirer, recorder, time.Hour, "* * * * * *", discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run within its schedule")
	}
}
