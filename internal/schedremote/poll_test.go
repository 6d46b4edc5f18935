package schedremote

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPoller returns each status in order, then repeats the last one.
type scriptedPoller struct {
	statuses []JobStatus
	errAt    int // 1-based call number that fails; 0 disables
	calls    atomic.Int32
}

func (p *scriptedPoller) PollStatus(ctx context.Context, jobID string) (JobStatus, error) {
	n := int(p.calls.Add(1))
	if p.errAt > 0 && n >= p.errAt {
		return JobStatus{}, errors.New("connection refused")
	}
	idx := n - 1
	if idx >= len(p.statuses) {
		idx = len(p.statuses) - 1
	}
	return p.statuses[idx], nil
}

func collect(t *testing.T, s *PollSession) []PollUpdate {
	t.Helper()
	var got []PollUpdate
	timeout := time.After(5 * time.Second)
	for {
		select {
		case u, ok := <-s.Updates():
			if !ok {
				return got
			}
			got = append(got, u)
		case <-timeout:
			t.Fatal("poll session did not finish")
		}
	}
}

func TestPollSession_RunsToCompletion(t *testing.T) {
	poller := &scriptedPoller{statuses: []JobStatus{
		{Status: StatusQueued, Progress: 0},
		{Status: StatusRunning, Progress: 50},
		{Status: StatusComplete, Progress: 100, Result: &JobResult{}},
	}}
	s := NewPollSession(poller, "job-1", time.Millisecond)
	s.Start(context.Background())

	updates := collect(t, s)

	require.Len(t, updates, 3)
	assert.Equal(t, StatusQueued, updates[0].Status.Status)
	assert.True(t, updates[2].Terminal())
	require.NotNil(t, updates[2].Status.Result)

	<-s.Done()
	assert.Equal(t, int32(3), poller.calls.Load(), "polling stops at the terminal status")
}

func TestPollSession_ErrorStatusIsTerminal(t *testing.T) {
	poller := &scriptedPoller{statuses: []JobStatus{
		{Status: StatusRunning, Progress: 30},
		{Status: StatusError, Error: "solver infeasible"},
	}}
	s := NewPollSession(poller, "job-1", time.Millisecond)
	s.Start(context.Background())

	updates := collect(t, s)

	require.Len(t, updates, 2)
	last := updates[len(updates)-1]
	assert.True(t, last.Terminal())
	assert.Equal(t, "solver infeasible", last.Status.Error, "error text surfaces verbatim")
}

func TestPollSession_TransportFailureStopsPolling(t *testing.T) {
	poller := &scriptedPoller{
		statuses: []JobStatus{{Status: StatusRunning, Progress: 30}},
		errAt:    2,
	}
	s := NewPollSession(poller, "job-1", time.Millisecond)
	s.Start(context.Background())

	updates := collect(t, s)

	require.NotEmpty(t, updates)
	last := updates[len(updates)-1]
	require.Error(t, last.Err)

	<-s.Done()
	calls := poller.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, poller.calls.Load(), "no polls after the failed one")
}

func TestPollSession_Cancel(t *testing.T) {
	poller := &scriptedPoller{statuses: []JobStatus{{Status: StatusRunning, Progress: 10}}}
	s := NewPollSession(poller, "job-1", time.Millisecond)
	s.Start(context.Background())

	time.Sleep(10 * time.Millisecond)
	s.Cancel()
	s.Cancel() // release is idempotent

	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("cancel did not stop the session")
	}

	calls := poller.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, poller.calls.Load(), "no dangling timer after cancel")
}

func TestPollSession_CancelBeforeStart(t *testing.T) {
	poller := &scriptedPoller{statuses: []JobStatus{{Status: StatusRunning}}}
	s := NewPollSession(poller, "job-1", time.Millisecond)

	s.Cancel()
	s.Start(context.Background())

	<-s.Done()
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, poller.calls.Load())
}

func TestPollSession_StartTwiceIsNoop(t *testing.T) {
	poller := &scriptedPoller{statuses: []JobStatus{
		{Status: StatusComplete, Progress: 100},
	}}
	s := NewPollSession(poller, "job-1", time.Millisecond)
	s.Start(context.Background())
	s.Start(context.Background())

	updates := collect(t, s)
	require.Len(t, updates, 1)
}
