package schedremote

import (
	"context"
	"sync"
	"time"
)

// StatusPoller is the slice of Client that PollSession needs.
type StatusPoller interface {
	PollStatus(ctx context.Context, jobID string) (JobStatus, error)
}

// PollUpdate is one observed job status. Err is set when a poll's
// transport call failed, which is terminal: polling stops and the
// last-known progress is frozen.
type PollUpdate struct {
	Status JobStatus
	Err    error
}

// Terminal reports whether this update ended the session.
func (u PollUpdate) Terminal() bool {
	return u.Err != nil || u.Status.Terminal()
}

// PollSession owns the interval timer for one submitted job. The timer is
// acquired by Start and released exactly once: on a terminal status, on a
// transport failure, or by Cancel. Polls never overlap; each tick issues
// at most one request. Abandoning a job (e.g. starting a new run) must go
// through Cancel so no dangling timer keeps updating stale state.
type PollSession struct {
	poller   StatusPoller
	jobID    string
	interval time.Duration

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc

	stopOnce sync.Once
	updates  chan PollUpdate
	done     chan struct{}
}

// NewPollSession prepares a session for jobID. Nothing runs until Start.
func NewPollSession(poller StatusPoller, jobID string, interval time.Duration) *PollSession {
	return &PollSession{
		poller:   poller,
		jobID:    jobID,
		interval: interval,
		updates:  make(chan PollUpdate, 16),
		done:     make(chan struct{}),
	}
}

// JobID returns the job this session polls.
func (s *PollSession) JobID() string { return s.jobID }

// Updates delivers every observed status. The channel is closed when the
// session ends; the final update before close is terminal unless the
// session was cancelled.
func (s *PollSession) Updates() <-chan PollUpdate { return s.updates }

// Done is closed when the session has fully stopped.
func (s *PollSession) Done() <-chan struct{} { return s.done }

// Start begins interval polling. Starting twice is a no-op.
func (s *PollSession) Start(ctx context.Context) {
	s.mu.Lock()
	select {
	case <-s.done: // cancelled before start
		s.mu.Unlock()
		return
	default:
	}
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	go s.run(ctx)
}

// Cancel stops polling. Safe to call multiple times and before Start.
func (s *PollSession) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	started := s.started
	s.mu.Unlock()

	if !started {
		s.stop()
		return
	}
	if cancel != nil {
		cancel()
	}
}

func (s *PollSession) run(ctx context.Context) {
	defer s.stop()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		status, err := s.poller.PollStatus(ctx, s.jobID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.deliver(ctx, PollUpdate{Err: err})
			return
		}

		s.deliver(ctx, PollUpdate{Status: status})
		if status.Terminal() {
			return
		}
	}
}

func (s *PollSession) deliver(ctx context.Context, u PollUpdate) {
	select {
	case s.updates <- u:
	case <-ctx.Done():
	}
}

func (s *PollSession) stop() {
	s.stopOnce.Do(func() {
		close(s.updates)
		close(s.done)
	})
}
