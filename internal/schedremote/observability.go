package schedremote

import (
	"io"
	"log/slog"
	"time"
)

// RequestEvent captures one service call for telemetry.
type RequestEvent struct {
	Op       string
	JobID    string
	Err      error
	Duration time.Duration
}

// Observer receives service call events.
type Observer interface {
	OnRequest(RequestEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) OnRequest(RequestEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes request events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnRequest(ev RequestEvent) {
	attrs := []any{
		"op", ev.Op,
		"duration_ms", ev.Duration.Milliseconds(),
	}
	if ev.JobID != "" {
		attrs = append(attrs, "job_id", ev.JobID)
	}
	if ev.Err != nil {
		attrs = append(attrs, "error", ev.Err.Error())
		o.logger.Error("sched_request", attrs...)
		return
	}
	o.logger.Info("sched_request", attrs...)
}
