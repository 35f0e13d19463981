package remote

import (
	"fmt"
	"io"
	"time"
)

// SaveEvent records metadata about a single save call.
type SaveEvent struct {
	Endpoint  string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about save calls for logging.
type Observer interface {
	OnSaveComplete(event SaveEvent)
}

// LogObserver writes save call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnSaveComplete(event SaveEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] save_call endpoint=%s latency_ms=%d status=%s\n",
		ts, event.Endpoint, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSaveComplete(SaveEvent) {}
