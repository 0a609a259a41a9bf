package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// DefaultTimeout bounds how long the sink writes of a single entry may take.
const DefaultTimeout = 2 * time.Second

// Logger records actions. Implementations never fail the caller.
type Logger interface {
	Record(ctx context.Context, actorID, action string, detail map[string]interface{})
}

// Sink persists or forwards an entry.
type Sink interface {
	Write(ctx context.Context, entry Entry) error
}

// Recorder fans entries out to its sinks in the background. Sink failures are
// logged and dropped.
type Recorder struct {
	sinks   []Sink
	logger  *zap.SugaredLogger
	timeout time.Duration
	now     func() time.Time
	pending sync.WaitGroup
}

// NewRecorder creates a recorder writing to sinks.
func NewRecorder(logger *zap.SugaredLogger, timeout time.Duration, sinks ...Sink) *Recorder {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Recorder{
		sinks:   sinks,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// Record implements Logger. The entry is built synchronously and written on
// a separate goroutine, detached from the request cancellation and bounded by
// the recorder timeout, so the caller never waits on a sink.
func (r *Recorder) Record(ctx context.Context, actorID, action string, detail map[string]interface{}) {
	payload, err := json.Marshal(detail)
	if err != nil {
		r.logger.Warnw("audit detail not serializable", "action", action, "error", err)
		payload = []byte("{}")
	}

	entry := Entry{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		Action:    action,
		Detail:    datatypes.JSON(payload),
		CreatedAt: r.now().UTC(),
	}

	writeCtx := context.WithoutCancel(ctx)
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		r.write(writeCtx, entry)
	}()
}

// Wait blocks until every entry recorded so far has been handed to the sinks.
func (r *Recorder) Wait() {
	r.pending.Wait()
}

func (r *Recorder) write(ctx context.Context, entry Entry) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	for _, sink := range r.sinks {
		if err := sink.Write(ctx, entry); err != nil {
			r.logger.Warnw("audit write failed",
				"action", entry.Action,
				"actor_id", entry.ActorID,
				"error", err,
			)
		}
	}
}

type nop struct{}

func (nop) Record(context.Context, string, string, map[string]interface{}) {}

// Nop returns a Logger that discards entries.
func Nop() Logger {
	return nop{}
}
