package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memorySink struct {
	mu      sync.Mutex
	entries []Entry
	err     error
}

func (s *memorySink) Write(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

type blockingSink struct {
	release chan struct{}
	done    chan struct{}
}

func (s *blockingSink) Write(ctx context.Context, entry Entry) error {
	defer close(s.done)
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.subject = subject
	p.data = data
	return nil
}

func TestRecorder_Record(t *testing.T) {
	t.Run("writes entry to every sink", func(t *testing.T) {
		first, second := &memorySink{}, &memorySink{}
		rec := NewRecorder(zap.NewNop().Sugar(), time.Second, first, second)

		rec.Record(context.Background(), "admin-1", ActionApproveRegistration, map[string]interface{}{
			"registration_id": "r1",
			"team_id":         "t1",
		})
		rec.Wait()

		require.Len(t, first.entries, 1)
		require.Len(t, second.entries, 1)
		entry := first.entries[0]
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "admin-1", entry.ActorID)
		assert.Equal(t, ActionApproveRegistration, entry.Action)
		assert.False(t, entry.CreatedAt.IsZero())

		var detail map[string]string
		require.NoError(t, json.Unmarshal(entry.Detail, &detail))
		assert.Equal(t, "t1", detail["team_id"])
		assert.Equal(t, entry.ID, second.entries[0].ID)
	})

	t.Run("failing sink is logged and does not stop the others", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		failing := &memorySink{err: errors.New("connection refused")}
		ok := &memorySink{}
		rec := NewRecorder(zap.New(core).Sugar(), time.Second, failing, ok)

		rec.Record(context.Background(), "admin-1", ActionDeleteTeam, nil)
		rec.Wait()

		assert.Len(t, ok.entries, 1)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "audit write failed", logs.All()[0].Message)
	})

	t.Run("cancelled request context does not drop the entry", func(t *testing.T) {
		sink := &memorySink{}
		pub := &fakePublisher{}
		rec := NewRecorder(zap.NewNop().Sugar(), 0, sink, NewNATSSink(pub, "championship.audit"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rec.Record(ctx, "admin-1", ActionCloseChampionship, map[string]interface{}{"championship_id": "c1"})
		rec.Wait()

		assert.Len(t, sink.entries, 1)
		assert.Equal(t, "championship.audit", pub.subject)
	})
}

func TestRecorder_RecordDoesNotBlock(t *testing.T) {
	t.Run("returns before a slow sink finishes", func(t *testing.T) {
		slow := &blockingSink{release: make(chan struct{}), done: make(chan struct{})}
		rec := NewRecorder(zap.NewNop().Sugar(), time.Minute, slow)

		returned := make(chan struct{})
		go func() {
			rec.Record(context.Background(), "admin-1", ActionSubmitScore, nil)
			close(returned)
		}()

		select {
		case <-returned:
		case <-time.After(time.Second):
			t.Fatal("Record waited for the sink")
		}

		close(slow.release)
		rec.Wait()
		<-slow.done
	})

	t.Run("write is bounded by the timeout", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		stuck := &blockingSink{release: make(chan struct{}), done: make(chan struct{})}
		rec := NewRecorder(zap.New(core).Sugar(), 20*time.Millisecond, stuck)

		rec.Record(context.Background(), "admin-1", ActionSubmitScore, nil)
		rec.Wait()

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, context.DeadlineExceeded.Error(), logs.All()[0].ContextMap()["error"])
	})
}

func TestNATSSink_Write(t *testing.T) {
	t.Run("publishes json entry", func(t *testing.T) {
		pub := &fakePublisher{}
		sink := NewNATSSink(pub, "audit")

		err := sink.Write(context.Background(), Entry{ID: "e1", ActorID: "a", Action: ActionSubmitScore})

		require.NoError(t, err)
		assert.Equal(t, "audit", pub.subject)
		var got Entry
		require.NoError(t, json.Unmarshal(pub.data, &got))
		assert.Equal(t, "e1", got.ID)
		assert.Equal(t, ActionSubmitScore, got.Action)
	})

	t.Run("publish error is wrapped", func(t *testing.T) {
		cause := errors.New("nats: connection closed")
		sink := NewNATSSink(&fakePublisher{err: cause}, "audit")

		err := sink.Write(context.Background(), Entry{ID: "e1"})

		assert.ErrorIs(t, err, cause)
	})

	t.Run("expired context", func(t *testing.T) {
		sink := NewNATSSink(&fakePublisher{}, "audit")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sink.Write(ctx, Entry{ID: "e1"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Record(context.Background(), "x", ActionSetBadge, nil)
	})
}
