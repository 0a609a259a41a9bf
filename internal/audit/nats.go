package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/pkg/retry"
)

// Publisher is the part of *nats.Conn the sink uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes entries as JSON on a subject.
type NATSSink struct {
	pub     Publisher
	subject string
}

// NewNATSSink creates a sink publishing on subject.
func NewNATSSink(pub Publisher, subject string) *NATSSink {
	return &NATSSink{pub: pub, subject: subject}
}

// Write implements Sink.
func (s *NATSSink) Write(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	if err := s.pub.Publish(s.subject, data); err != nil {
		return fmt.Errorf("publish audit entry: %w", err)
	}
	return nil
}

// ConnectNATS connects to the event bus, retrying while the server is unavailable.
func ConnectNATS(ctx context.Context, url string, logger *zap.SugaredLogger) (*nats.Conn, error) {
	cfg := retry.NATSConfig()
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("nats connection failed, retrying", "attempt", attempt, "delay", delay, "error", err)
	}

	return retry.DoWithResult(ctx, cfg, func() (*nats.Conn, error) {
		return nats.Connect(url,
			nats.Name("group-champs"),
			nats.MaxReconnects(-1),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				if err != nil {
					logger.Warnw("nats disconnected", "error", err)
				}
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				logger.Infow("nats reconnected", "url", nc.ConnectedUrl())
			}),
		)
	})
}
