package events

import (
	"context"
	"time"

	"shopspot-be/internal/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer writes event envelopes to Kafka through a buffered inbox so
// publishing never blocks the request path.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	done    chan struct{}
	closeCh chan struct{}
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		done:    make(chan struct{}),
		closeCh: make(chan struct{}),
	}
}

// Start runs the write loop until ctx is cancelled, then flushes what is left
// in the inbox. The inbox channel itself is never closed; shutdown is signalled
// through done so late publishers drop instead of panicking on a closed channel.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(p.done)
				for {
					select {
					case m := <-p.inbox:
						p.write(m)
					default:
						_ = p.w.Close()
						close(p.closeCh)
						return
					}
				}
			case m := <-p.inbox:
				p.write(m)
			}
		}
	}()
}

// Publish enqueues a message; if the producer is shutting down or the inbox is
// full the message is dropped rather than blocking the caller.
func (p *Producer) Publish(key, value []byte) {
	select {
	case <-p.done:
		logger.L().Warn("producer closed, dropping event", zap.ByteString("key", key))
		return
	default:
	}

	select {
	case p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now()}:
	default:
		logger.L().Warn("event inbox full, dropping event", zap.ByteString("key", key))
	}
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		logger.L().Warn("failed to write event",
			zap.ByteString("key", m.Key),
			zap.Error(err),
		)
	}
}

// WaitClosed blocks until the write loop has flushed and exited.
func (p *Producer) WaitClosed() { <-p.closeCh }
