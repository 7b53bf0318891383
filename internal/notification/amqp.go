package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// AMQPPublisher publishes domain events to a durable topic exchange, routed
// by event type. With no broker URL configured it only logs.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
	logger   logger.Logger
}

func NewAMQPPublisher(url, exchange string, logger logger.Logger) (*AMQPPublisher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, domain events disabled")
		return &AMQPPublisher{exchange: exchange, logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *AMQPPublisher) Enabled() bool {
	return p.ch != nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event domain.Event) {
	if p.ch == nil {
		p.logger.Debug("event skipped (publisher disabled)", logger.String("type", string(event.Type)))
		return
	}

	if err := ctx.Err(); err != nil {
		p.logger.Debug("event skipped (context cancelled)", logger.String("type", string(event.Type)))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal event",
			logger.String("type", string(event.Type)),
			logger.String("error", err.Error()),
		)
		return
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		p.logger.Error("failed to publish event",
			logger.String("type", string(event.Type)),
			logger.String("listing_id", event.ListingID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	_ = p.ch.Close()
	return p.conn.Close()
}
