package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/purchase/usecase"
)

const EventOrderPlaced = "OrderPlaced"

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// PurchaseListener records a purchase for every OrderPlaced event on the
// orders topic.
type PurchaseListener struct {
	consumer MessageReader
	uc       usecase.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewPurchaseListener(consumer MessageReader, uc usecase.UseCase, logger logger.ZapLogger) *PurchaseListener {
	return &PurchaseListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (l *PurchaseListener) Start(ctx context.Context) {
	l.logger.Info("Starting Purchase Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Purchase Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderPlacedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	CustomerID int64 `json:"customer_id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int64 `json:"quantity"`
}

func (l *PurchaseListener) processMessage(ctx context.Context, value []byte) {
	var event OrderPlacedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventOrderPlaced {
		return
	}

	log := l.logger.With(
		zap.String("event_id", event.EventID),
		zap.Int64("customer_id", event.Payload.CustomerID),
		zap.Int64("product_id", event.Payload.ProductID),
	)

	id, err := l.uc.RecordPurchase(ctx, event.Payload.CustomerID, event.Payload.ProductID, event.Payload.Quantity)
	if err != nil {
		// No retry: the event is dropped and the failure stays in the log.
		log.Error("Failed to record purchase from event", zap.Error(err))
		return
	}
	log.Info("Purchase recorded from event", zap.Int64("purchase_id", id))
}
