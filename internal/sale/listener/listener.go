package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/broker"
	"github.com/bleu-pos/ingredient-service/internal/sale"
	"github.com/bleu-pos/ingredient-service/internal/sale/dto"
)

// SaleListener consumes completed-sale events from the sales service and
// feeds them through the same deduction path as the HTTP endpoint.
type SaleListener struct {
	consumer *broker.KafkaConsumer
	uc       sale.UseCase
	logger   *zap.Logger
}

func NewSaleListener(consumer *broker.KafkaConsumer, uc sale.UseCase, log *zap.Logger) *SaleListener {
	return &SaleListener{
		consumer: consumer,
		uc:       uc,
		logger:   log,
	}
}

func (l *SaleListener) Start(ctx context.Context) {
	l.logger.Info("starting sale events listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("stopping sale events listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type SaleCompletedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	ID        string         `json:"id"`
	CartItems []dto.CartItem `json:"cart_items"`
}

func (l *SaleListener) processMessage(ctx context.Context, value []byte) {
	var event SaleCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal sale event", zap.Error(err))
		return
	}

	if event.EventType != "SaleCompleted" {
		return
	}

	l.logger.Info("processing SaleCompleted event", zap.String("sale_id", event.Payload.ID))

	if err := l.uc.DeductFromSale(ctx, event.Payload.CartItems); err != nil {
		l.logger.Error("failed to deduct inventory for sale event",
			zap.String("sale_id", event.Payload.ID),
			zap.Error(err),
		)
	}
}
