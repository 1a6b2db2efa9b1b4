package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/pkg/logger"
	"contract-editor-be/pkg/events"
	pktNats "contract-editor-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification dto.NotificationMessage)
	Broadcast(notification dto.NotificationMessage)
}

// NotificationService ingests events arriving on the external NATS bus,
// typically emitted by other instances or collaborating services, and relays
// them to connected clients.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	payload := event.Payload()

	notification := dto.NotificationMessage{
		Id:        uuid.New(),
		Type:      typeCode,
		Title:     typeCode,
		Metadata:  payload,
		CreatedAt: time.Now(),
	}

	// Events carrying a user_id are targeted; everything else is broadcast.
	if raw, ok := payload["user_id"].(string); ok {
		if userID, err := uuid.Parse(raw); err == nil {
			s.delivery.Send(userID, notification)
			return nil
		}
	}

	s.delivery.Broadcast(notification)
	return nil
}
