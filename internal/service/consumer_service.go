package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/pkg/logger"
	"contract-editor-be/internal/pkg/mailer"
	"contract-editor-be/internal/repository/specification"
	"contract-editor-be/internal/repository/unitofwork"
	"contract-editor-be/internal/websocket"
	"contract-editor-be/pkg/events"
	pktNats "contract-editor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the internal bus: every template event is pushed to
// the websocket hub, published events additionally trigger an email and are
// mirrored to NATS for external consumers.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	hub            *websocket.Hub
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		hub:            hub,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.TemplateEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx, specification.ByID{ID: payload.TemplateId})
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load template", map[string]interface{}{"template_id": payload.TemplateId, "error": err.Error()})
		msg.Nack()
		return
	}
	if template == nil {
		// Template deleted between event and delivery.
		msg.Ack()
		return
	}

	version, err := uow.TemplateVersionRepository().FindOne(ctx, specification.ByID{ID: payload.VersionId})
	if err != nil {
		msg.Nack()
		return
	}

	notification := dto.NotificationMessage{
		Id:         uuid.New(),
		Type:       payload.Type,
		TemplateId: &payload.TemplateId,
		VersionId:  &payload.VersionId,
		CreatedAt:  time.Now(),
	}

	switch payload.Type {
	case dto.EventTemplatePublished:
		notification.Title = "Template published"
		versionNumber := 0
		if version != nil {
			versionNumber = version.VersionNumber
		}
		notification.Message = fmt.Sprintf("%s v%d is now live", template.Name, versionNumber)

		if cs.emailService != nil {
			user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
			if err == nil && user != nil {
				go func(email, name string, number int) {
					if err := cs.emailService.SendPublishNotice(email, name, number); err != nil {
						cs.logger.Warn("ConsumerService", "Failed to send publish notice", map[string]interface{}{"error": err.Error()})
					}
				}(user.Email, template.Name, versionNumber)
			}
		}
	case dto.EventTemplatePreviewed:
		notification.Title = "Preview generated"
		notification.Message = fmt.Sprintf("Preview for %s is ready", template.Name)
	default:
		cs.logger.Warn("ConsumerService", "Unknown event type", map[string]interface{}{"type": payload.Type})
		msg.Ack()
		return
	}

	if cs.hub != nil {
		cs.hub.Send(payload.UserId, notification)
	}

	// Mirror to the external bus; a NATS outage never blocks delivery.
	if cs.eventPublisher != nil {
		event := events.BaseEvent{
			Type: payload.Type,
			Data: map[string]interface{}{
				"template_id": payload.TemplateId,
				"version_id":  payload.VersionId,
				"user_id":     payload.UserId,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to mirror event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
