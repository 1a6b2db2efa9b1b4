package bootstrap

import (
	"context"
	"log"
	"time"

	"contract-editor-be/internal/config"
	"contract-editor-be/internal/controller"
	"contract-editor-be/internal/handler"
	"contract-editor-be/internal/pkg/logger"
	"contract-editor-be/internal/pkg/mailer"
	"contract-editor-be/internal/repository/unitofwork"
	"contract-editor-be/internal/service"
	"contract-editor-be/internal/websocket"
	"contract-editor-be/pkg/docmigration"
	"contract-editor-be/pkg/docvars"

	pktNats "contract-editor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	FolderController     controller.IFolderController
	TemplateController   controller.ITemplateController
	TagController        controller.ITagController
	InjectableController controller.IInjectableController
	PreviewController    controller.IPreviewController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Document Engine
	migrations := docmigration.Default()
	calculators := docvars.NewCalculators(time.Now)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Topics.TemplateEvents, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.TemplateEvents,
		uowFactory,
		wsHub,
		emailService,
		natsPub,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, natsPub)
	folderService := service.NewFolderService(uowFactory)
	tagService := service.NewTagService(uowFactory)
	injectableService := service.NewInjectableService(uowFactory)
	templateService := service.NewTemplateService(uowFactory, migrations, publisherService)
	previewService := service.NewPreviewService(
		uowFactory,
		injectableService,
		migrations,
		calculators,
		publisherService,
		rdb,
		sysLogger,
	)
	exportService := service.NewExportService(uowFactory, injectableService, migrations, calculators)

	// 4.5 Notification System Infrastructure
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 5. Controllers
	// Note: We return the container with public fields for the server to register
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:       controller.NewAuthController(authService),
		FolderController:     controller.NewFolderController(folderService),
		TemplateController:   controller.NewTemplateController(templateService),
		TagController:        controller.NewTagController(tagService),
		InjectableController: controller.NewInjectableController(injectableService),
		PreviewController:    controller.NewPreviewController(previewService, exportService),

		ConsumerService: consumerService,
	}
}
