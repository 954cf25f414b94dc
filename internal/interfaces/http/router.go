package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	deviceUC "fixdesk/internal/application/device/usecases"
	messageUC "fixdesk/internal/application/message/usecases"
	ticketUC "fixdesk/internal/application/ticket/usecases"
	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/infrastructure/config"
	"fixdesk/internal/infrastructure/ratelimit"
	"fixdesk/internal/infrastructure/repository"
	devicehandlers "fixdesk/internal/interfaces/http/handlers/device"
	messagehandlers "fixdesk/internal/interfaces/http/handlers/message"
	tickethandlers "fixdesk/internal/interfaces/http/handlers/ticket"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/interfaces/http/routes"
	"fixdesk/internal/shared/authorization"
	sharedDB "fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/content"
	"fixdesk/internal/shared/utils"
)

// Router wires repositories, use cases, handlers, and middleware into a
// gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	db             *gorm.DB
	deviceHandler  *devicehandlers.DeviceHandler
	ticketHandler  *tickethandlers.TicketHandler
	messageHandler *messagehandlers.MessageHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	authorization.SetAdminGroup(cfg.Auth.AdminGroup)

	deviceRepo := repository.NewDeviceRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	txManager := sharedDB.NewTransactionManager(db)
	contentSvc := content.NewService()

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	deviceHandler := devicehandlers.NewDeviceHandler(
		deviceUC.NewCreateDeviceUseCase(deviceRepo, log),
		deviceUC.NewGetDeviceUseCase(deviceRepo, log),
		deviceUC.NewListDevicesUseCase(deviceRepo, log),
		deviceUC.NewUpdateDeviceUseCase(deviceRepo, log),
		deviceUC.NewDeleteDeviceUseCase(deviceRepo, log),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, contentSvc, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, contentSvc, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, messageRepo, txManager, log),
	)

	messageHandler := messagehandlers.NewMessageHandler(
		messageUC.NewCreateMessageUseCase(messageRepo, ticketRepo, contentSvc, log),
		messageUC.NewListMessagesUseCase(messageRepo, ticketRepo, contentSvc, log),
		messageUC.NewDeleteMessageUseCase(messageRepo, ticketRepo, log),
	)

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		log:            log,
		db:             db,
		deviceHandler:  deviceHandler,
		ticketHandler:  ticketHandler,
		messageHandler: messageHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    limiter,
	}
}

// SetupRoutes registers the middleware chain and every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	if r.rateLimiter != nil {
		window := time.Duration(r.cfg.RateLimit.WindowSeconds) * time.Second
		r.engine.Use(middleware.RateLimit(r.rateLimiter, r.cfg.RateLimit.Requests, window))
	}

	r.engine.GET("/healthz", r.handleHealthz)

	routes.SetupDeviceRoutes(r.engine, &routes.DeviceRouteConfig{
		DeviceHandler:  r.deviceHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		MessageHandler: r.messageHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// handleHealthz reports liveness and pings the database.
func (r *Router) handleHealthz(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		r.log.Errorw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, errors.CodeInternal, "database unavailable")
		return
	}
	utils.OKResponse(c, gin.H{"status": "ok"})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
