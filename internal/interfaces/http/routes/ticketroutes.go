package routes

import (
	"github.com/gin-gonic/gin"

	messagehandlers "fixdesk/internal/interfaces/http/handlers/message"
	tickethandlers "fixdesk/internal/interfaces/http/handlers/ticket"
	"fixdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	MessageHandler *messagehandlers.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Message thread routes share the :id wildcard with the generic
		// ticket routes; gin rejects differing parameter names here.
		tickets.POST("/:id/messages",
			config.MessageHandler.CreateMessage)
		tickets.GET("/:id/messages",
			config.MessageHandler.ListMessages)
		tickets.DELETE("/:id/messages/:message_id",
			config.MessageHandler.DeleteMessage)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.TicketHandler.DeleteTicket)
	}
}
