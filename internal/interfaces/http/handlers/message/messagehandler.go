package message

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/message/usecases"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/id"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type MessageHandler struct {
	createMessageUC usecases.CreateMessageExecutor
	listMessagesUC  usecases.ListMessagesExecutor
	deleteMessageUC usecases.DeleteMessageExecutor
	logger          logger.Interface
}

func NewMessageHandler(
	createMessageUC usecases.CreateMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	deleteMessageUC usecases.DeleteMessageExecutor,
) *MessageHandler {
	return &MessageHandler{
		createMessageUC: createMessageUC,
		listMessagesUC:  listMessagesUC,
		deleteMessageUC: deleteMessageUC,
		logger:          logger.NewLogger(),
	}
}

// CreateMessage handles POST /tickets/:id/messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	ticketSID, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create message", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := req.ToCommand(ticketSID, authorization.IdentityFromContext(c))

	result, err := h.createMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMessages handles GET /tickets/:id/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	ticketSID, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListMessagesQuery{
		TicketSID: ticketSID,
		Identity:  authorization.IdentityFromContext(c),
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteMessage handles DELETE /tickets/:id/messages/:message_id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	ticketSID, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messageSID, err := utils.ParseSIDParam(c, "message_id", id.PrefixMessage, "message")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteMessageCommand{
		TicketSID:  ticketSID,
		MessageSID: messageSID,
		Identity:   authorization.IdentityFromContext(c),
	}

	if err := h.deleteMessageUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}
