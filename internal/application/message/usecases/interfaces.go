package usecases

import (
	"context"

	"fixdesk/internal/application/message/dto"
)

type CreateMessageExecutor interface {
	Execute(ctx context.Context, cmd CreateMessageCommand) (*CreateMessageResult, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error)
}

type DeleteMessageExecutor interface {
	Execute(ctx context.Context, cmd DeleteMessageCommand) error
}
