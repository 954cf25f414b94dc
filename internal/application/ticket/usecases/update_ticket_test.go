package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/errors"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestUpdateTicketUseCase_Execute_OwnerUpdatesFields(t *testing.T) {
	tk := newTestTicket(t, "tkt_000000000abc", "alice")
	var appliedUpdate ticket.Update
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return tk, nil
		},
		ApplyUpdateFunc: func(ctx context.Context, sid string, u ticket.Update) error {
			appliedUpdate = u
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Title:     strPtr("Screen flickers constantly"),
		Severity:  intPtr(5),
		Identity:  authorization.Identity{Username: "alice"},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Screen flickers constantly", result.Title)
	assert.Equal(t, 5, result.Severity)

	require.NotNil(t, appliedUpdate.Title)
	require.NotNil(t, appliedUpdate.Severity)
	assert.Nil(t, appliedUpdate.Description)
	assert.Nil(t, appliedUpdate.Resolved)
}

func TestUpdateTicketUseCase_Execute_ResolveAndReopen(t *testing.T) {
	tk := newTestTicket(t, "tkt_000000000abc", "alice")
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Resolved:  boolPtr(true),
		Identity:  authorization.Identity{Username: "alice"},
	})
	require.NoError(t, err)
	assert.True(t, result.Resolved)

	// Resolved is an ordinary field: setting it back to false reopens.
	result, err = uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Resolved:  boolPtr(false),
		Identity:  authorization.Identity{Username: "alice"},
	})
	require.NoError(t, err)
	assert.False(t, result.Resolved)
}

func TestUpdateTicketUseCase_Execute_SanitizesDescription(t *testing.T) {
	tk := newTestTicket(t, "tkt_000000000abc", "alice")
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	contentSvc := &mockContentService{
		SanitizeFunc: func(input string) string { return "cleaned" },
	}

	uc := NewUpdateTicketUseCase(ticketRepo, contentSvc, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID:   "tkt_000000000abc",
		Description: strPtr(`<img src=x onerror=alert(1)>`),
		Identity:    authorization.Identity{Username: "alice"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cleaned", result.Description)
}

func TestUpdateTicketUseCase_Execute_EmptyUpdateRejected(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Identity:  authorization.Identity{Username: "alice"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "no fields to update")
}

func TestUpdateTicketUseCase_Execute_InvalidSeverity(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Severity:  intPtr(6),
		Identity:  authorization.Identity{Username: "alice"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketUseCase_Execute_ForbiddenForOtherUser(t *testing.T) {
	tk := newTestTicket(t, "tkt_000000000abc", "alice")
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return tk, nil
		},
		ApplyUpdateFunc: func(ctx context.Context, sid string, u ticket.Update) error {
			t.Fatal("ApplyUpdate should not be reached")
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Resolved:  boolPtr(true),
		Identity:  authorization.Identity{Username: "bob"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateTicketUseCase_Execute_AdminUpdatesAnyTicket(t *testing.T) {
	tk := newTestTicket(t, "tkt_000000000abc", "alice")
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Resolved:  boolPtr(true),
		Identity:  authorization.Identity{Username: "root", Groups: []string{constants.AdminGroup}},
	})

	require.NoError(t, err)
	assert.True(t, result.Resolved)
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_missing00000",
		Resolved:  boolPtr(true),
		Identity:  authorization.Identity{Username: "alice"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_RepositoryUpdateFailure(t *testing.T) {
	tk := newTestTicket(t, "tkt_000000000abc", "alice")
	ticketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return tk, nil
		},
		ApplyUpdateFunc: func(ctx context.Context, sid string, u ticket.Update) error {
			return fmt.Errorf("deadlock detected")
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockContentService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketSID: "tkt_000000000abc",
		Resolved:  boolPtr(true),
		Identity:  authorization.Identity{Username: "alice"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}
