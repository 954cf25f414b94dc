package usecases

import (
	"context"
	"testing"
	"time"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/shared/logger"
)

func newTestTicket(t *testing.T, sid, owner string) *ticket.Ticket {
	t.Helper()
	severity, err := vo.NewSeverity(3)
	if err != nil {
		t.Fatalf("NewSeverity() error = %v", err)
	}
	manufacturer := "Lenovo"
	model := "ThinkPad X1"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(
		1, sid, nil, &manufacturer, &model,
		"Screen flickers", "The screen flickers on boot.", owner,
		severity, false, now, now,
	)
	if err != nil {
		t.Fatalf("ReconstructTicket() error = %v", err)
	}
	return tk
}

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	ApplyUpdateFunc func(ctx context.Context, sid string, u ticket.Update) error
	GetBySIDFunc    func(ctx context.Context, sid string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context) ([]*ticket.Ticket, error)
	ListByOwnerFunc func(ctx context.Context, owner string) ([]*ticket.Ticket, error)
	DeleteFunc      func(ctx context.Context, sid string) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) ApplyUpdate(ctx context.Context, sid string, u ticket.Update) error {
	if m.ApplyUpdateFunc != nil {
		return m.ApplyUpdateFunc(ctx, sid, u)
	}
	return nil
}

func (m *mockTicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, owner string) ([]*ticket.Ticket, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, owner)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, sid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sid)
	}
	return nil
}

type mockMessageRepository struct {
	SaveFunc           func(ctx context.Context, msg *message.Message) error
	GetBySIDFunc       func(ctx context.Context, sid string) (*message.Message, error)
	ListByTicketFunc   func(ctx context.Context, ticketSID string) ([]*message.Message, error)
	DeleteFunc         func(ctx context.Context, sid string) error
	DeleteByTicketFunc func(ctx context.Context, ticketSID string) error
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *message.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) GetBySID(ctx context.Context, sid string) (*message.Message, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockMessageRepository) ListByTicket(ctx context.Context, ticketSID string) ([]*message.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketSID)
	}
	return nil, nil
}

func (m *mockMessageRepository) Delete(ctx context.Context, sid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sid)
	}
	return nil
}

func (m *mockMessageRepository) DeleteByTicket(ctx context.Context, ticketSID string) error {
	if m.DeleteByTicketFunc != nil {
		return m.DeleteByTicketFunc(ctx, ticketSID)
	}
	return nil
}

// mockTxRunner executes the callback directly, without a transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockContentService struct {
	SanitizeFunc func(input string) string
}

func (m *mockContentService) Sanitize(input string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(input)
	}
	return input
}

func (m *mockContentService) RenderHTML(markdown string) (string, error) {
	return markdown, nil
}

func (m *mockContentService) RenderSanitized(markdown string) (string, error) {
	return markdown, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
