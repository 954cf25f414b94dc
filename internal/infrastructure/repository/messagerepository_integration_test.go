package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
)

func createTestMessage(t *testing.T, ticketSID, sentBy string) *message.Message {
	t.Helper()
	msg, err := message.NewMessage(ticketSID, "Tried reseating the cable.", sentBy, nil, nil)
	require.NoError(t, err)
	return msg
}

func TestMessageRepository_SaveAndGet(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	msg := createTestMessage(t, "tkt_000000000abc", "alice")
	require.NoError(t, repo.Save(ctx, msg))
	assert.NotZero(t, msg.InternalID())

	found, err := repo.GetBySID(ctx, msg.SID())
	require.NoError(t, err)
	assert.Equal(t, msg.SID(), found.SID())
	assert.Equal(t, "tkt_000000000abc", found.TicketSID())
	assert.Equal(t, "alice", found.SentBy())
	assert.Nil(t, found.FileName())

	_, err = repo.GetBySID(ctx, "msg_missing00000")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMessageRepository_SaveWithAttachment(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	fileName := "screen.jpg"
	url := "https://files.example.com/screen.jpg"
	msg, err := message.NewMessage("tkt_000000000abc", "Photo attached.", "alice", &fileName, &url)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, msg))

	found, err := repo.GetBySID(ctx, msg.SID())
	require.NoError(t, err)
	require.NotNil(t, found.FileName())
	assert.Equal(t, fileName, *found.FileName())
	require.NotNil(t, found.AttachmentURL())
	assert.Equal(t, url, *found.AttachmentURL())
}

func TestMessageRepository_ListByTicket(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	first := createTestMessage(t, "tkt_000000000abc", "alice")
	second := createTestMessage(t, "tkt_000000000abc", "support-staff")
	other := createTestMessage(t, "tkt_000000000def", "bob")
	for _, msg := range []*message.Message{first, second, other} {
		require.NoError(t, repo.Save(ctx, msg))
	}

	thread, err := repo.ListByTicket(ctx, "tkt_000000000abc")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	// Threads read oldest first.
	assert.Equal(t, first.SID(), thread[0].SID())
	assert.Equal(t, second.SID(), thread[1].SID())

	empty, err := repo.ListByTicket(ctx, "tkt_missing00000")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMessageRepository_Delete(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	msg := createTestMessage(t, "tkt_000000000abc", "alice")
	require.NoError(t, repo.Save(ctx, msg))

	require.NoError(t, repo.Delete(ctx, msg.SID()))

	_, err := repo.GetBySID(ctx, msg.SID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, msg.SID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMessageRepository_DeleteByTicket(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, createTestMessage(t, "tkt_000000000abc", "alice")))
	}
	keep := createTestMessage(t, "tkt_000000000def", "bob")
	require.NoError(t, repo.Save(ctx, keep))

	require.NoError(t, repo.DeleteByTicket(ctx, "tkt_000000000abc"))

	gone, err := repo.ListByTicket(ctx, "tkt_000000000abc")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.ListByTicket(ctx, "tkt_000000000def")
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	// An empty thread is not an error.
	assert.NoError(t, repo.DeleteByTicket(ctx, "tkt_000000000abc"))
}

func TestTransactionManager_RollsBackThreadDelete(t *testing.T) {
	gdb := setupTestDB(t)
	ticketRepo := NewTicketRepository(gdb)
	messageRepo := NewMessageRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	tk := createTestTicket(t, "alice")
	require.NoError(t, ticketRepo.Save(ctx, tk))
	require.NoError(t, messageRepo.Save(ctx, createTestMessage(t, tk.SID(), "alice")))

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := messageRepo.DeleteByTicket(txCtx, tk.SID()); err != nil {
			return err
		}
		// A failing ticket delete must restore the thread.
		return ticketRepo.Delete(txCtx, "tkt_missing00000")
	})
	require.Error(t, err)

	thread, listErr := messageRepo.ListByTicket(ctx, tk.SID())
	require.NoError(t, listErr)
	assert.Len(t, thread, 1)
}

func TestTransactionManager_CommitsCascade(t *testing.T) {
	gdb := setupTestDB(t)
	ticketRepo := NewTicketRepository(gdb)
	messageRepo := NewMessageRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	tk := createTestTicket(t, "alice")
	require.NoError(t, ticketRepo.Save(ctx, tk))
	require.NoError(t, messageRepo.Save(ctx, createTestMessage(t, tk.SID(), "alice")))

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := messageRepo.DeleteByTicket(txCtx, tk.SID()); err != nil {
			return err
		}
		return ticketRepo.Delete(txCtx, tk.SID())
	})
	require.NoError(t, err)

	_, err = ticketRepo.GetBySID(ctx, tk.SID())
	assert.True(t, errors.IsNotFoundError(err))

	thread, err := messageRepo.ListByTicket(ctx, tk.SID())
	require.NoError(t, err)
	assert.Empty(t, thread)
}
