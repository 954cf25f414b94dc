package message

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/id"
)

// Message is one entry in a ticket thread. The sender is recorded at
// creation time and never changes; it anchors deletion rights. Messages are
// immutable after creation: there is no update operation.
type Message struct {
	internalID    uint
	sid           string
	ticketSID     string
	content       string
	fileName      *string
	attachmentURL *string
	sentBy        string
	createdAt     time.Time
}

func NewMessage(
	ticketSID string,
	content string,
	sentBy string,
	fileName *string,
	attachmentURL *string,
) (*Message, error) {
	if len(ticketSID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}
	if len(sentBy) == 0 {
		return nil, fmt.Errorf("sender is required")
	}
	if fileName != nil && attachmentURL == nil {
		return nil, fmt.Errorf("attachment URL is required when a file name is set")
	}

	sid, err := id.NewMessageID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message ID: %w", err)
	}

	return &Message{
		sid:           sid,
		ticketSID:     ticketSID,
		content:       content,
		fileName:      fileName,
		attachmentURL: attachmentURL,
		sentBy:        sentBy,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	internalID uint,
	sid string,
	ticketSID string,
	content string,
	fileName *string,
	attachmentURL *string,
	sentBy string,
	createdAt time.Time,
) (*Message, error) {
	if internalID == 0 {
		return nil, fmt.Errorf("message internal ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("message ID is required")
	}
	if len(ticketSID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(sentBy) == 0 {
		return nil, fmt.Errorf("sender is required")
	}

	return &Message{
		internalID:    internalID,
		sid:           sid,
		ticketSID:     ticketSID,
		content:       content,
		fileName:      fileName,
		attachmentURL: attachmentURL,
		sentBy:        sentBy,
		createdAt:     createdAt,
	}, nil
}

func (m *Message) InternalID() uint {
	return m.internalID
}

func (m *Message) SID() string {
	return m.sid
}

func (m *Message) TicketSID() string {
	return m.ticketSID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) FileName() *string {
	return m.fileName
}

func (m *Message) AttachmentURL() *string {
	return m.attachmentURL
}

func (m *Message) SentBy() string {
	return m.sentBy
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetInternalID(id uint) error {
	if m.internalID != 0 {
		return fmt.Errorf("message internal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message internal ID cannot be zero")
	}
	m.internalID = id
	return nil
}

// CanBeDeletedBy reports whether the identity may delete this message:
// the original sender or an administrator.
func (m *Message) CanBeDeletedBy(identity authorization.Identity) bool {
	return authorization.CanAccessOwned(identity, m.sentBy)
}
