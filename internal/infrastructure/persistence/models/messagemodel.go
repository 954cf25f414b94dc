package models

type MessageModel struct {
	ID            uint    `gorm:"primaryKey"`
	SID           string  `gorm:"column:sid;uniqueIndex;size:32;not null"`
	TicketSID     string  `gorm:"column:ticket_sid;size:32;not null;index"`
	Content       string  `gorm:"type:text;not null"`
	FileName      *string `gorm:"size:255"`
	AttachmentURL *string `gorm:"size:2048"`
	SentBy        string  `gorm:"size:100;not null;index"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}
