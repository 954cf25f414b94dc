package models

type TicketModel struct {
	ID                 uint    `gorm:"primaryKey"`
	SID                string  `gorm:"column:sid;uniqueIndex;size:32;not null"`
	DeviceSID          *string `gorm:"column:device_sid;size:32;index"`
	DeviceManufacturer *string `gorm:"size:100"`
	DeviceModel        *string `gorm:"size:100"`
	Title              string  `gorm:"size:200;not null"`
	Description        string  `gorm:"type:text;not null"`
	TicketOwner        string  `gorm:"size:100;not null;index"`
	Severity           int     `gorm:"not null;index"`
	Resolved           bool    `gorm:"not null;default:false;index"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
