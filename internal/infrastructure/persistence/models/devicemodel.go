package models

type DeviceModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Name         string `gorm:"size:100;not null"`
	Model        string `gorm:"size:100;not null"`
	Manufacturer string `gorm:"size:100;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (DeviceModel) TableName() string {
	return "devices"
}
