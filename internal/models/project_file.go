package models

type ProjectFile struct {
	BaseModel

	ProjectID   string `gorm:"type:uuid;not null;index"`
	Name        string `gorm:"not null"`
	Attachment  string `gorm:"not null"` // media-relative path
	Size        int64  `gorm:"not null"`
	ContentType string `gorm:"not null"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
