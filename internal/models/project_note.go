package models

type ProjectNote struct {
	BaseModel

	ProjectID string `gorm:"type:uuid;not null;index"`
	Name      string `gorm:"not null"`
	Body      string `gorm:"not null"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
