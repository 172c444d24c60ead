package models

type Project struct {
	BaseModel

	// Name is unique per owner, enforced by the composite index so that
	// concurrent submissions cannot slip past the form-level check.
	Name        string `gorm:"not null;uniqueIndex:idx_owner_project_name"`
	Description string
	OwnerID     string `gorm:"type:uuid;not null;index;uniqueIndex:idx_owner_project_name"`

	// Relationships
	Owner     User          `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Files     []ProjectFile `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notes     []ProjectNote `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Todolists []Todolist    `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
