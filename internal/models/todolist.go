package models

type Todolist struct {
	BaseModel

	// Name is unique among the lists of one project.
	Name        string `gorm:"not null;uniqueIndex:idx_project_todolist_name"`
	Description string
	ProjectID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_project_todolist_name"`
	CreatorID   string `gorm:"type:uuid;not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Creator User    `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks   []Task  `gorm:"foreignKey:TodolistID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
