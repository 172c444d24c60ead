package models

type Task struct {
	BaseModel

	// Name is unique among the tasks of one todolist.
	Name        string `gorm:"not null;uniqueIndex:idx_todolist_task_name"`
	Description string
	Done        bool   `gorm:"not null;default:false"`
	TodolistID  string `gorm:"type:uuid;not null;index;uniqueIndex:idx_todolist_task_name"`
	ProjectID   string `gorm:"type:uuid;not null;index"`
	CreatorID   string `gorm:"type:uuid;not null;index"`

	// Relationships
	Todolist Todolist `gorm:"foreignKey:TodolistID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Project  Project  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Creator  User     `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
