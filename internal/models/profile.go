package models

// Profile holds the public-facing fields of a user. One row per user,
// created empty at signup.
type Profile struct {
	BaseModel

	UserID      string `gorm:"type:uuid;not null;uniqueIndex"`
	JobTitle    string
	Bio         string
	Avatar      string // media-relative path
	CoverPhoto  string // media-relative path
	Country     string
	City        string
	Department  string
	PhoneNumber string
	LinkedIn    string
	GitHub      string
	Website     string
	YouTube     string
	Facebook    string
	Instagram   string
	X           string

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
