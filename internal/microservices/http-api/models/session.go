package models

import "time"

// Session holds the signing key for the single active session of a user.
// Location fields are placeholders, always "any".
type Session struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Key       string    `gorm:"column:ses_key;not null" json:"-"`
	IP        string    `gorm:"default:'any'" json:"ip"`
	City      string    `gorm:"default:'any'" json:"city"`
	Country   string    `gorm:"default:'any'" json:"country"`
	Location  string    `gorm:"default:'any'" json:"location"`
	State     string    `gorm:"default:'any'" json:"state"`
	Timezone  string    `gorm:"default:'any'" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

// PlaceholderLocation is stored in every location column of a new session.
const PlaceholderLocation = "any"

func (Session) TableName() string {
	return "sessions"
}
