package domain

import "time"

// Brand is 1:1 with its owner; the unique index on UserID makes that a
// storage constraint instead of an application convention.
type Brand struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	BrandName      string `gorm:"not null;index" json:"brand_name"`
	Slogan         string `json:"slogan"`
	LogoURL        string `json:"logo_url"`
	Category       string `gorm:"not null;index" json:"category"`
	Description    string `json:"description"`
	BrandColor     string `json:"brand_color"`
	TargetAudience string `json:"target_audience"`
	Status         string `gorm:"type:varchar(20);not null;default:active;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
