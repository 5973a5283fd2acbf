package domain

import "time"

type Store struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	BrandID uint  `gorm:"not null;index" json:"brand_id"`
	Brand   Brand `gorm:"foreignKey:BrandID" json:"-"`
	UserID  uint  `gorm:"uniqueIndex;not null" json:"user_id"`

	StoreName string `gorm:"not null" json:"store_name"`
	// Subdomain is stored lowercase and is globally unique regardless of the
	// store's status.
	Subdomain      string `gorm:"uniqueIndex;not null;index:idx_stores_resolve,priority:1" json:"subdomain"`
	Description    string `json:"description"`
	BannerImageURL string `json:"banner_image_url"`

	Status      string `gorm:"type:varchar(20);not null;default:active;index:idx_stores_resolve,priority:2" json:"status"`
	IsPublished bool   `gorm:"not null;default:false;index:idx_stores_resolve,priority:3" json:"is_published"`

	TemplateType  string `gorm:"not null" json:"template_type"`
	TemplateColor string `gorm:"not null" json:"template_color"`
	VisitorCount  int64  `gorm:"not null;default:0" json:"visitor_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store templates the frontend ships with.
var StoreTemplates = []string{"Beauty", "Chic", "Cozy"}

func IsValidTemplate(t string) bool {
	for _, v := range StoreTemplates {
		if v == t {
			return true
		}
	}
	return false
}
