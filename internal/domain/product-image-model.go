package domain

import "time"

const (
	ImageTypeMain      = "main"
	ImageTypeDetail    = "detail"
	ImageTypeThumbnail = "thumbnail"
)

// ProductDetailImage rows are read back ordered by (product_id, sort_order).
type ProductDetailImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;index:idx_product_images_order,priority:1" json:"product_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	ImageType string `gorm:"type:varchar(20);not null;default:main" json:"image_type"`
	SortOrder int    `gorm:"not null;default:0;index:idx_product_images_order,priority:2" json:"sort_order"`
	AltText   string `json:"alt_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
