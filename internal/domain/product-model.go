package domain

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

type Product struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	StoreID uint   `gorm:"not null;uniqueIndex:uidx_products_store_sku,priority:1;index:idx_products_list,priority:1" json:"store_id"`
	Store   *Store `gorm:"foreignKey:StoreID" json:"-"`

	// SKU is unique per store, not globally.
	SKU string `gorm:"not null;uniqueIndex:uidx_products_store_sku,priority:2" json:"sku"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`

	Name          string   `gorm:"not null" json:"name"`
	Description   string   `json:"description"`
	Price         float64  `gorm:"not null;check:price >= 0" json:"price"`
	ComparePrice  *float64 `json:"compare_price,omitempty"`
	StockQuantity int      `gorm:"not null;default:0;check:stock_quantity >= 0" json:"stock_quantity"`

	Status     string `gorm:"type:varchar(20);not null;default:active;index:idx_products_list,priority:2" json:"status"`
	IsFeatured bool   `gorm:"not null;default:false;index:idx_products_list,priority:3" json:"is_featured"`
	ViewCount  int64  `gorm:"not null;default:0" json:"view_count"`

	CreatedAt time.Time `gorm:"index:idx_products_list,priority:4" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
