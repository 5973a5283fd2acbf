package dto

import "time"

type ProductImage struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Alt  string `json:"alt"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// CategoryRef and StoreRef keep nested records on the same camelCase wire
// shape as the rest of the payload.
type CategoryRef struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID *uint  `json:"parentId"`
}

type StoreRef struct {
	ID        uint   `json:"id"`
	StoreName string `json:"storeName"`
	Subdomain string `json:"subdomain"`
}

type ProductSummary struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	ComparePrice  *float64       `json:"comparePrice,omitempty"`
	StockQuantity int            `json:"stockQuantity"`
	Category      *CategoryRef   `json:"category"`
	IsFeatured    bool           `json:"isFeatured"`
	ViewCount     int64          `json:"viewCount"`
	Images        []ProductImage `json:"images"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type ProductListResult struct {
	Products   []ProductSummary `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

type ProductDetail struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	ComparePrice  *float64       `json:"comparePrice,omitempty"`
	StockQuantity int            `json:"stockQuantity"`
	Category      *CategoryRef   `json:"category"`
	Store         *StoreRef      `json:"store"`
	IsFeatured    bool           `json:"isFeatured"`
	ViewCount     int64          `json:"viewCount"`
	Images        []ProductImage `json:"images"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type CategoryWithCount struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	ParentID     *uint     `json:"parentId"`
	SortOrder    int       `json:"sortOrder"`
	ProductCount int64     `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CategoryProductsResult struct {
	Category   CategoryRef            `json:"category"`
	Products   []CategoryProductEntry `json:"products"`
	Pagination Pagination             `json:"pagination"`
}

type CategoryProductEntry struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	ComparePrice  *float64  `json:"comparePrice,omitempty"`
	StockQuantity int       `json:"stockQuantity"`
	Store         *StoreRef `json:"store"`
	IsFeatured    bool      `json:"isFeatured"`
	ViewCount     int64     `json:"viewCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CategoryDetail struct {
	Category      CategoryRef   `json:"category"`
	SubCategories []CategoryRef `json:"subCategories"`
	ProductCount  int64         `json:"productCount"`
}
