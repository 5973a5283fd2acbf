package dto

import "time"

type StoreView struct {
	ID             uint      `json:"id"`
	StoreName      string    `json:"storeName"`
	Subdomain      string    `json:"subdomain"`
	Description    string    `json:"description"`
	BannerImageURL string    `json:"bannerImageUrl"`
	TemplateType   string    `json:"templateType"`
	TemplateColor  string    `json:"templateColor"`
	Status         string    `json:"status,omitempty"`
	IsPublished    bool      `json:"isPublished"`
	VisitorCount   int64     `json:"visitorCount"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

type BrandView struct {
	ID             uint   `json:"id"`
	BrandName      string `json:"brandName"`
	Slogan         string `json:"slogan"`
	LogoURL        string `json:"logoUrl"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	BrandColor     string `json:"brandColor"`
	TargetAudience string `json:"targetAudience"`
}

type StoreWithBrand struct {
	Store StoreView  `json:"store"`
	Brand *BrandView `json:"brand"`
}

// PublicStoreEntry is the discovery-listing shape (no owner data).
type PublicStoreEntry struct {
	ID             uint      `json:"id"`
	StoreName      string    `json:"storeName"`
	Subdomain      string    `json:"subdomain"`
	Description    string    `json:"description"`
	TemplateType   string    `json:"templateType"`
	BannerImageURL string    `json:"bannerImageUrl"`
	BrandName      string    `json:"brandName,omitempty"`
	Category       string    `json:"category,omitempty"`
	VisitorCount   int64     `json:"visitorCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
