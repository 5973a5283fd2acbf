package dto

type CompleteOnboardingRequest struct {
	Business      string `json:"business"`
	StoreName     string `json:"storeName"`
	Theme         string `json:"theme"`
	Template      string `json:"template"`
	Subdomain     string `json:"subdomain"`
	BrandImageURL string `json:"brandImageUrl,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
}

type OnboardingStatus struct {
	HasBrand    bool `json:"hasBrand"`
	HasStore    bool `json:"hasStore"`
	IsPublished bool `json:"isPublished"`
}

type CreateBrandRequest struct {
	BrandName      string `json:"brandName"`
	Slogan         string `json:"slogan,omitempty"`
	Category       string `json:"category"`
	Description    string `json:"description,omitempty"`
	BrandColor     string `json:"brandColor,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
}

type CreateStoreRequest struct {
	StoreName      string `json:"storeName"`
	Subdomain      string `json:"subdomain"`
	Description    string `json:"description,omitempty"`
	TemplateType   string `json:"templateType"`
	TemplateColor  string `json:"templateColor"`
	BannerImageURL string `json:"bannerImageUrl,omitempty"`
}
