package dto

import "time"

type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserView is the account record on the wire, camelCase like every other
// payload and with the credential columns left out.
type UserView struct {
	ID              uint       `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Phone           *string    `json:"phone,omitempty"`
	ProfileImage    string     `json:"profileImage,omitempty"`
	HasOnboarded    bool       `json:"hasOnboarded"`
	LoginType       string     `json:"loginType"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	NotifyEmail     bool       `json:"notifyEmail"`
	NotifyPush      bool       `json:"notifyPush"`
	NotifySMS       bool       `json:"notifySms"`
	Language        string     `json:"language"`
	Timezone        string     `json:"timezone"`
	Status          string     `json:"status"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// UserMeResponse is the flat profile view: the user record annotated with
// the store/brand fields the onboarding wizard writes.
type UserMeResponse struct {
	User  UserWithOnboarding `json:"user"`
	Store *StoreSummary      `json:"store"`
	Brand *BrandSummary      `json:"brand"`
}

type UserWithOnboarding struct {
	UserView
	StoreName     *string `json:"storeName"`
	Subdomain     *string `json:"subdomain"`
	Template      *string `json:"template"`
	Theme         *string `json:"theme"`
	Business      *string `json:"business"`
	Tagline       *string `json:"tagline"`
	BrandImageURL *string `json:"brandImageUrl"`
	Color         *string `json:"color"`
}

type StoreSummary struct {
	ID           uint   `json:"id"`
	StoreName    string `json:"storeName"`
	Subdomain    string `json:"subdomain"`
	IsPublished  bool   `json:"isPublished"`
	TemplateType string `json:"templateType"`
}

type BrandSummary struct {
	ID        uint   `json:"id"`
	BrandName string `json:"brandName"`
	Slogan    string `json:"slogan"`
}

type StoreURLResponse struct {
	HasStore    bool   `json:"hasStore"`
	Subdomain   string `json:"subdomain,omitempty"`
	StoreName   string `json:"storeName,omitempty"`
	StoreURL    string `json:"storeUrl,omitempty"`
	IsPublished bool   `json:"isPublished,omitempty"`
	Message     string `json:"message,omitempty"`
}
