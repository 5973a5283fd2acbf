package domain

import "time"

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

const (
	LoginTypeEmail  = "email"
	LoginTypeGoogle = "google"
	LoginTypeKakao  = "kakao"
	LoginTypeNaver  = "naver"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	Name         string  `gorm:"not null" json:"name"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage string  `json:"profile_image,omitempty"`
	HasOnboarded bool    `gorm:"not null;default:false" json:"has_onboarded"`

	LoginType string  `gorm:"type:varchar(20);not null;default:email;index:idx_users_social,priority:2" json:"login_type"`
	SocialID  *string `gorm:"index:idx_users_social,priority:1" json:"-"`

	IsEmailVerified       bool       `gorm:"not null;default:false" json:"is_email_verified"`
	EmailVerificationCode string     `json:"-"`
	EmailVerifyExpiresAt  *time.Time `json:"-"`
	ResetPasswordToken    string     `json:"-"`
	ResetPasswordExpires  *time.Time `json:"-"`

	NotifyEmail bool   `gorm:"not null;default:true" json:"notify_email"`
	NotifyPush  bool   `gorm:"not null;default:true" json:"notify_push"`
	NotifySMS   bool   `gorm:"not null;default:false" json:"notify_sms"`
	Language    string `gorm:"type:varchar(5);not null;default:ko" json:"language"`
	Timezone    string `gorm:"not null;default:'Asia/Seoul'" json:"timezone"`

	Status      string     `gorm:"type:varchar(20);not null;default:active" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
