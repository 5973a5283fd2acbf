package domain

import "time"

// Category forms a tree via ParentID; root categories have a nil parent.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Parent    *Category `gorm:"foreignKey:ParentID" json:"-"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	Status    string    `gorm:"type:varchar(20);not null;default:active;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
