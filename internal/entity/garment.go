package entity

import "time"

type GarmentStatus string

const (
	GarmentActive   GarmentStatus = "ACTIVE"
	GarmentSwapped  GarmentStatus = "SWAPPED"
	GarmentReserved GarmentStatus = "RESERVED"
	GarmentInactive GarmentStatus = "INACTIVE"
	GarmentDeleted  GarmentStatus = "DELETED"
)

// Garment is a single clothing listing. Only ACTIVE garments may receive
// swipes or super-likes; the counters change only through those operations.
type Garment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OwnerID        uint          `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Title          string        `gorm:"size:120;not null" json:"title"`
	Description    string        `json:"description,omitempty"`
	Category       string        `gorm:"size:32;index" json:"category,omitempty"`
	Brand          string        `gorm:"size:64" json:"brand,omitempty"`
	Size           string        `gorm:"size:16" json:"size,omitempty"`
	Color          string        `gorm:"size:32" json:"color,omitempty"`
	Condition      string        `gorm:"size:16" json:"condition,omitempty"`
	Status         GarmentStatus `gorm:"size:16;not null;default:ACTIVE;index" json:"status"`
	LikeCount      int           `gorm:"not null;default:0" json:"like_count"`
	SuperLikeCount int           `gorm:"not null;default:0" json:"super_like_count"`
	ViewCount      int           `gorm:"not null;default:0" json:"view_count"`
	ImageURL       string        `json:"image_url,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// GarmentFilters narrows Search results; zero values mean "any".
type GarmentFilters struct {
	Category  string
	Size      string
	Color     string
	Condition string
	Brand     string
	OwnerID   uint
	Status    GarmentStatus
}
