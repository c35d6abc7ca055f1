package entity

import "time"

// DailySuperLikeLimit caps super-likes per giver per calendar day
// (day boundary is local midnight at the time of the check).
const DailySuperLikeLimit = 5

// SuperLike is a rate-limited, higher-signal like with an optional message.
// Unique on (giver_id, garment_id).
type SuperLike struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GiverID    uint      `gorm:"not null;uniqueIndex:idx_super_likes_giver_garment,priority:1;index:idx_super_likes_giver_created,priority:1" json:"giver_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	GarmentID  uint      `gorm:"not null;uniqueIndex:idx_super_likes_giver_garment,priority:2" json:"garment_id"`
	Message    string    `gorm:"size:280" json:"message,omitempty"`
	CreatedAt  time.Time `gorm:"index:idx_super_likes_giver_created,priority:2" json:"created_at"`
}
