package entity

import "time"

type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "LEFT"
	SwipeRight SwipeDirection = "RIGHT"
)

func (d SwipeDirection) Valid() bool {
	return d == SwipeLeft || d == SwipeRight
}

// Swipe records one user's LEFT/RIGHT decision on a garment. SwipedID is the
// garment owner's id, denormalized so the reciprocal-like lookup is a point
// query on (swiper_id, swiped_id, direction).
//
// A user may swipe a given garment at most once; the composite unique index
// is what concurrent duplicate requests lose against.
type Swipe struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SwiperID  uint           `gorm:"not null;uniqueIndex:idx_swipes_swiper_garment,priority:1;index:idx_swipes_reciprocal,priority:2" json:"swiper_id"`
	SwipedID  uint           `gorm:"not null;index:idx_swipes_reciprocal,priority:1" json:"swiped_id"`
	GarmentID uint           `gorm:"not null;uniqueIndex:idx_swipes_swiper_garment,priority:2" json:"garment_id"`
	Direction SwipeDirection `gorm:"size:8;not null;index:idx_swipes_reciprocal,priority:3" json:"direction"`
	CreatedAt time.Time      `json:"created_at"`
}

// UndoWindow is how long after creation a swipe remains reversible.
const UndoWindow = 5 * time.Second
