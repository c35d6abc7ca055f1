package entity

type SignUpResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

// SwipeResponse is the swipe() result contract: MatchID is set only when the
// swipe closed a mutual like.
type SwipeResponse struct {
	SwipeID uint  `json:"swipe_id"`
	IsMatch bool  `json:"is_match"`
	MatchID *uint `json:"match_id,omitempty"`
}

type UndoSwipeResponse struct {
	Undone bool `json:"undone"`
}

type RemainingSuperLikesResponse struct {
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// PaginationMeta mirrors the list envelope used across paginated endpoints.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

type Page[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}
