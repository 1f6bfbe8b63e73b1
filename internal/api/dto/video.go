package dto

// VideoDTO 影片
type VideoDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	OnlinePrice int64   `json:"online_price"`
	DiscPrice   int64   `json:"disc_price"`
	VoteCount   int64   `json:"vote_count"`
	Rating      float64 `json:"rating"`
	Episode     *int    `json:"episode,omitempty"`
	Season      *int    `json:"season,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

// CreateVideoDTO 新增影片
type CreateVideoDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=255"`
	Year        int    `json:"year" binding:"required"`
	OnlinePrice int64  `json:"online_price"`
	DiscPrice   int64  `json:"disc_price"`
	Rating      *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Episode     *int   `json:"episode,omitempty"`
	Season      *int   `json:"season,omitempty"`
}
