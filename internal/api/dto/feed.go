package dto

import "time"

// FeedEntryDTO 动态条目，评分动态才有 Rating
type FeedEntryDTO struct {
	Username   string    `json:"username"`
	VideoTitle string    `json:"video_title"`
	Action     string    `json:"action"`
	Rating     *int      `json:"rating,omitempty"`
	EventTime  time.Time `json:"event_time"`
}
