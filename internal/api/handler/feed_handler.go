package handler

import (
	"Marquee/internal/pkg/response"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	entries, err := s.feedSvc.GetFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}
