package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/pkg/util"
	"Marquee/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ConsumptionHandler struct {
	consumptionSvc service.ConsumptionService
}

func NewConsumptionHandler(consumptionSvc service.ConsumptionService) *ConsumptionHandler {
	return &ConsumptionHandler{
		consumptionSvc: consumptionSvc,
	}
}

// Watch 观看一次，消耗一张在线订单；复看不再扣单
func (s *ConsumptionHandler) Watch(c *gin.Context) {
	userID := c.GetUint64("user_id")
	videoID, err := s.parseVideoID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.consumptionSvc.RecordWatch(c.Request.Context(), userID, videoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConsumptionHandler) Like(c *gin.Context) {
	userID := c.GetUint64("user_id")
	videoID, err := s.parseVideoID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.consumptionSvc.RecordLike(c.Request.Context(), userID, videoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConsumptionHandler) Rate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	videoID, err := s.parseVideoID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var rateDTO dto.RateDTO
	if err = c.ShouldBind(&rateDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.consumptionSvc.RecordRate(c.Request.Context(), userID, videoID, rateDTO.Rating)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConsumptionHandler) Comment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	videoID, err := s.parseVideoID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var commentDTO dto.CommentCreateDTO
	if err = c.ShouldBind(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.consumptionSvc.RecordComment(c.Request.Context(), userID, videoID, commentDTO.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// AddFavorite 按片名收藏，重复收藏返回成功并带标记
func (s *ConsumptionHandler) AddFavorite(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var favoriteDTO dto.FavoriteDTO
	err := c.ShouldBind(&favoriteDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	already, err := s.consumptionSvc.AddFavorite(c.Request.Context(), userID, favoriteDTO.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.FavoriteResultDTO{AlreadyFavorited: already})
}

// ListFavorites 最近收藏，按收藏时间倒序
func (s *ConsumptionHandler) ListFavorites(c *gin.Context) {
	userID := c.GetUint64("user_id")
	items, err := s.consumptionSvc.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *ConsumptionHandler) parseVideoID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("video_id"), 10, 64)
}
