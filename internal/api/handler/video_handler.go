package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/pkg/util"
	"Marquee/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoSvc: videoSvc,
	}
}

func (s *VideoHandler) GetVideoDetail(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	videoDTO, err := s.videoSvc.GetVideoDetail(c.Request.Context(), videoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videoDTO)
}

func (s *VideoHandler) SearchVideos(c *gin.Context) {
	keyword := c.Query("title")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	videos, err := s.videoSvc.SearchVideos(c.Request.Context(), keyword, pageSize, (page-1)*pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *VideoHandler) CreateVideo(c *gin.Context) {
	var createDTO dto.CreateVideoDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	videoID, err := s.videoSvc.CreateVideo(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]uint64{"video_id": videoID})
}

func (s *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.videoSvc.DeleteVideo(c.Request.Context(), videoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UploadPoster 管理端上传海报，服务端嗅探类型后归一化存入对象存储
func (s *VideoHandler) UploadPoster(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, err)
		return
	}

	url, err := s.videoSvc.UploadPoster(c.Request.Context(), videoID, reader, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{"poster_url": url})
}
