package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/minio"
	"Marquee/internal/pkg/redis"
	"Marquee/internal/pkg/util"
	"Marquee/internal/repository"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const videoCacheExpiration = time.Hour * 1

type VideoService interface {
	GetVideoByID(ctx context.Context, id uint64) (*model.Video, error)
	GetVideoByTitle(ctx context.Context, title string) (*model.Video, error)
	GetVideoDetail(ctx context.Context, id uint64) (*dto.VideoDTO, error)
	SearchVideos(ctx context.Context, keyword string, limit, offset int) ([]*dto.VideoDTO, error)
	CreateVideo(ctx context.Context, createDTO *dto.CreateVideoDTO) (uint64, error)
	DeleteVideo(ctx context.Context, id uint64) error
	UploadPoster(ctx context.Context, id uint64, reader io.Reader, contentType string) (string, error)
	SyncVideoStats(ctx context.Context, id uint64) error
}

type VideoServiceImpl struct {
	videoRepo       repository.VideoRepo
	consumptionRepo repository.ConsumptionRepo
}

func NewVideoService(videoRepo repository.VideoRepo, consumptionRepo repository.ConsumptionRepo) VideoService {
	return &VideoServiceImpl{
		videoRepo:       videoRepo,
		consumptionRepo: consumptionRepo,
	}
}

func (s *VideoServiceImpl) GetVideoByID(ctx context.Context, id uint64) (*model.Video, error) {
	video, err := s.videoRepo.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

func (s *VideoServiceImpl) GetVideoByTitle(ctx context.Context, title string) (*model.Video, error) {
	video, err := s.videoRepo.GetVideoByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

// GetVideoDetail 详情页走缓存，交易链路不经过这里
func (s *VideoServiceImpl) GetVideoDetail(ctx context.Context, id uint64) (*dto.VideoDTO, error) {
	key := consts.VideoDetailKey + strconv.FormatUint(id, 10)
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var videoDTO *dto.VideoDTO
		if err = json.Unmarshal([]byte(value), &videoDTO); err == nil {
			return videoDTO, nil
		}
	}

	video, err := s.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	videoDTO := &dto.VideoDTO{}
	if err = copier.Copy(videoDTO, video); err != nil {
		return nil, err
	}
	if video.PosterURL != nil {
		url := minio.GetPublicURL(*video.PosterURL)
		videoDTO.PosterURL = &url
	}

	jsonStr, err := json.Marshal(videoDTO)
	if err != nil {
		return nil, err
	}
	_ = redis.SetWithExpiration(ctx, key, string(jsonStr), videoCacheExpiration)
	return videoDTO, nil
}

func (s *VideoServiceImpl) SearchVideos(ctx context.Context, keyword string, limit, offset int) ([]*dto.VideoDTO, error) {
	videos, err := s.videoRepo.SearchVideosByTitle(ctx, keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	videoDTOs := make([]*dto.VideoDTO, 0, len(videos))
	for _, video := range videos {
		videoDTO := &dto.VideoDTO{}
		if err = copier.Copy(videoDTO, video); err != nil {
			return nil, err
		}
		videoDTOs = append(videoDTOs, videoDTO)
	}
	return videoDTOs, nil
}

// CreateVideo 主键自增，入库时可带初始评分
func (s *VideoServiceImpl) CreateVideo(ctx context.Context, createDTO *dto.CreateVideoDTO) (uint64, error) {
	if createDTO.Title == "" || createDTO.Year <= 0 {
		return 0, ErrParamInvalid
	}
	if createDTO.Rating != nil && (*createDTO.Rating < 1 || *createDTO.Rating > 10) {
		return 0, ErrRatingInvalid
	}

	video := &model.Video{
		Title:       createDTO.Title,
		Year:        createDTO.Year,
		OnlinePrice: createDTO.OnlinePrice,
		DiscPrice:   createDTO.DiscPrice,
		Episode:     createDTO.Episode,
		Season:      createDTO.Season,
	}
	if createDTO.Rating != nil {
		video.Rating = float64(*createDTO.Rating)
	}

	if err := s.videoRepo.CreateVideo(ctx, video); err != nil {
		return 0, err
	}
	return video.ID, nil
}

func (s *VideoServiceImpl) DeleteVideo(ctx context.Context, id uint64) error {
	rows, err := s.videoRepo.DeleteVideo(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVideoNotFound
	}
	_ = redis.DeleteKey(ctx, consts.VideoDetailKey+strconv.FormatUint(id, 10))
	return nil
}

// UploadPoster 规整图片尺寸后上传 MinIO，并回写海报地址
func (s *VideoServiceImpl) UploadPoster(ctx context.Context, id uint64, reader io.Reader, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	if _, err := s.GetVideoByID(ctx, id); err != nil {
		return "", err
	}

	normalized, size, err := util.NormalizePoster(reader)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("posters/%d/%s.jpg", id, uuid.NewString())
	if _, err = minio.UploadFile(ctx, objectName, normalized, size, "image/jpeg"); err != nil {
		return "", err
	}

	if err = s.videoRepo.UpdatePosterURL(ctx, id, objectName); err != nil {
		return "", err
	}
	_ = redis.DeleteKey(ctx, consts.VideoDetailKey+strconv.FormatUint(id, 10))

	return minio.GetPublicURL(objectName), nil
}

// SyncVideoStats 从评分表重算计数与均值并回写，由定时任务触发
func (s *VideoServiceImpl) SyncVideoStats(ctx context.Context, id uint64) error {
	voteCount, avgRating, err := s.consumptionRepo.GetRateStats(ctx, id)
	if err != nil {
		return err
	}
	if err = s.videoRepo.UpdateVideoStats(ctx, id, voteCount, avgRating); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.VideoDetailKey+strconv.FormatUint(id, 10))
	return nil
}
