package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/repository"
	"context"
)

var permissionCategories = map[string]struct{}{
	consts.PermissionFavorites: {},
	consts.PermissionRanks:     {},
	consts.PermissionWatched:   {},
	consts.PermissionPlaylist:  {},
}

type PermissionService interface {
	GetPermission(ctx context.Context, userID uint64) (*dto.PermissionDTO, error)
	SetVisibility(ctx context.Context, userID uint64, category, value string) error
}

type PermissionServiceImpl struct {
	permissionRepo repository.PermissionRepo
}

func NewPermissionService(permissionRepo repository.PermissionRepo) PermissionService {
	return &PermissionServiceImpl{permissionRepo: permissionRepo}
}

func (s *PermissionServiceImpl) GetPermission(ctx context.Context, userID uint64) (*dto.PermissionDTO, error) {
	permission, err := s.permissionRepo.GetPermission(ctx, userID)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, ErrUserNotFound
	}
	return &dto.PermissionDTO{
		Favorites: permission.Favorites,
		Ranks:     permission.Ranks,
		Watched:   permission.Watched,
		Playlist:  permission.Playlist,
	}, nil
}

// SetVisibility 类别和取值都是闭集，幂等覆盖写
func (s *PermissionServiceImpl) SetVisibility(ctx context.Context, userID uint64, category, value string) error {
	if _, ok := permissionCategories[category]; !ok {
		return ErrParamInvalid
	}
	if value != consts.VisibilityPublic && value != consts.VisibilityPrivate {
		return ErrParamInvalid
	}

	rows, err := s.permissionRepo.UpdateVisibility(ctx, userID, category, value)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 幂等覆盖时 MySQL 可能报告 0 行变更，确认行存在即可
		permission, err := s.permissionRepo.GetPermission(ctx, userID)
		if err != nil {
			return err
		}
		if permission == nil {
			return ErrUserNotFound
		}
	}
	return nil
}
