package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/redis"
	"Marquee/internal/pkg/security"
	"Marquee/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	PurgeUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// Register 建用户时一并写入默认角色和全 public 的权限行
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	if regDTO.Username == nil || regDTO.Password == nil {
		return ErrParamInvalid
	}

	findUser, err := s.userRepo.GetUserByUsername(ctx, *regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(*regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: regDTO.Username,
		Password: &passwordHash,
	}

	permission := &model.Permission{
		Favorites: consts.VisibilityPublic,
		Ranks:     consts.VisibilityPublic,
		Watched:   consts.VisibilityPublic,
		Playlist:  consts.VisibilityPublic,
	}

	role := model.UserRole{
		RoleID: 1,
	}
	roles := []*model.UserRole{&role}

	return s.userRepo.CreateUser(ctx, user, permission, &roles)
}

func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	if credentialDTO.Username == nil || credentialDTO.Password == nil {
		return "", ErrMissingLoginCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, *credentialDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(*credentialDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	roleNames, err := s.getRoleNamesForUser(ctx, user)
	if err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID, roleNames)
}

// Logout 将 token 签名拉黑到过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = &user.ID
	return userDTO, nil
}

// PurgeUser 管理员删除用户，仓储层级联清理关注边/角色/权限
func (s *UserServiceImpl) PurgeUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, id)
}

func (s *UserServiceImpl) getRoleNamesForUser(ctx context.Context, user *model.User) ([]string, error) {
	roleIDs := make([]uint64, 0, len(user.UserRoles))
	for _, userRole := range user.UserRoles {
		roleIDs = append(roleIDs, userRole.RoleID)
	}
	if len(roleIDs) == 0 {
		return []string{consts.RoleUser}, nil
	}

	roles, err := s.roleRepo.GetRoleByIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		return []string{consts.RoleUser}, nil
	}

	roleNames := make([]string, 0, len(*roles))
	for _, role := range *roles {
		roleNames = append(roleNames, role.Name)
	}
	return roleNames, nil
}
