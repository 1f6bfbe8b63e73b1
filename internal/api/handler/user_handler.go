package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/pkg/util"
	"Marquee/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !util.ValidateRegDTO(&registerDTO) {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !util.ValidateLoginDTO(&loginDTO) {
		response.Fail(c, response.BadRequest, service.ErrMissingLoginCredentials.Error())
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	userDTO, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

// PurgeUser 管理端删除用户，连带清理其关注边/角色/权限行
func (s *UserHandler) PurgeUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.userSvc.PurgeUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
