package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	permissionSvc service.PermissionService
}

func NewPermissionHandler(permissionSvc service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionSvc: permissionSvc}
}

func (s *PermissionHandler) GetPermission(c *gin.Context) {
	userID := c.GetUint64("user_id")
	permission, err := s.permissionSvc.GetPermission(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, permission)
}

func (s *PermissionHandler) UpdatePermission(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var updateDTO dto.UpdatePermissionDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.permissionSvc.SetVisibility(c.Request.Context(), userID, updateDTO.Category, updateDTO.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
