package dto

// PermissionDTO 可见性设置
type PermissionDTO struct {
	Favorites string `json:"favorites"`
	Ranks     string `json:"ranks"`
	Watched   string `json:"watched"`
	Playlist  string `json:"playlist"`
}

// UpdatePermissionDTO 修改单类可见性
type UpdatePermissionDTO struct {
	Category string `json:"category" binding:"required"`
	Value    string `json:"value" binding:"required"`
}
