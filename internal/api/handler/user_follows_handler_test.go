package handler

import (
	"Marquee/internal/model"
	"Marquee/internal/pkg/response"
	"Marquee/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserFollowService struct {
	createErr error
	created   []*model.UserFollow
}

func (s *stubUserFollowService) GetUserFollowers(context.Context, uint64, int, int) ([]*model.UserFollow, error) {
	return nil, nil
}

func (s *stubUserFollowService) GetUserFollowing(context.Context, uint64, int, int) ([]*model.UserFollow, error) {
	return nil, nil
}

func (s *stubUserFollowService) GetUserFollowerCount(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (s *stubUserFollowService) GetUserFollowingCount(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (s *stubUserFollowService) CreateUserFollow(_ context.Context, userFollow *model.UserFollow) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, userFollow)
	return nil
}

func (s *stubUserFollowService) DeleteUserFollow(context.Context, *model.UserFollow) error {
	return nil
}

type followResponse struct {
	Code int    `json:"code"`
	Data struct {
		AlreadyFollowing bool `json:"already_following"`
	} `json:"data"`
}

func doFollow(t *testing.T, svc service.UserFollowService) (*httptest.ResponseRecorder, followResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/user-relation/follow/2", nil)
	c.Params = gin.Params{{Key: "following_id", Value: "2"}}
	c.Set("user_id", uint64(1))

	NewUserFollowHandler(svc).Follow(c)

	var body followResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFollow(t *testing.T) {
	stub := &stubUserFollowService{}
	w, body := doFollow(t, stub)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.Ok, body.Code)
	assert.False(t, body.Data.AlreadyFollowing)
	require.Len(t, stub.created, 1)
	assert.Equal(t, uint64(1), stub.created[0].FollowerID)
	assert.Equal(t, uint64(2), stub.created[0].FollowingID)
}

// 重复关注返回成功并带标记，不作为请求错误
func TestFollowDuplicateIsNotAnError(t *testing.T) {
	stub := &stubUserFollowService{createErr: service.ErrUserFollowExist}
	w, body := doFollow(t, stub)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.Ok, body.Code)
	assert.True(t, body.Data.AlreadyFollowing)
}

func TestFollowOtherErrorsStillFail(t *testing.T) {
	stub := &stubUserFollowService{createErr: service.ErrUserNotFound}
	_, body := doFollow(t, stub)

	assert.Equal(t, response.NotFound, body.Code)
}
