package service

import (
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedFixture() (*fakeFeedRepo, *fakePermissionRepo, FeedService) {
	permissionRepo := newFakePermissionRepo()
	feedRepo := newFakeFeedRepo(permissionRepo)
	return feedRepo, permissionRepo, NewFeedService(feedRepo)
}

func TestFeedShowsFollowedPublicActivity(t *testing.T) {
	feedRepo, permissionRepo, svc := newFeedFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	feedRepo.users[2] = "alice"
	feedRepo.videos[10] = "Dune"
	permissionRepo.addPublicRow(2)
	feedRepo.follow(1, 2)

	feedRepo.watches = append(feedRepo.watches, &model.WatchRecord{UserID: 2, VideoID: 10, WatchedAt: base})
	feedRepo.rates = append(feedRepo.rates, &model.RateRecord{UserID: 2, VideoID: 10, Rating: 8, RatedAt: base.Add(time.Hour)})

	entries, err := svc.GetFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 时间倒序，评分动态带分数，观看动态不带
	assert.Equal(t, consts.FeedActionRate, entries[0].Action)
	require.NotNil(t, entries[0].Rating)
	assert.Equal(t, 8, *entries[0].Rating)
	assert.Equal(t, consts.FeedActionWatch, entries[1].Action)
	assert.Nil(t, entries[1].Rating)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "Dune", entries[0].VideoTitle)
}

func TestFeedHidesUnfollowedUsers(t *testing.T) {
	feedRepo, permissionRepo, svc := newFeedFixture()

	feedRepo.users[2] = "alice"
	feedRepo.videos[10] = "Dune"
	permissionRepo.addPublicRow(2)
	// 没有关注关系

	feedRepo.watches = append(feedRepo.watches, &model.WatchRecord{UserID: 2, VideoID: 10, WatchedAt: time.Now()})

	entries, err := svc.GetFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFeedRespectsVisibilityFlip(t *testing.T) {
	feedRepo, permissionRepo, svc := newFeedFixture()
	ctx := context.Background()
	permissionSvc := NewPermissionService(permissionRepo)

	feedRepo.users[2] = "alice"
	feedRepo.videos[10] = "Dune"
	permissionRepo.addPublicRow(2)
	feedRepo.follow(1, 2)
	feedRepo.watches = append(feedRepo.watches, &model.WatchRecord{UserID: 2, VideoID: 10, WatchedAt: time.Now()})

	// 动态主把观看记录改成私密后从别人的动态页消失
	require.NoError(t, permissionSvc.SetVisibility(ctx, 2, consts.PermissionWatched, consts.VisibilityPrivate))
	entries, err := svc.GetFeed(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 改回公开后重新可见，读取时实时判定
	require.NoError(t, permissionSvc.SetVisibility(ctx, 2, consts.PermissionWatched, consts.VisibilityPublic))
	entries, err = svc.GetFeed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFeedWindowCap(t *testing.T) {
	feedRepo, permissionRepo, svc := newFeedFixture()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	feedRepo.users[2] = "alice"
	permissionRepo.addPublicRow(2)
	feedRepo.follow(1, 2)

	for i := 0; i < 15; i++ {
		videoID := uint64(100 + i)
		feedRepo.videos[videoID] = "Movie"
		feedRepo.watches = append(feedRepo.watches, &model.WatchRecord{
			UserID:    2,
			VideoID:   videoID,
			WatchedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	entries, err := svc.GetFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, consts.FeedWindowSize)

	// 最新的在前
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].EventTime.After(entries[i-1].EventTime))
	}
	assert.Equal(t, base.Add(14*time.Minute), entries[0].EventTime)
}

func TestFeedMergesMultipleActors(t *testing.T) {
	feedRepo, permissionRepo, svc := newFeedFixture()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	feedRepo.users[2] = "alice"
	feedRepo.users[3] = "bob"
	feedRepo.videos[10] = "Dune"
	permissionRepo.addPublicRow(2)
	permissionRepo.addPublicRow(3)
	feedRepo.follow(1, 2)
	feedRepo.follow(1, 3)

	feedRepo.likes = append(feedRepo.likes, &model.LikeRecord{UserID: 2, VideoID: 10, LikedAt: base})
	feedRepo.watches = append(feedRepo.watches, &model.WatchRecord{UserID: 3, VideoID: 10, WatchedAt: base.Add(time.Minute)})

	entries, err := svc.GetFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, "alice", entries[1].Username)
}
