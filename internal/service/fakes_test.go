package service

import (
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"context"
	"sort"
	"time"

	"Marquee/internal/repository"

	"github.com/go-sql-driver/mysql"
)

// 内存版仓储实现，覆盖 service 层的可观测行为

type fakeWalletRepo struct {
	balances map[uint64]int64
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{balances: make(map[uint64]int64)}
}

func (f *fakeWalletRepo) GetBalance(_ context.Context, userID uint64) (*int64, error) {
	balance, ok := f.balances[userID]
	if !ok {
		return nil, nil
	}
	return &balance, nil
}

func (f *fakeWalletRepo) AddBalance(_ context.Context, userID uint64, amount int64) (int64, error) {
	if _, ok := f.balances[userID]; !ok {
		return 0, nil
	}
	f.balances[userID] += amount
	return 1, nil
}

func (f *fakeWalletRepo) DeductBalance(_ context.Context, userID uint64, amount int64) (int64, error) {
	balance, ok := f.balances[userID]
	if !ok || balance < amount {
		return 0, nil
	}
	f.balances[userID] = balance - amount
	return 1, nil
}

type fakeOrderRepo struct {
	wallet *fakeWalletRepo
	orders []*model.Order
	videos *fakeVideoRepo
	nextID uint64
}

func newFakeOrderRepo(wallet *fakeWalletRepo, videos *fakeVideoRepo) *fakeOrderRepo {
	return &fakeOrderRepo{wallet: wallet, videos: videos, nextID: 1}
}

func (f *fakeOrderRepo) CreateOrderWithDebit(ctx context.Context, order *model.Order) (bool, error) {
	rows, err := f.wallet.DeductBalance(ctx, order.UserID, order.Price)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}
	order.ID = f.nextID
	f.nextID++
	f.orders = append(f.orders, order)
	return true, nil
}

func (f *fakeOrderRepo) GetPendingOrderCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if order.UserID == userID && order.PurchaseType == consts.PurchaseTypeOnline {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) GetPendingVideoOrderCount(_ context.Context, userID, videoID uint64) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if order.UserID == userID && order.VideoID == videoID && order.PurchaseType == consts.PurchaseTypeOnline {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) DeleteOnlineOrder(_ context.Context, userID, videoID uint64) (int64, error) {
	for i, order := range f.orders {
		if order.UserID == userID && order.VideoID == videoID && order.PurchaseType == consts.PurchaseTypeOnline {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeOrderRepo) GetCartOrders(_ context.Context, userID uint64) ([]*model.Order, error) {
	var result []*model.Order
	for _, order := range f.orders {
		if order.UserID != userID {
			continue
		}
		copied := *order
		if f.videos != nil {
			if video, ok := f.videos.videos[order.VideoID]; ok {
				copied.Video = *video
			}
		}
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type recordKey struct {
	userID  uint64
	videoID uint64
}

type fakeConsumptionRepo struct {
	orders   *fakeOrderRepo
	watches  map[recordKey]time.Time
	likes    map[recordKey]time.Time
	rates    map[recordKey]*model.RateRecord
	comments []*model.Comment
}

func newFakeConsumptionRepo(orders *fakeOrderRepo) *fakeConsumptionRepo {
	return &fakeConsumptionRepo{
		orders:  orders,
		watches: make(map[recordKey]time.Time),
		likes:   make(map[recordKey]time.Time),
		rates:   make(map[recordKey]*model.RateRecord),
	}
}

func (f *fakeConsumptionRepo) ConsumeOrderAndUpsertWatch(ctx context.Context, record *model.WatchRecord) error {
	if f.orders != nil {
		if _, err := f.orders.DeleteOnlineOrder(ctx, record.UserID, record.VideoID); err != nil {
			return err
		}
	}
	f.watches[recordKey{record.UserID, record.VideoID}] = record.WatchedAt
	return nil
}

func (f *fakeConsumptionRepo) CheckWatchExists(_ context.Context, userID, videoID uint64) (bool, error) {
	_, ok := f.watches[recordKey{userID, videoID}]
	return ok, nil
}

func (f *fakeConsumptionRepo) UpsertLike(_ context.Context, record *model.LikeRecord) error {
	f.likes[recordKey{record.UserID, record.VideoID}] = record.LikedAt
	return nil
}

func (f *fakeConsumptionRepo) CreateLike(_ context.Context, record *model.LikeRecord) error {
	key := recordKey{record.UserID, record.VideoID}
	if _, ok := f.likes[key]; ok {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	f.likes[key] = record.LikedAt
	return nil
}

func (f *fakeConsumptionRepo) GetRecentFavorites(_ context.Context, userID uint64, limit int) ([]*repository.FavoriteEntry, error) {
	var entries []*repository.FavoriteEntry
	for key, likedAt := range f.likes {
		if key.userID != userID {
			continue
		}
		entry := &repository.FavoriteEntry{VideoID: key.videoID, LikedAt: likedAt}
		if f.orders != nil && f.orders.videos != nil {
			if video, ok := f.orders.videos.videos[key.videoID]; ok {
				entry.Title = video.Title
			}
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].LikedAt.After(entries[j].LikedAt) })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (f *fakeConsumptionRepo) UpsertRate(_ context.Context, record *model.RateRecord) error {
	f.rates[recordKey{record.UserID, record.VideoID}] = record
	return nil
}

func (f *fakeConsumptionRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = uint64(len(f.comments) + 1)
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeConsumptionRepo) GetRateStats(_ context.Context, videoID uint64) (int64, float64, error) {
	var count int64
	var sum int
	for key, record := range f.rates {
		if key.videoID == videoID {
			count++
			sum += record.Rating
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}

type fakeVideoRepo struct {
	videos map[uint64]*model.Video
	nextID uint64
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[uint64]*model.Video), nextID: 1}
}

func (f *fakeVideoRepo) addVideo(title string, onlinePrice, discPrice int64) *model.Video {
	video := &model.Video{
		ID:          f.nextID,
		Title:       title,
		Year:        2024,
		OnlinePrice: onlinePrice,
		DiscPrice:   discPrice,
	}
	f.videos[video.ID] = video
	f.nextID++
	return video
}

func (f *fakeVideoRepo) GetVideoByID(_ context.Context, id uint64) (*model.Video, error) {
	return f.videos[id], nil
}

func (f *fakeVideoRepo) GetVideoByTitle(_ context.Context, title string) (*model.Video, error) {
	var found *model.Video
	for _, video := range f.videos {
		if video.Title != title {
			continue
		}
		if found == nil || video.ID < found.ID {
			found = video
		}
	}
	return found, nil
}

func (f *fakeVideoRepo) SearchVideosByTitle(_ context.Context, keyword string, limit, offset int) ([]*model.Video, error) {
	var result []*model.Video
	for _, video := range f.videos {
		result = append(result, video)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeVideoRepo) CreateVideo(_ context.Context, video *model.Video) error {
	video.ID = f.nextID
	f.nextID++
	f.videos[video.ID] = video
	return nil
}

func (f *fakeVideoRepo) DeleteVideo(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.videos[id]; !ok {
		return 0, nil
	}
	delete(f.videos, id)
	return 1, nil
}

func (f *fakeVideoRepo) UpdateVideoStats(_ context.Context, id uint64, voteCount int64, rating float64) error {
	if video, ok := f.videos[id]; ok {
		video.VoteCount = voteCount
		video.Rating = rating
	}
	return nil
}

func (f *fakeVideoRepo) UpdatePosterURL(_ context.Context, id uint64, posterURL string) error {
	if video, ok := f.videos[id]; ok {
		video.PosterURL = &posterURL
	}
	return nil
}

type fakePermissionRepo struct {
	permissions map[uint64]*model.Permission
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{permissions: make(map[uint64]*model.Permission)}
}

func (f *fakePermissionRepo) addPublicRow(userID uint64) {
	f.permissions[userID] = &model.Permission{
		UserID:    userID,
		Favorites: consts.VisibilityPublic,
		Ranks:     consts.VisibilityPublic,
		Watched:   consts.VisibilityPublic,
		Playlist:  consts.VisibilityPublic,
	}
}

func (f *fakePermissionRepo) GetPermission(_ context.Context, userID uint64) (*model.Permission, error) {
	return f.permissions[userID], nil
}

func (f *fakePermissionRepo) UpdateVisibility(_ context.Context, userID uint64, category, value string) (int64, error) {
	permission, ok := f.permissions[userID]
	if !ok {
		return 0, nil
	}
	var field *string
	switch category {
	case consts.PermissionFavorites:
		field = &permission.Favorites
	case consts.PermissionRanks:
		field = &permission.Ranks
	case consts.PermissionWatched:
		field = &permission.Watched
	case consts.PermissionPlaylist:
		field = &permission.Playlist
	default:
		return 0, nil
	}
	// MySQL 对无变化的 UPDATE 报告 0 行
	if *field == value {
		return 0, nil
	}
	*field = value
	return 1, nil
}

// fakeFeedRepo 在内存里复刻关注/可见性联表过滤
type fakeFeedRepo struct {
	users       map[uint64]string
	videos      map[uint64]string
	follows     map[uint64]map[uint64]bool
	permissions *fakePermissionRepo
	watches     []*model.WatchRecord
	likes       []*model.LikeRecord
	rates       []*model.RateRecord
}

func newFakeFeedRepo(permissions *fakePermissionRepo) *fakeFeedRepo {
	return &fakeFeedRepo{
		users:       make(map[uint64]string),
		videos:      make(map[uint64]string),
		follows:     make(map[uint64]map[uint64]bool),
		permissions: permissions,
	}
}

func (f *fakeFeedRepo) follow(followerID, followingID uint64) {
	if f.follows[followerID] == nil {
		f.follows[followerID] = make(map[uint64]bool)
	}
	f.follows[followerID][followingID] = true
}

func (f *fakeFeedRepo) visible(actorID uint64, category string) bool {
	permission, ok := f.permissions.permissions[actorID]
	if !ok {
		return false
	}
	switch category {
	case consts.PermissionWatched:
		return permission.Watched == consts.VisibilityPublic
	case consts.PermissionFavorites:
		return permission.Favorites == consts.VisibilityPublic
	case consts.PermissionRanks:
		return permission.Ranks == consts.VisibilityPublic
	}
	return false
}

func (f *fakeFeedRepo) GetFollowedWatches(_ context.Context, viewerID uint64, limit int) ([]*repository.FeedEvent, error) {
	var events []*repository.FeedEvent
	for _, record := range f.watches {
		if !f.follows[viewerID][record.UserID] || !f.visible(record.UserID, consts.PermissionWatched) {
			continue
		}
		events = append(events, &repository.FeedEvent{
			Username:   f.users[record.UserID],
			VideoTitle: f.videos[record.VideoID],
			EventTime:  record.WatchedAt,
			Action:     consts.FeedActionWatch,
		})
	}
	return sortAndLimit(events, limit), nil
}

func (f *fakeFeedRepo) GetFollowedLikes(_ context.Context, viewerID uint64, limit int) ([]*repository.FeedEvent, error) {
	var events []*repository.FeedEvent
	for _, record := range f.likes {
		if !f.follows[viewerID][record.UserID] || !f.visible(record.UserID, consts.PermissionFavorites) {
			continue
		}
		events = append(events, &repository.FeedEvent{
			Username:   f.users[record.UserID],
			VideoTitle: f.videos[record.VideoID],
			EventTime:  record.LikedAt,
			Action:     consts.FeedActionLike,
		})
	}
	return sortAndLimit(events, limit), nil
}

func (f *fakeFeedRepo) GetFollowedRates(_ context.Context, viewerID uint64, limit int) ([]*repository.FeedEvent, error) {
	var events []*repository.FeedEvent
	for _, record := range f.rates {
		if !f.follows[viewerID][record.UserID] || !f.visible(record.UserID, consts.PermissionRanks) {
			continue
		}
		rating := record.Rating
		events = append(events, &repository.FeedEvent{
			Username:   f.users[record.UserID],
			VideoTitle: f.videos[record.VideoID],
			Rating:     &rating,
			EventTime:  record.RatedAt,
			Action:     consts.FeedActionRate,
		})
	}
	return sortAndLimit(events, limit), nil
}

func sortAndLimit(events []*repository.FeedEvent, limit int) []*repository.FeedEvent {
	sort.SliceStable(events, func(i, j int) bool { return events[i].EventTime.After(events[j].EventTime) })
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

type fakeUserRepo struct {
	users       map[uint64]*model.User
	permissions *fakePermissionRepo
	nextID      uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) addUser(username string) *model.User {
	user := &model.User{ID: f.nextID, Username: &username}
	f.users[user.ID] = user
	f.nextID++
	return user
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username != nil && *user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User, permission *model.Permission, roles *[]*model.UserRole) error {
	user.ID = f.nextID
	f.nextID++
	if roles != nil {
		for _, role := range *roles {
			role.UserID = user.ID
			user.UserRoles = append(user.UserRoles, *role)
		}
	}
	f.users[user.ID] = user
	if f.permissions != nil && permission != nil {
		permission.UserID = user.ID
		f.permissions.permissions[user.ID] = permission
	}
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id uint64) error {
	delete(f.users, id)
	if f.permissions != nil {
		delete(f.permissions.permissions, id)
	}
	return nil
}

type fakeRoleRepo struct {
	roles map[uint64]*model.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[uint64]*model.Role{
		1: {ID: 1, Name: consts.RoleUser},
		2: {ID: 2, Name: consts.RoleAdmin},
	}}
}

func (f *fakeRoleRepo) GetRoleByIDs(_ context.Context, ids []uint64) (*[]*model.Role, error) {
	var result []*model.Role
	for _, id := range ids {
		if role, ok := f.roles[id]; ok {
			result = append(result, role)
		}
	}
	return &result, nil
}

func (f *fakeRoleRepo) GetRoleByName(_ context.Context, name string) (*model.Role, error) {
	for _, role := range f.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

type followKey struct {
	followerID  uint64
	followingID uint64
}

type fakeUserFollowRepo struct {
	edges map[followKey]*model.UserFollow
}

func newFakeUserFollowRepo() *fakeUserFollowRepo {
	return &fakeUserFollowRepo{edges: make(map[followKey]*model.UserFollow)}
}

func (f *fakeUserFollowRepo) GetUserFollowers(_ context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	var result []*model.UserFollow
	for key, edge := range f.edges {
		if key.followingID == userID {
			result = append(result, edge)
		}
	}
	return result, nil
}

func (f *fakeUserFollowRepo) GetUserFollowing(_ context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	var result []*model.UserFollow
	for key, edge := range f.edges {
		if key.followerID == userID {
			result = append(result, edge)
		}
	}
	return result, nil
}

func (f *fakeUserFollowRepo) GetUserFollowerCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for key := range f.edges {
		if key.followingID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserFollowRepo) GetUserFollowingCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for key := range f.edges {
		if key.followerID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserFollowRepo) GetUserFollow(_ context.Context, userID uint64, followingID uint64) (*model.UserFollow, error) {
	return f.edges[followKey{userID, followingID}], nil
}

func (f *fakeUserFollowRepo) CreateUserFollow(_ context.Context, userFollow *model.UserFollow) error {
	f.edges[followKey{userFollow.FollowerID, userFollow.FollowingID}] = userFollow
	return nil
}

func (f *fakeUserFollowRepo) DeleteUserFollow(_ context.Context, userFollow *model.UserFollow) error {
	delete(f.edges, followKey{userFollow.FollowerID, userFollow.FollowingID})
	return nil
}
