package consts

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	PurchaseTypeOnline   uint8 = 1
	PurchaseTypePhysical uint8 = 2
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

const (
	PermissionFavorites = "favorites"
	PermissionRanks     = "ranks"
	PermissionWatched   = "watched"
	PermissionPlaylist  = "playlist"
)

// FeedWindowSize 动态页固定只展示最近 10 条
const FeedWindowSize = 10

// FavoritesWindowSize 收藏列表只展示最近 10 条
const FavoritesWindowSize = 10

const (
	FeedActionWatch = "watch"
	FeedActionLike  = "like"
	FeedActionRate  = "rate"
)

const (
	MimePrefixImage = "image"
)
