package consts

const (
	VideoDetailKey     = "video:detail:"
	VideoLikeKey       = "video:like:"
	VideoRateKey       = "video:rate:"
	VideoWatchKey      = "video:watch:"
	VideoDirtyKey      = "video:dirty"
	UserFollowerKey    = "user:follower:"
	UserFollowingKey   = "user:following:"
	UserFollowerCount  = "user:follower:count:"
	UserFollowingCount = "user:following:count:"
)
