package consts

const (
	// TokenDenyKey 已注销 Token 签名黑名单前缀
	TokenDenyKey = "auth:token:deny:"
	// PostCommentCountKey 帖子已过审评论数缓存前缀
	PostCommentCountKey = "post:comment:count:"
	// CommentLikeCountKey 评论点赞数缓存前缀
	CommentLikeCountKey = "comment:like:count:"
)
