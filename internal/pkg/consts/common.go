package consts

const (
	MimePrefixImage = "image"
)

const (
	// CommentStatusPending 待审核
	CommentStatusPending int8 = 0
	// CommentStatusApproved 已通过
	CommentStatusApproved int8 = 1
	// CommentStatusRejected 已拒绝
	CommentStatusRejected int8 = 2
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const (
	// LikeIdentityMaxLen 点赞身份串（IP+UA）最大长度
	LikeIdentityMaxLen = 100
)
