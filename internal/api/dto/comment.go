package dto

// CommentCreateDTO 提交评论请求
type CommentCreateDTO struct {
	PostID   string `json:"postId" binding:"required"`
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ParentID string `json:"parentId"`
}

// CommentUpdateDTO 更新评论请求。
// 只有这里声明的字段会被采纳，payload 里的其他键一律静默忽略，
// approved 是 status 的布尔视图，两者都传时以 status 为准。
type CommentUpdateDTO struct {
	Content  *string `json:"content"`
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Status   *string `json:"status"`
	Approved *bool   `json:"approved"`
}

// AdminReplyDTO 管理员回复请求
type AdminReplyDTO struct {
	Content string `json:"content" binding:"required"`
}

// CommentPostDTO 评论关联的文章摘要
type CommentPostDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
}

// CommentDTO 评论返回详情
type CommentDTO struct {
	ID           string          `json:"id"`
	PostID       string          `json:"postId"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Content      string          `json:"content"`
	Status       string          `json:"status"`
	Approved     bool            `json:"approved"`
	IsAdminReply bool            `json:"isAdminReply"`
	ParentID     *string         `json:"parentId,omitempty"`
	LikesCount   int             `json:"likesCount"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
	Post         *CommentPostDTO `json:"post,omitempty"`

	Replies []*CommentDTO `json:"replies,omitempty"`
}

// CommentStatsDTO 与当前过滤条件同口径的数量统计
type CommentStatsDTO struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

// CommentListDTO 评论列表响应
type CommentListDTO struct {
	Comments   []*CommentDTO   `json:"comments"`
	Stats      CommentStatsDTO `json:"stats"`
	Pagination PaginationDTO   `json:"pagination"`
}

// LikeResultDTO 点赞切换结果
type LikeResultDTO struct {
	LikesCount int  `json:"likesCount"`
	HasLiked   bool `json:"hasLiked"`
}
