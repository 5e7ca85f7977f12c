package dto

// PostCreateDTO 新建/编辑文章请求
type PostCreateDTO struct {
	Title     string   `json:"title" binding:"required,max=200"`
	Excerpt   string   `json:"excerpt" binding:"required,max=500"`
	Content   string   `json:"content" binding:"required"`
	Author    string   `json:"author" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Slug      string   `json:"slug"`
	Image     string   `json:"image" binding:"required"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

// PostDTO 文章
type PostDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content,omitempty"`
	Author    string   `json:"author"`
	Category  string   `json:"category"`
	Slug      string   `json:"slug"`
	Image     string   `json:"image"`
	Published bool     `json:"published"`
	ReadTime  int      `json:"readTime"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`

	// CommentCount 已过审评论数，列表场景可能来自缓存
	CommentCount int64 `json:"commentCount,omitempty"`
}

// PostDetailDTO 公开详情，HTML 为渲染净化后的正文
type PostDetailDTO struct {
	PostDTO
	HTML string `json:"html"`
}

// PostListDTO 文章列表响应
type PostListDTO struct {
	Posts      []*PostDTO    `json:"posts"`
	Pagination PaginationDTO `json:"pagination"`
}
