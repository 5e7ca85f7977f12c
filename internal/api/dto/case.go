package dto

// CaseCreateDTO 新建/编辑案例请求
type CaseCreateDTO struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Year        string   `json:"year" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Result      string   `json:"result" binding:"required"`
	Status      string   `json:"status"`
	Client      string   `json:"client" binding:"required"`
	Value       string   `json:"value"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image"`
}

// CaseDTO 案例
type CaseDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        string   `json:"year"`
	Type        string   `json:"type"`
	Result      string   `json:"result"`
	Status      string   `json:"status"`
	Client      string   `json:"client"`
	Value       string   `json:"value,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// CaseListDTO 案例列表响应
type CaseListDTO struct {
	Cases      []*CaseDTO    `json:"cases"`
	Pagination PaginationDTO `json:"pagination"`
}
