package dto

// TeamMemberCreateDTO 新建/编辑团队成员请求
type TeamMemberCreateDTO struct {
	Name           string   `json:"name" binding:"required"`
	Position       string   `json:"position" binding:"required"`
	Bio            string   `json:"bio" binding:"required"`
	Image          string   `json:"image"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone"`
	Specialization []string `json:"specialization"`
	Experience     string   `json:"experience"`
	Education      []string `json:"education"`
	Languages      []string `json:"languages"`
	Order          int      `json:"order"`
	Featured       bool     `json:"featured"`
	Active         *bool    `json:"active"`
}

// TeamMemberDTO 团队成员
type TeamMemberDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Position       string   `json:"position"`
	Bio            string   `json:"bio"`
	Image          string   `json:"image,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Specialization []string `json:"specialization"`
	Experience     string   `json:"experience,omitempty"`
	Education      []string `json:"education"`
	Languages      []string `json:"languages"`
	Order          int      `json:"order"`
	Featured       bool     `json:"featured"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// TeamListDTO 团队成员列表响应
type TeamListDTO struct {
	TeamMembers []*TeamMemberDTO `json:"teamMembers"`
	Pagination  PaginationDTO    `json:"pagination"`
}
