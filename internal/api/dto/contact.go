package dto

// ContactCreateDTO 联系表单请求
type ContactCreateDTO struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// ContactMessageDTO 留言
type ContactMessageDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// ContactListDTO 留言列表响应
type ContactListDTO struct {
	Messages   []*ContactMessageDTO `json:"messages"`
	Pagination PaginationDTO        `json:"pagination"`
}
