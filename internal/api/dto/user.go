package dto

// CredentialDTO 登录请求，identifier 可为用户名或邮箱
type CredentialDTO struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UserCreateDTO 新建后台用户请求
type UserCreateDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=30"`
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=8,max=72"`
	Role     string `json:"role"`
}

// UserDTO 后台用户（不含密码）
type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// LoginResultDTO 登录响应
type LoginResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
