package request_models

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UsernameExistsRequest struct {
	Username string `form:"username" binding:"required"`
}
