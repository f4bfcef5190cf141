package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@nexyatra.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
