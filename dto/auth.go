package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserType      string `json:"userType"`
	AccessToken   string `json:"accessToken"`
	Authorization string `json:"authorization"`
}
