package controllers

import (
	"hotelinfo/dto"
	"hotelinfo/response"
	"hotelinfo/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Param credentials body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginRequest
	if !bindJSON(c, &input) {
		return
	}

	user, token, err := ac.auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, dto.LoginResponse{
		UserType:      user.Role,
		AccessToken:   token,
		Authorization: "Bearer " + token,
	})
}
