package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxurystay-backend/middleware"
	"luxurystay-backend/services"
	"luxurystay-backend/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginPayload struct {
	IDToken string `json:"idToken"`
}

// Register handles POST /api/auth/register.
func (ctl *AuthController) Register(c *gin.Context) {
	var payload services.RegisterInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := ctl.auth.Register(c.Request.Context(), payload)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// Login handles POST /api/auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := ctl.auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GoogleLogin handles POST /api/auth/google. The client obtains an ID token
// from Google and posts it here; the account is provisioned on first sign-in.
func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	var payload googleLoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IDToken == "" {
		utils.JSONError(c, http.StatusBadRequest, "idToken is required")
		return
	}

	result, err := ctl.auth.LoginWithGoogle(c.Request.Context(), payload.IDToken)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// Logout handles POST /api/auth/logout.
func (ctl *AuthController) Logout(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	ctl.auth.Logout(c.Request.Context(), actor.UserID)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /api/auth/me.
func (ctl *AuthController) Me(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	session, err := ctl.auth.CurrentUser(c.Request.Context(), services.UserInfo{
		UserID: actor.UserID,
		Role:   actor.Role,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}
