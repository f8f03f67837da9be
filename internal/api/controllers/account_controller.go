package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"soberup/internal/models/request_models"
	"soberup/internal/services"
	"soberup/pkg/middleware"
	"soberup/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate by name and password and return a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.accountService.Login(c.Request.Context(), req, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Invalidate the current session token
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expiresAt := c.GetTime(middleware.ContextTokenExp)
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(24 * time.Hour)
	}
	a.accountService.Logout(token, expiresAt)

	utils.RespondSuccess(c, nil, "Logged out")
}

// UsernameExists godoc
// @Summary Check whether a username is taken
// @Tags Accounts
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/username-exists [get]
func (a *AccountController) UsernameExists(c *gin.Context) {
	var req request_models.UsernameExistsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing username")
		return
	}

	exists, err := a.accountService.UsernameExists(c.Request.Context(), req.Username)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"exists": exists}, "Username checked")
}
