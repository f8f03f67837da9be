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

// PatientController serves the /patients/me area. The user is always the
// one in the token; there is no way to address another patient.
type PatientController struct {
	userService      services.UserServiceInterface
	triggerService   services.TriggerServiceInterface
	dashboardService services.DashboardService
}

func NewPatientController(
	userService services.UserServiceInterface,
	triggerService services.TriggerServiceInterface,
	dashboardService services.DashboardService,
) *PatientController {
	return &PatientController{
		userService:      userService,
		triggerService:   triggerService,
		dashboardService: dashboardService,
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// GetProfile godoc
// @Summary Current patient profile
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /patients/me [get]
func (p *PatientController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.userService.GetProfile(c.Request.Context(), userID, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Fetched profile successfully")
}

// GetDashboard godoc
// @Summary Patient home screen
// @Description Sober days, today's mood and the calendar of the current month
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /patients/me/dashboard [get]
func (p *PatientController) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := p.dashboardService.BuildDashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Fetched dashboard successfully")
}

// UpdateSOSContact godoc
// @Summary Replace the emergency contact
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateSOSContactRequest true "SOS contact"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /patients/me/sos-contact [put]
func (p *PatientController) UpdateSOSContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateSOSContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.userService.UpdateSOSContact(c.Request.Context(), userID, req.Name, req.Phone, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "SOS contact updated")
}

// SetSoberSince godoc
// @Summary Set the first sober day
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SetSoberSinceRequest true "Day in YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /patients/me/sober-since [put]
func (p *PatientController) SetSoberSince(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SetSoberSinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.userService.SetSoberSince(c.Request.Context(), userID, req.Date, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Sober start updated")
}

// MarkRelapse godoc
// @Summary Restart the sober streak now
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /patients/me/relapse [post]
func (p *PatientController) MarkRelapse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.userService.MarkRelapse(c.Request.Context(), userID, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Sober streak restarted")
}

// ListTriggers godoc
// @Summary List triggers
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /patients/me/triggers [get]
func (p *PatientController) ListTriggers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	triggers, err := p.triggerService.ListTriggers(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, triggers, "Fetched triggers successfully")
}

// AddTrigger godoc
// @Summary Add a trigger
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.TriggerRequest true "Trigger"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /patients/me/triggers [post]
func (p *PatientController) AddTrigger(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	triggers, err := p.triggerService.AddTrigger(c.Request.Context(), userID, req.Trigger)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, triggers, "Trigger added")
}

// DeleteTrigger godoc
// @Summary Remove a trigger
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.TriggerRequest true "Trigger"
// @Success 200 {object} utils.APIResponse
// @Router /patients/me/triggers [delete]
func (p *PatientController) DeleteTrigger(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	triggers, err := p.triggerService.DeleteTrigger(c.Request.Context(), userID, req.Trigger)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, triggers, "Trigger removed")
}
