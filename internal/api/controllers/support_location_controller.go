package controllers

import (
	"github.com/gin-gonic/gin"
	"soberup/internal/services"
	"soberup/pkg/utils"
)

type SupportLocationController struct {
	locationService services.SupportLocationServiceInterface
}

func NewSupportLocationController(locationService services.SupportLocationServiceInterface) *SupportLocationController {
	return &SupportLocationController{locationService: locationService}
}

// ListSupportLocations godoc
// @Summary Support locations
// @Description All help points, ordered by name
// @Tags SupportLocations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /support-locations [get]
func (s *SupportLocationController) ListSupportLocations(c *gin.Context) {
	locations, err := s.locationService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Fetched support locations")
}
