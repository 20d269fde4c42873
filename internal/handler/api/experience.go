package api

import (
	"net/http"

	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/infra"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExperienceHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewExperienceHandler(catalogQueries queries.CatalogQueries) *ExperienceHandler {
	return &ExperienceHandler{catalogQueries: catalogQueries}
}

// @Summary List experiences
// @Description List catalog experiences, optionally filtered by name
// @Tags experiences
// @Produce json
// @Param q query string false "Substring name filter"
// @Success 200 {array} resdto.ExperienceResponse
// @Router /experiences [get]
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	nameFilter := c.Query("q")

	experiencesRM, err := h.catalogQueries.ListExperiences(c.Request.Context(), nameFilter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ExperienceResponse, len(experiencesRM))
	for i, rm := range experiencesRM {
		response[i] = resdto.FromExperienceView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get experience
// @Description Get one experience by id
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} resdto.ExperienceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	experienceRM, err := h.catalogQueries.GetExperience(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Experience not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExperienceView(experienceRM))
}

// @Summary List slots
// @Description List availability for an experience, grouped by date then time
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /experiences/{id}/slots [get]
func (h *ExperienceHandler) ListSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	slotsRM, err := h.catalogQueries.ListSlots(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.SlotResponse, len(slotsRM))
	for i, rm := range slotsRM {
		response[i] = resdto.FromSlotView(rm)
	}

	c.JSON(http.StatusOK, response)
}
