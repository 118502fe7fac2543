package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"myhealth/rehab-api/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises godoc
// @Summary List the exercise catalogue
// @Tags Exercises
// @Produce json
// @Success 200 {array} domain.Exercise
// @Router /training/exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := paramID(c, "exerciseId")
	if !ok {
		return
	}
	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// ListByTargetArea godoc
// @Summary List exercises working a body area
// @Description targetArea is "all", one area, or a comma separated list. A positive limit truncates the result.
// @Tags Exercises
// @Produce json
// @Param targetArea path string true "Area, list of areas or all"
// @Param limit query int false "Maximum number of exercises"
// @Success 200 {array} domain.Exercise
// @Router /training/exercises/target/{targetArea} [get]
func (h *ExerciseHandler) ListByTargetArea(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	exercises, err := h.exerciseService.ListByTargetArea(c.Request.Context(), c.Param("targetArea"), limit)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}
