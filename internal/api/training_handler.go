package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/service"
)

// TrainingHandler serves training plans and training records.
type TrainingHandler struct {
	trainingService service.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(trainingService service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// --- Request/Response Structs ---

type CreateTrainingPlanRequest struct {
	Title       string          `json:"title"`
	Duration    int             `json:"duration" binding:"gte=0"` // Weeks
	Difficulty  string          `json:"difficulty"`
	WeeklyPlans json.RawMessage `json:"weeklyPlans"`
	Notes       string          `json:"notes"`
}

type UpdateTrainingPlanRequest struct {
	Title       *string         `json:"title"`
	Duration    *int            `json:"duration" binding:"omitempty,gte=0"`
	Difficulty  *string         `json:"difficulty"`
	WeeklyPlans json.RawMessage `json:"weeklyPlans"`
	Notes       *string         `json:"notes"`
}

type TrainingPlanResponse struct {
	Message string               `json:"message"`
	Plan    *domain.TrainingPlan `json:"plan"`
}

// NumericID accepts an id sent either as a JSON number or as a numeric string.
type NumericID int

func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	id, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("id %s is not an integer", data)
	}
	*n = NumericID(id)
	return nil
}

type CreateTrainingRecordRequest struct {
	PlanID    NumericID                `json:"planId"`
	Exercises *[]domain.RecordExercise `json:"exercises"`
	Duration  int                      `json:"duration" binding:"gte=0"` // Minutes
	Completed bool                     `json:"completed"`
	Notes     string                   `json:"notes"`
}

type UpdateTrainingRecordRequest struct {
	Exercises *[]domain.RecordExercise `json:"exercises"`
	Duration  *int                     `json:"duration" binding:"omitempty,gte=0"`
	Completed *bool                    `json:"completed"`
	Notes     *string                  `json:"notes"`
}

type TrainingRecordResponse struct {
	Message string                 `json:"message"`
	Record  *domain.TrainingRecord `json:"record"`
}

// --- Plans ---

func (h *TrainingHandler) ListPlans(c *gin.Context) {
	plans, err := h.trainingService.ListPlans(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *TrainingHandler) GetPlan(c *gin.Context) {
	planID, ok := paramID(c, "planId")
	if !ok {
		return
	}
	plan, err := h.trainingService.GetPlan(c.Request.Context(), planID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary Create a training plan owned by the caller
// @Tags Training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreateTrainingPlanRequest true "Plan details"
// @Success 201 {object} TrainingPlanResponse
// @Failure 400 {object} gin.H "Missing title or weeklyPlans"
// @Router /training/plans [post]
func (h *TrainingHandler) CreatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreateTrainingPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.trainingService.CreatePlan(c.Request.Context(), userID, service.CreatePlanInput{
		Title:       req.Title,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		WeeklyPlans: req.WeeklyPlans,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, TrainingPlanResponse{Message: "training plan created", Plan: plan})
}

// UpdatePlan godoc
// @Summary Partially update a plan owned by the caller
// @Tags Training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planId path int true "Plan ID"
// @Param plan body UpdateTrainingPlanRequest true "Fields to change"
// @Success 200 {object} TrainingPlanResponse
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /training/plans/{planId} [put]
func (h *TrainingHandler) UpdatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := paramID(c, "planId")
	if !ok {
		return
	}
	var req UpdateTrainingPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.trainingService.UpdatePlan(c.Request.Context(), userID, planID, domain.TrainingPlanPatch{
		Title:       req.Title,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		WeeklyPlans: req.WeeklyPlans,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TrainingPlanResponse{Message: "training plan updated", Plan: plan})
}

// --- Records ---

func (h *TrainingHandler) ListRecords(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.trainingService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *TrainingHandler) CreateRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreateTrainingRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.trainingService.CreateRecord(c.Request.Context(), userID, service.CreateRecordInput{
		PlanID:    int(req.PlanID),
		Exercises: req.Exercises,
		Duration:  req.Duration,
		Completed: req.Completed,
		Notes:     req.Notes,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, TrainingRecordResponse{Message: "training record added", Record: record})
}

func (h *TrainingHandler) UpdateRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recordID, ok := paramID(c, "recordId")
	if !ok {
		return
	}
	var req UpdateTrainingRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.trainingService.UpdateRecord(c.Request.Context(), userID, recordID, domain.TrainingRecordPatch{
		Exercises: req.Exercises,
		Duration:  req.Duration,
		Completed: req.Completed,
		Notes:     req.Notes,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TrainingRecordResponse{Message: "training record updated", Record: record})
}
