package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/service"
)

// UserHandler serves profiles, stats and per-user plan lists.
type UserHandler struct {
	userService   service.UserService
	uploadService service.UploadService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, uploadService service.UploadService) *UserHandler {
	return &UserHandler{userService: userService, uploadService: uploadService}
}

// UpdateProfileRequest lists the editable profile fields; absent ones are kept.
type UpdateProfileRequest struct {
	Nickname  *string   `json:"nickname"`
	Bio       *string   `json:"bio"`
	Avatar    *string   `json:"avatar"`
	Expertise *[]string `json:"expertise"`
}

type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// GetProfile returns a public profile: no password, no email.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, domain.UserPatch{
		Nickname:  req.Nickname,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
		Expertise: req.Expertise,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateProfileResponse{
		Message: "profile updated",
		User:    MapUserToResponse(user),
	})
}

// targetUserID is the :userId parameter when present, the caller otherwise.
func targetUserID(c *gin.Context) (int, bool) {
	if c.Param("userId") != "" {
		return paramID(c, "userId")
	}
	return currentUserID(c)
}

func (h *UserHandler) GetStats(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	stats, err := h.userService.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) GetTrainingPlans(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	plans, err := h.userService.GetTrainingPlans(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// RequestAvatarUploadURL hands out a presigned URL for a new avatar image.
func (h *UserHandler) RequestAvatarUploadURL(c *gin.Context) {
	requestUploadURL(c, h.uploadService, domain.UploadAvatar)
}
