package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email" binding:"omitempty,email"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse is what anyone may see about a user.
type ProfileResponse struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	Nickname          string    `json:"nickname"`
	Avatar            string    `json:"avatar"`
	Bio               string    `json:"bio"`
	Expertise         []string  `json:"expertise"`
	IsExpert          bool      `json:"isExpert"`
	Followers         int       `json:"followers"`
	Following         int       `json:"following"`
	TrainingDays      int       `json:"trainingDays"`
	TotalTrainingDays int       `json:"totalTrainingDays"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserResponse is the owner's view of their account. It never carries the
// password hash.
type UserResponse struct {
	ProfileResponse
	Email string `json:"email"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} gin.H "Missing field or username taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Nickname: req.Nickname,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "registration successful",
		User:    MapUserToResponse(user),
		Token:   token,
	})
}

// Login godoc
// @Summary Log in a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} gin.H "Missing field"
// @Failure 401 {object} gin.H "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "login successful",
		User:    MapUserToResponse(user),
		Token:   token,
	})
}

// Me returns the caller's own account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapProfileToResponse drops the password hash and the email.
func MapProfileToResponse(user *domain.User) ProfileResponse {
	if user == nil {
		return ProfileResponse{}
	}
	expertise := user.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return ProfileResponse{
		ID:                user.ID,
		Username:          user.Username,
		Nickname:          user.Nickname,
		Avatar:            user.Avatar,
		Bio:               user.Bio,
		Expertise:         expertise,
		IsExpert:          user.IsExpert,
		Followers:         user.Followers,
		Following:         user.Following,
		TrainingDays:      user.TrainingDays,
		TotalTrainingDays: user.TotalTrainingDays,
		CreatedAt:         user.CreatedAt,
	}
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ProfileResponse: MapProfileToResponse(user),
		Email:           user.Email,
	}
}
