package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/service"
)

type RequestUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"` // e.g. image/png
}

// requestUploadURL is shared by the avatar and post image endpoints.
func requestUploadURL(c *gin.Context, uploads service.UploadService, kind domain.UploadKind) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req RequestUploadURLRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := uploads.RequestUploadURL(c.Request.Context(), userID, kind, req.ContentType)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
