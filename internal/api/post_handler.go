package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/service"
)

// PostHandler serves the community feed.
type PostHandler struct {
	postService   service.PostService
	uploadService service.UploadService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService, uploadService service.UploadService) *PostHandler {
	return &PostHandler{postService: postService, uploadService: uploadService}
}

type CreatePostRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
	Tags    []string `json:"tags"`
}

type AddCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int   `json:"parentId"`
}

type PostResponse struct {
	Message string       `json:"message"`
	Post    *domain.Post `json:"post"`
}

type CommentResponse struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns the post with its comments inlined.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := paramID(c, "postId")
	if !ok {
		return
	}
	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListUserPosts(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	posts, err := h.postService.ListUserPosts(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, service.CreatePostInput{
		Content: req.Content,
		Images:  req.Images,
		Tags:    req.Tags,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, PostResponse{Message: "post published", Post: post})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	postID, ok := paramID(c, "postId")
	if !ok {
		return
	}
	post, err := h.postService.LikePost(c.Request.Context(), postID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LikeResponse{Message: "liked", Likes: post.Likes})
}

func (h *PostHandler) ListComments(c *gin.Context) {
	postID, ok := paramID(c, "postId")
	if !ok {
		return
	}
	comments, err := h.postService.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := paramID(c, "postId")
	if !ok {
		return
	}
	var req AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.postService.AddComment(c.Request.Context(), userID, postID, req.Content, req.ParentID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CommentResponse{Message: "comment published", Comment: comment})
}

func (h *PostHandler) LikeComment(c *gin.Context) {
	commentID, ok := paramID(c, "commentId")
	if !ok {
		return
	}
	comment, err := h.postService.LikeComment(c.Request.Context(), commentID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LikeResponse{Message: "liked", Likes: comment.Likes})
}

// RequestImageUploadURL hands out a presigned URL for a post image.
func (h *PostHandler) RequestImageUploadURL(c *gin.Context) {
	requestUploadURL(c, h.uploadService, domain.UploadPostImage)
}
