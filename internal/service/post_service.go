package service

import (
	"context"
	"errors"
	"fmt"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrPostNotFound          = errors.New("post not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrParentCommentNotFound = errors.New("parent comment not found on this post")
)

// CreatePostInput is the post form.
type CreatePostInput struct {
	Content string
	Images  []string
	Tags    []string
}

// PostDetails is a post together with its comments.
type PostDetails struct {
	domain.Post
	Comments []domain.Comment `json:"comments"`
}

// PostService runs the community feed.
type PostService interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, postID int) (*PostDetails, error)
	ListUserPosts(ctx context.Context, userID int) ([]domain.Post, error)
	CreatePost(ctx context.Context, userID int, in CreatePostInput) (*domain.Post, error)
	LikePost(ctx context.Context, postID int) (*domain.Post, error)

	ListComments(ctx context.Context, postID int) ([]domain.Comment, error)
	AddComment(ctx context.Context, userID, postID int, content string, parentID *int) (*domain.Comment, error)
	LikeComment(ctx context.Context, commentID int) (*domain.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

// NewPostService creates a new instance of postService.
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func (s *postService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *postService) getPost(ctx context.Context, postID int) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, postID int) (*PostDetails, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &PostDetails{Post: *post, Comments: comments}, nil
}

func (s *postService) ListUserPosts(ctx context.Context, userID int) ([]domain.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}

// author loads the snapshot embedded into new posts and comments.
func (s *postService) author(ctx context.Context, userID int) (domain.AuthorSnapshot, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.AuthorSnapshot{}, ErrUserNotFound
		}
		return domain.AuthorSnapshot{}, err
	}
	return user.Snapshot(), nil
}

func (s *postService) CreatePost(ctx context.Context, userID int, in CreatePostInput) (*domain.Post, error) {
	if in.Content == "" {
		return nil, fmt.Errorf("%w: content", ErrMissingFields)
	}
	snapshot, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:  userID,
		User:    snapshot,
		Content: in.Content,
		Images:  in.Images,
		Tags:    in.Tags,
	}
	if _, err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) LikePost(ctx context.Context, postID int) (*domain.Post, error) {
	post, err := s.postRepo.Like(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) ListComments(ctx context.Context, postID int) ([]domain.Comment, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByPostID(ctx, postID)
}

// AddComment stores a comment or, with parentID set, a reply to another
// comment of the same post.
func (s *postService) AddComment(ctx context.Context, userID, postID int, content string, parentID *int) (*domain.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content", ErrMissingFields)
	}
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	if parentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *parentID)
		if errors.Is(err, repository.ErrNotFound) || (err == nil && parent.PostID != postID) {
			return nil, ErrParentCommentNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	snapshot, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		UserID:   userID,
		User:     snapshot,
		Content:  content,
		ParentID: parentID,
	}
	if _, err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *postService) LikeComment(ctx context.Context, commentID int) (*domain.Comment, error) {
	comment, err := s.commentRepo.Like(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}
