package docrepo

import (
	"context"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

type commentRepository struct {
	comments collection[domain.Comment]
}

// NewCommentRepository creates a new instance of commentRepository.
func NewCommentRepository(db *docstore.DB, log logrus.FieldLogger) repository.CommentRepository {
	return &commentRepository{comments: newCollection[domain.Comment](db, docstore.Comments, log)}
}

func (r *commentRepository) GetAll(ctx context.Context) ([]domain.Comment, error) {
	return r.comments.all(ctx), nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	return r.comments.byID(ctx, id)
}

// GetByPostID returns the comments of a post in creation order. Replies are
// returned flat; clients rebuild threads from parentId.
func (r *commentRepository) GetByPostID(ctx context.Context, postID int) ([]domain.Comment, error) {
	return r.comments.filter(ctx, func(c *domain.Comment) bool { return c.PostID == postID }), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) (int, error) {
	return r.comments.insert(ctx, comment, func(id int) {
		comment.ID = id
		comment.Likes = 0
		comment.CreatedAt = now()
		comment.UpdatedAt = comment.CreatedAt
	}, nil)
}

func (r *commentRepository) Like(ctx context.Context, id int) (*domain.Comment, error) {
	return r.comments.modify(ctx, id, func(c *domain.Comment) {
		c.Likes++
		c.UpdatedAt = now()
	})
}
