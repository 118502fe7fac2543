package docrepo

import (
	"context"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

type postRepository struct {
	posts collection[domain.Post]
}

// NewPostRepository creates a new instance of postRepository.
func NewPostRepository(db *docstore.DB, log logrus.FieldLogger) repository.PostRepository {
	return &postRepository{posts: newCollection[domain.Post](db, docstore.Posts, log)}
}

func (r *postRepository) GetAll(ctx context.Context) ([]domain.Post, error) {
	return r.posts.all(ctx), nil
}

func (r *postRepository) GetByID(ctx context.Context, id int) (*domain.Post, error) {
	return r.posts.byID(ctx, id)
}

func (r *postRepository) GetByUserID(ctx context.Context, userID int) ([]domain.Post, error) {
	return r.posts.filter(ctx, func(p *domain.Post) bool { return p.UserID == userID }), nil
}

// Create stores a new post with zero likes.
func (r *postRepository) Create(ctx context.Context, post *domain.Post) (int, error) {
	if post.Images == nil {
		post.Images = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return r.posts.insert(ctx, post, func(id int) {
		post.ID = id
		post.Likes = 0
		post.CreatedAt = now()
		post.UpdatedAt = post.CreatedAt
	}, nil)
}

func (r *postRepository) Update(ctx context.Context, id int, patch domain.PostPatch) (*domain.Post, error) {
	return r.posts.modify(ctx, id, func(p *domain.Post) {
		patch.Apply(p)
		p.UpdatedAt = now()
	})
}

func (r *postRepository) Like(ctx context.Context, id int) (*domain.Post, error) {
	return r.posts.modify(ctx, id, func(p *domain.Post) {
		p.Likes++
		p.UpdatedAt = now()
	})
}
