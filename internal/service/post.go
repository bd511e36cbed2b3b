package service

import (
	"context"
	"errors"

	"github.com/leonidsliusar/webtronics-social/internal/model"
	"github.com/leonidsliusar/webtronics-social/internal/repository"
)

var (
	ErrPostNotFound  = errors.New("post does not exist")
	ErrNotAuthorized = errors.New("no permission for this post")
)

type UpdatePostInput struct {
	Title   string
	Content string
}

type PostService interface {
	Create(ctx context.Context, owner *model.User, title, content string) (*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, page, limit int) ([]*model.Post, error)
	Update(ctx context.Context, actor *model.User, id uint, input UpdatePostInput) (*model.Post, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Create(ctx context.Context, owner *model.User, title, content string) (*model.Post, error) {
	post := &model.Post{Title: title, Content: content, OwnerID: owner.ID, ModifierID: owner.ID}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, page, limit int) ([]*model.Post, error) {
	if page < 0 {
		page = 0
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.posts.List(ctx, page*limit, limit)
}

// authorize is the ownership guard: the owner and admins pass, everyone
// else gets ErrNotAuthorized.
func (s *postService) authorize(ctx context.Context, actor *model.User, id uint) (*model.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.OwnerID != actor.ID && !actor.IsAdmin {
		return nil, ErrNotAuthorized
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, actor *model.User, id uint, input UpdatePostInput) (*model.Post, error) {
	post, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	// OwnerID stays as created; the modifier records who last touched it,
	// the owner or an overriding admin.
	post.ModifierID = actor.ID
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, actor *model.User, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
