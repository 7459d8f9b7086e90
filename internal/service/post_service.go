package service

import (
	"context"

	"github.com/emeka-osuagwu/user-post-ui/internal/repository/interfaces"
	"github.com/emeka-osuagwu/user-post-ui/internal/service/errors"
)

type PostServiceInterface interface {
	DeletePost(ctx context.Context, id int64) error
}

type PostService struct {
	repo interfaces.PostRepository
}

func NewPostService(repo interfaces.PostRepository) *PostService {
	return &PostService{repo}
}

var _ PostServiceInterface = (*PostService)(nil)

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除帖子失败", err)
	}
	if affected == 0 {
		return errors.New(errors.ErrNotFound, "Post not found")
	}
	return nil
}
