package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/emeka-osuagwu/user-post-ui/internal/service/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestDeletePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(1)).Return(int64(1), nil)
	mockRepo.On("Delete", ctx, int64(2)).Return(int64(0), nil)
	mockRepo.On("Delete", ctx, int64(3)).Return(int64(0), stderrors.New("database is locked"))

	assert.NoError(t, service.DeletePost(ctx, 1))

	err := service.DeletePost(ctx, 2)
	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(err))
	assert.EqualError(t, err, "Post not found")

	err = service.DeletePost(ctx, 3)
	assert.Equal(t, errors.ErrDatabase, errors.GetErrorCode(err))
	mockRepo.AssertExpectations(t)
}
