package service

import (
	"context"
	"math"

	"github.com/emeka-osuagwu/user-post-ui/internal/aggregate"
	"github.com/emeka-osuagwu/user-post-ui/internal/model"
	"github.com/emeka-osuagwu/user-post-ui/internal/repository/interfaces"
	"github.com/emeka-osuagwu/user-post-ui/internal/service/errors"
	"github.com/emeka-osuagwu/user-post-ui/internal/util"

	"go.uber.org/zap"
)

const (
	DefaultPage      = 1
	DefaultPageSize  = 10
	DefaultPostTitle = "Sample Title"
)

// UserServiceInterface 定义用户服务的方法，便于处理器测试
type UserServiceInterface interface {
	ListUsers(ctx context.Context, page, pageSize int) ([]*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, input *model.CreateUserInput) (int64, error)
	Ping(ctx context.Context) error
}

// UserOptions 用户服务的可选配置
type UserOptions struct {
	DefaultPostTitle string
	Aggregate        aggregate.Options
}

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
	opts     UserOptions
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository, opts UserOptions) *UserService {
	if opts.DefaultPostTitle == "" {
		opts.DefaultPostTitle = DefaultPostTitle
	}
	return &UserService{
		userRepo: userRepo,
		opts:     opts,
	}
}

// 确保 UserService 实现了 UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// MaxOffset 表示偏移量超出 int 范围，这样的页一定为空
const MaxOffset = math.MaxInt

// Pagination 规范化页码和每页数量，小于 1 时使用默认值，并计算行偏移量。
// (page-1)*pageSize 溢出时返回 MaxOffset
func Pagination(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page-1 > MaxOffset/pageSize {
		return page, pageSize, MaxOffset
	}
	return page, pageSize, (page - 1) * pageSize
}

// ListUsers 返回分页的用户列表。分页作用于连接后的行，一个用户可能跨页
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]*model.User, error) {
	_, limit, offset := Pagination(page, pageSize)
	if offset == MaxOffset {
		return []*model.User{}, nil
	}

	rows, err := s.userRepo.ListRows(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "获取用户列表失败", err)
	}
	return aggregate.Users(rows, s.opts.Aggregate), nil
}

// GetUser 通过ID获取用户及其帖子和地址
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	rows, err := s.userRepo.FindRowsByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "获取用户失败", err)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrNotFound, "User not found")
	}
	return aggregate.User(rows, s.opts.Aggregate), nil
}

// CreateUser 创建用户，同时创建一个地址和一个默认标题的帖子
func (s *UserService) CreateUser(ctx context.Context, input *model.CreateUserInput) (int64, error) {
	if input == nil {
		return 0, errors.New(errors.ErrInvalidInput, "无效的用户数据")
	}

	id, err := s.userRepo.CreateWithAddressAndPost(ctx,
		input.Name, input.Email, input.Address,
		s.opts.DefaultPostTitle, input.PostContent)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "创建用户失败", err)
	}

	util.Logger.Info("新用户已创建", zap.Int64("user_id", id))
	return id, nil
}

// Ping 检查存储是否可用
func (s *UserService) Ping(ctx context.Context) error {
	if err := s.userRepo.Ping(ctx); err != nil {
		return errors.Wrap(errors.ErrDatabase, "数据库不可用", err)
	}
	return nil
}
