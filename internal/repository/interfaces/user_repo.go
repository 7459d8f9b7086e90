package interfaces

import (
	"context"

	"github.com/emeka-osuagwu/user-post-ui/internal/model"
)

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	// ListRows 返回连接后的行，limit/offset 作用于行而不是用户
	ListRows(ctx context.Context, limit, offset int) ([]model.UserRow, error)
	FindRowsByID(ctx context.Context, id int64) ([]model.UserRow, error)
	// CreateWithAddressAndPost 在同一事务中插入用户、地址和帖子，返回新用户ID
	CreateWithAddressAndPost(ctx context.Context, name, email, street, postTitle, postBody string) (int64, error)
	Ping(ctx context.Context) error
}
