package interfaces

import "context"

// PostRepository 定义了帖子相关的数据库操作接口
type PostRepository interface {
	// Delete 返回被删除的行数
	Delete(ctx context.Context, id int64) (int64, error)
}
