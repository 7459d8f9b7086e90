package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emeka-osuagwu/user-post-ui/internal/util"

	"go.uber.org/zap"
)

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Delete(ctx context.Context, id int64) (int64, error) {
	util.Logger.Info("开始删除帖子", zap.Int64("post_id", id))

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除帖子失败", zap.Error(err), zap.Int64("post_id", id))
		return 0, fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		util.Logger.Error("获取影响行数失败", zap.Error(err))
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	util.Logger.Info("帖子删除完成", zap.Int64("post_id", id), zap.Int64("affected", affected))
	return affected, nil
}
