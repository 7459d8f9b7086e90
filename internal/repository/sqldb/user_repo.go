package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emeka-osuagwu/user-post-ui/internal/model"
	"github.com/emeka-osuagwu/user-post-ui/internal/util"

	"go.uber.org/zap"
)

const userRowsQuery = `
	SELECT
		users.id AS user_id,
		users.name,
		users.email,
		posts.id AS post_id,
		posts.title AS post_title,
		posts.body AS post_body,
		addresses.id AS address_id,
		addresses.street AS address_street
	FROM users
	LEFT JOIN posts ON posts.user_id = users.id
	LEFT JOIN addresses ON addresses.user_id = users.id`

const userRowsOrder = `
	ORDER BY users.id, posts.id, addresses.id`

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

// ListRows 返回分页后的连接行
func (r *userRepository) ListRows(ctx context.Context, limit, offset int) ([]model.UserRow, error) {
	query := userRowsQuery + userRowsOrder + `
	LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		util.Logger.Error("查询用户列表失败",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	return scanUserRows(rows)
}

// FindRowsByID 返回指定用户的所有连接行
func (r *userRepository) FindRowsByID(ctx context.Context, id int64) ([]model.UserRow, error) {
	query := userRowsQuery + `
	WHERE users.id = ?` + userRowsOrder

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		util.Logger.Error("查询用户失败", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	defer rows.Close()

	return scanUserRows(rows)
}

// CreateWithAddressAndPost 创建用户及其地址和帖子，三条插入全部成功才提交
func (r *userRepository) CreateWithAddressAndPost(ctx context.Context, name, email, street, postTitle, postBody string) (int64, error) {
	util.Logger.Info("开始创建用户", zap.String("email", email))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		util.Logger.Error("开始事务失败", zap.Error(err))
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `INSERT INTO users (name, email) VALUES (?, ?)`, name, email)
	if err != nil {
		util.Logger.Error("创建用户失败", zap.Error(err))
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新用户ID失败", zap.Error(err))
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO addresses (user_id, street) VALUES (?, ?)`, userID, street); err != nil {
		util.Logger.Error("插入地址失败", zap.Error(err), zap.Int64("user_id", userID))
		return 0, fmt.Errorf("failed to insert address: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO posts (user_id, title, body) VALUES (?, ?, ?)`, userID, postTitle, postBody); err != nil {
		util.Logger.Error("插入帖子失败", zap.Error(err), zap.Int64("user_id", userID))
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		util.Logger.Error("提交事务失败", zap.Error(err))
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	util.Logger.Info("用户创建成功", zap.Int64("user_id", userID))
	return userID, nil
}

// Ping 检查数据库连接
func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanUserRows(rows *sql.Rows) ([]model.UserRow, error) {
	var out []model.UserRow
	for rows.Next() {
		var row model.UserRow
		if err := rows.Scan(
			&row.UserID, &row.Name, &row.Email,
			&row.PostID, &row.PostTitle, &row.PostBody,
			&row.AddressID, &row.AddressStreet,
		); err != nil {
			util.Logger.Error("扫描用户数据失败", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		util.Logger.Error("遍历用户数据失败", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return out, nil
}
