package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emeka-osuagwu/user-post-ui/config"
	"github.com/emeka-osuagwu/user-post-ui/internal/util"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DSN 根据驱动拼接连接字符串
func DSN(cfg config.Config) string {
	if cfg.DBDriver == config.DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName)
	}
	return cfg.DBPath
}

// Open 连接数据库并配置连接池
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.DBDriver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// SQLite 只允许一个写连接
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	util.Logger.Info("数据库连接成功", zap.String("driver", cfg.DBDriver))
	return db, nil
}

var schema = map[string][]string{
	config.DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			email TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			title TEXT,
			body TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			street TEXT
		)`,
	},
	config.DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255),
			email VARCHAR(255)
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT,
			title VARCHAR(255),
			body TEXT,
			INDEX idx_posts_user_id (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT,
			street VARCHAR(255),
			INDEX idx_addresses_user_id (user_id)
		)`,
	},
}

// EnsureSchema 创建 users、posts、addresses 三张表（已存在则跳过）
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	stmts, ok := schema[driver]
	if !ok {
		return fmt.Errorf("不支持的数据库驱动: %s", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("创建数据表失败: %w", err)
		}
	}
	util.Logger.Info("数据表已创建或已存在")
	return nil
}
