package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emeka-osuagwu/user-post-ui/config"
	"github.com/emeka-osuagwu/user-post-ui/internal/aggregate"
	"github.com/emeka-osuagwu/user-post-ui/internal/api"
	"github.com/emeka-osuagwu/user-post-ui/internal/database"
	"github.com/emeka-osuagwu/user-post-ui/internal/middleware"
	"github.com/emeka-osuagwu/user-post-ui/internal/repository/sqldb"
	"github.com/emeka-osuagwu/user-post-ui/internal/service"
	"github.com/emeka-osuagwu/user-post-ui/internal/util"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "userpost",
		Short: "Users, posts and addresses backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		initDBCmd(),
		usersCmd(),
		userCmd(),
		createUserCmd(),
		deletePostCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func initDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the users, posts and addresses tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Init()
			util.InitLogger(config.AppConfig.LogLevel)
			defer util.Logger.Sync()

			ctx := cmd.Context()
			db, err := database.Open(ctx, config.AppConfig)
			if err != nil {
				return err
			}
			defer db.Close()

			return database.EnsureSchema(ctx, db, config.AppConfig.DBDriver)
		},
	}
}

func serve() error {
	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接数据库
	db, err := database.Open(context.Background(), config.AppConfig)
	if err != nil {
		util.Logger.Error("连接数据库失败", zap.Error(err))
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db, config.AppConfig.DBDriver); err != nil {
		util.Logger.Error("初始化数据表失败", zap.Error(err))
		return err
	}

	// 初始化存储库、服务和处理器
	userRepo := sqldb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, service.UserOptions{
		DefaultPostTitle: config.AppConfig.DefaultPostTitle,
		Aggregate:        aggregate.Options{DedupChildren: config.AppConfig.DedupChildren},
	})
	postRepo := sqldb.NewPostRepository(db)
	postService := service.NewPostService(postRepo)

	r := api.NewRouter(api.RouterConfig{
		UserService:  userService,
		PostService:  postService,
		ErrorMonitor: middleware.NewErrorMonitor(),
		CORSOrigins:  config.AppConfig.CORSOrigins,
		QueryTimeout: config.AppConfig.QueryTimeout,
	})

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		util.Logger.Error("启动服务器失败", zap.Error(err))
		return err
	case <-quit:
	}
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Error("服务器强制关闭", zap.Error(err))
		return err
	}

	util.Logger.Info("服务器已优雅关闭")
	return nil
}
