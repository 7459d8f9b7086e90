package api

import (
	"time"

	"github.com/emeka-osuagwu/user-post-ui/internal/api/health"
	"github.com/emeka-osuagwu/user-post-ui/internal/api/post"
	"github.com/emeka-osuagwu/user-post-ui/internal/api/user"
	"github.com/emeka-osuagwu/user-post-ui/internal/middleware"
	"github.com/emeka-osuagwu/user-post-ui/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig 路由需要的服务和设置
type RouterConfig struct {
	UserService  service.UserServiceInterface
	PostService  service.PostServiceInterface
	ErrorMonitor *middleware.ErrorMonitor
	CORSOrigins  []string
	QueryTimeout time.Duration
}

// NewRouter 创建 gin 路由
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.ErrorMonitor == nil {
		cfg.ErrorMonitor = middleware.NewErrorMonitor()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(cfg.ErrorMonitor))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.Timeout(cfg.QueryTimeout))

	userHandler := user.NewUserHandler(cfg.UserService)
	postHandler := post.NewPostHandler(cfg.PostService)
	healthHandler := health.NewHealthHandler(cfg.UserService, cfg.ErrorMonitor)

	r.GET("/users", userHandler.ListUsers)
	r.GET("/user/:id", userHandler.GetUser)
	r.POST("/user", userHandler.CreateUser)
	r.DELETE("/post/:id", postHandler.DeletePost)
	r.GET("/health", healthHandler.Health)

	return r
}

// 未配置来源时允许所有来源
func corsConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		middleware.RequestIDHeader,
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length",
		"Content-Type",
		middleware.RequestIDHeader,
	}
	return corsConfig
}
