package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"

	DefaultBackendURL = "http://localhost:4001"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	Port             string
	DBDriver         string
	DBPath           string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	LogLevel         string
	CORSOrigins      []string
	BackendURL       string
	QueryTimeout     time.Duration
	DedupChildren    bool   // 按子记录ID去重帖子和地址
	DefaultPostTitle string // 创建用户时附带帖子的标题
	Debug            bool   // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("错误：%v", err)
	}
	AppConfig = cfg

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。数据库驱动：%s", AppConfig.DBDriver)
}

// Load 从环境变量中读取配置并校验
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "4001"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBPath:           getEnv("DB_PATH", "./database.db"),
		DBHost:           getEnv("DB_HOST", ""),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", ""),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      getEnvAsList("CORS_ORIGINS"),
		BackendURL:       BackendURL(),
		QueryTimeout:     getEnvAsDuration("QUERY_TIMEOUT", 5*time.Second),
		DedupChildren:    getEnvAsBool("DEDUP_CHILDREN", false),
		DefaultPostTitle: getEnv("DEFAULT_POST_TITLE", "Sample Title"),
		Debug:            getEnvAsBool("DEBUG", false),
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BackendURL 返回客户端命令使用的后端地址，不校验数据库配置
func BackendURL() string {
	return getEnv("BACKEND_URL", DefaultBackendURL)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(key, "")
	if val, err := time.ParseDuration(valStr); err == nil && val > 0 {
		return val
	}
	return defaultVal
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validateConfig(cfg Config) error {
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return fmt.Errorf("数据库配置不完整: DB_PATH 未设置")
		}
	case DriverMySQL:
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return fmt.Errorf("数据库配置不完整: MySQL 需要 DB_HOST, DB_PORT, DB_USER, DB_NAME")
		}
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.DBDriver)
	}
	return nil
}
