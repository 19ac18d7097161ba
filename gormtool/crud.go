// gormtool\crud.go
package gormtool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// 常量定义
const (
	CacheTTL = 5 * time.Minute
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// CRUDTool 封装数据库、缓存与操作日志，供仓储和服务层共用
type CRUDTool struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	Logger      Logger
	EnableLog   bool
}

// DatabaseStats 数据库统计信息结构体
type DatabaseStats struct {
	MaxOpenConnections int           `json:"max_open_connections"`
	OpenConnections    int           `json:"open_connections"`
	InUse              int           `json:"in_use"`
	Idle               int           `json:"idle"`
	WaitCount          int64         `json:"wait_count"`
	WaitDuration       time.Duration `json:"wait_duration"`
	MaxIdleClosed      int64         `json:"max_idle_closed"`
	MaxLifetimeClosed  int64         `json:"max_lifetime_closed"`
}

// NewCRUDTool 创建新的 CRUD 工具，redisClient 可以为 nil（不使用缓存）
func NewCRUDTool(db *gorm.DB, redisClient *redis.Client, logger Logger) *CRUDTool {
	if logger == nil {
		logger = NewSlogLogger(nil)
	}

	return &CRUDTool{
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
		EnableLog:   true,
	}
}

// LogOperation 记录操作日志
//
//	start := time.Now()
//	err := repo.Create(ctx, &tag)
//	t.LogOperation(ctx, "create_tag", &tag, time.Since(start), err, map[string]interface{}{
//		"name": tag.Name,
//	})
func (t *CRUDTool) LogOperation(ctx context.Context, operation string, model interface{}, duration time.Duration, err error, additionalFields map[string]interface{}) {
	if !t.EnableLog {
		return
	}

	fields := map[string]interface{}{
		"operation": operation,
		"duration":  duration.String(),
	}
	if model != nil {
		fields["model"] = fmt.Sprintf("%T", model)
	}

	if err != nil {
		fields["error"] = err.Error()
	}

	for k, v := range additionalFields {
		fields[k] = v
	}

	if err != nil {
		t.Logger.Error(ctx, "operation failed", fields)
	} else {
		t.Logger.Debug(ctx, "operation succeeded", fields)
	}
}

// 事务相关方法
type TxFunc func(tx *gorm.DB) error

// WithTransaction 执行事务
func (t *CRUDTool) WithTransaction(ctx context.Context, fn TxFunc) error {
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}

// 缓存相关方法
func (t *CRUDTool) GenerateCacheKey(model interface{}, id interface{}) string {
	return fmt.Sprintf("%T:%v", model, id)
}

func (t *CRUDTool) GetFromCache(ctx context.Context, key string, result interface{}) bool {
	if t.RedisClient == nil {
		return false
	}

	data, err := t.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			t.Logger.Warn(ctx, "cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return false
	}

	if err := json.Unmarshal([]byte(data), result); err != nil {
		return false
	}

	return true
}

func (t *CRUDTool) SetToCache(ctx context.Context, key string, data interface{}) error {
	if t.RedisClient == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return t.RedisClient.Set(ctx, key, jsonData, CacheTTL).Err()
}

func (t *CRUDTool) DeleteFromCache(ctx context.Context, key string) error {
	if t.RedisClient == nil {
		return nil
	}

	return t.RedisClient.Del(ctx, key).Err()
}

// Remember 读穿缓存：命中则直接解码到 result，否则调用 load 填充 result 并写回缓存。
// 写缓存失败只记日志，不影响返回结果。
func (t *CRUDTool) Remember(ctx context.Context, key string, result interface{}, load func() error) error {
	if t.GetFromCache(ctx, key, result) {
		return nil
	}
	if err := load(); err != nil {
		return err
	}
	if err := t.SetToCache(ctx, key, result); err != nil {
		t.Logger.Warn(ctx, "cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	return nil
}

// Health 检查数据库与 Redis 连通性
func (t *CRUDTool) Health(c *gin.Context) {
	ctx := c.Request.Context()
	status := gin.H{"database": "ok"}
	code := http.StatusOK

	if sqlDB, err := t.DB.DB(); err != nil {
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	if t.RedisClient != nil {
		status["redis"] = "ok"
		if err := t.RedisClient.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, Response{
		Code:    code,
		Message: http.StatusText(code),
		Data:    status,
	})
}

// GetMetrics 获取性能指标
func (t *CRUDTool) GetMetrics(c *gin.Context) {
	metrics := gin.H{}

	// 获取数据库统计信息
	if sqlDB, err := t.DB.DB(); err == nil {
		stats := sqlDB.Stats()
		dbStats := DatabaseStats{
			MaxOpenConnections: stats.MaxOpenConnections,
			OpenConnections:    stats.OpenConnections,
			InUse:              stats.InUse,
			Idle:               stats.Idle,
			WaitCount:          stats.WaitCount,
			WaitDuration:       stats.WaitDuration,
			MaxIdleClosed:      stats.MaxIdleClosed,
			MaxLifetimeClosed:  stats.MaxLifetimeClosed,
		}
		metrics["database"] = dbStats
	} else {
		metrics["database"] = "database stats unavailable: " + err.Error()
	}

	metrics["redis"] = t.getRedisStats(c.Request.Context())

	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "ok",
		Data:    metrics,
	})
}

// getRedisStats 获取 Redis 统计信息
func (t *CRUDTool) getRedisStats(ctx context.Context) interface{} {
	if t.RedisClient == nil {
		return "redis not configured"
	}

	info, err := t.RedisClient.Info(ctx).Result()
	if err != nil {
		return "redis info unavailable: " + err.Error()
	}

	// 解析 Redis 信息为更结构化的格式
	redisStats := make(map[string]string)
	lines := strings.Split(info, "\r\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			redisStats[parts[0]] = parts[1]
		}
	}

	return redisStats
}
