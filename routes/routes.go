package routes

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/studieren/compliments/auth"
	"github.com/studieren/compliments/config"
	"github.com/studieren/compliments/controllers"
	"github.com/studieren/compliments/gormtool"
	"github.com/studieren/compliments/middleware"
	"github.com/studieren/compliments/repositories"
	"github.com/studieren/compliments/services"
)

// New 组装仓储、服务、控制器并注册全部路由；rdb 可以为 nil
func New(db *gorm.DB, rdb *redis.Client, cfg config.AuthConfig, logger *slog.Logger) *gin.Engine {
	cruder := gormtool.NewCRUDTool(db, rdb, gormtool.NewSlogLogger(logger))
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	users := repositories.NewUsersRepository(db)
	tags := repositories.NewTagsRepository(db)
	compliments := repositories.NewComplimentsRepository(db)

	createUser := controllers.NewCreateUserController(services.NewCreateUserService(users, cruder))
	authenticateUser := controllers.NewAuthenticateUserController(services.NewAuthenticateUserService(users, tokens))
	listUsers := controllers.NewListUsersController(services.NewListUsersService(users))
	createTag := controllers.NewCreateTagController(services.NewCreateTagService(tags, cruder))
	listTags := controllers.NewListTagsController(services.NewListTagsService(tags, cruder))
	createCompliment := controllers.NewCreateComplimentController(
		services.NewCreateComplimentService(cruder))
	listSent := controllers.NewListUserSendComplimentsController(services.NewListUserSendComplimentsService(compliments))
	listReceived := controllers.NewListUserReceiveComplimentsController(services.NewListUserReceiveComplimentsService(compliments))

	ensureAuthenticated := middleware.EnsureAuthenticated(tokens)
	ensureAdmin := middleware.EnsureAdmin(users)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(logger),
		cors.Default(),
	)

	r.POST("/users", createUser.Handle)
	r.POST("/login", loginLimiter.Middleware(), authenticateUser.Handle)

	r.POST("/tags", ensureAuthenticated, ensureAdmin, createTag.Handle)
	r.GET("/tags", ensureAuthenticated, listTags.Handle)

	r.POST("/compliments", ensureAuthenticated, createCompliment.Handle)

	r.GET("/users", ensureAuthenticated, listUsers.Handle)
	r.GET("/users/compliments/send", ensureAuthenticated, listSent.Handle)
	r.GET("/users/compliments/receive", ensureAuthenticated, listReceived.Handle)

	r.GET("/health", cruder.Health)
	r.GET("/metrics", cruder.GetMetrics)

	return r
}
