// Package http HTTP接口层：路由、处理器、中间件
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/libreria/bookshop/internal/domain/user"
	"github.com/libreria/bookshop/internal/infrastructure/config"
	"github.com/libreria/bookshop/internal/interface/http/handler"
	"github.com/libreria/bookshop/internal/interface/http/middleware"
	"github.com/libreria/bookshop/pkg/response"
)

// NewRouter 创建并配置Gin引擎
// 设计说明：
// 1. 公开接口：注册、登录、图书列表/详情
// 2. 登录接口：购物车、下单、点赞、登出
// 3. 管理接口：图书管理、全部订单查询（RequireRole(MANAGER)叠加在RequireAuth之后）
func NewRouter(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	// CORS配置
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if cfg.CORS.MaxAge > 0 {
		corsConfig.MaxAge = cfg.CORS.MaxAge
	}
	r.Use(cors.New(corsConfig))

	// 上传文件大小限制
	if cfg.Storage.MaxUploadSize > 0 {
		r.MaxMultipartMemory = cfg.Storage.MaxUploadSize
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档：http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 上传文件静态访问（图书封面、电子书PDF）
	r.Static(cfg.Storage.BaseURL, cfg.Storage.BaseDir)

	requireAuth := authMiddleware.RequireAuth()
	requireManager := authMiddleware.RequireRole(user.RoleManager)

	v1 := r.Group("/api/v1")
	{
		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", userHandler.Signup)
			auth.POST("/login", userHandler.Login)
			auth.POST("/signout", requireAuth, userHandler.Signout)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			// 公开接口
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.GetByID)
			books.GET("/category/:categoryId", bookHandler.ListByCategory)

			// 需要登录
			books.POST("/:id/toggle-like", requireAuth, bookHandler.ToggleLike)

			// 仅MANAGER
			books.POST("", requireAuth, requireManager, bookHandler.Create)
			books.PATCH("/:id", requireAuth, requireManager, bookHandler.Update)
			books.DELETE("/:id", requireAuth, requireManager, bookHandler.Delete)
			books.POST("/:id/upload", requireAuth, requireManager, bookHandler.Upload)
		}

		// 购物车模块（需要登录）
		cart := v1.Group("/cart")
		cart.Use(requireAuth)
		{
			cart.POST("", cartHandler.Add)
			cart.GET("", cartHandler.Get)
			cart.DELETE("/:bookId", cartHandler.Remove)
		}

		// 订单模块（需要登录）
		orders := v1.Group("/orders")
		orders.Use(requireAuth)
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.ListMine)
			orders.GET("/manager", requireManager, orderHandler.ListAll)
		}
	}

	return r
}
