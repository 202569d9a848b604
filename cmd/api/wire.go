//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
//  1. 运行 `wire gen ./cmd/api` 生成wire_gen.go
//  2. main.go改为调用InitializeApp()，替换手动组装代码
//
// 核心概念：
//  - Provider: 提供依赖的构造函数（如NewUserRepository）
//  - Injector: 声明最终要构造的目标类型（*gin.Engine）
//  - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/libreria/bookshop/internal/application/book"
	appcart "github.com/libreria/bookshop/internal/application/cart"
	apporder "github.com/libreria/bookshop/internal/application/order"
	appuser "github.com/libreria/bookshop/internal/application/user"
	"github.com/libreria/bookshop/internal/domain/book"
	"github.com/libreria/bookshop/internal/domain/cart"
	"github.com/libreria/bookshop/internal/domain/user"
	"github.com/libreria/bookshop/internal/infrastructure/config"
	"github.com/libreria/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/libreria/bookshop/internal/infrastructure/persistence/redis"
	"github.com/libreria/bookshop/internal/infrastructure/storage"
	httpiface "github.com/libreria/bookshop/internal/interface/http"
	"github.com/libreria/bookshop/internal/interface/http/handler"
	"github.com/libreria/bookshop/internal/interface/http/middleware"
	"github.com/libreria/bookshop/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	storage.NewLocalFileStore,
	wire.Bind(new(book.FileStore), new(*storage.LocalFileStore)),
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewLikeRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	cart.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewToggleLikeUseCase,
	appbook.NewUploadFileUseCase,
	appcart.NewAddToCartUseCase,
	appcart.NewGetCartUseCase,
	appcart.NewRemoveFromCartUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewListUserOrdersUseCase,
	apporder.NewListAllOrdersUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
// config.Config包含多个字段，Wire无法自动提取，故手写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// InitializeApp 初始化整个应用
// Wire会在wire_gen.go中生成实际的初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		httpiface.NewRouter,
	)
	return nil, nil
}
