package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

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
	"github.com/libreria/bookshop/pkg/logger"
	"github.com/libreria/bookshop/pkg/metrics"
)

// main 主程序入口
// 说明：手动依赖注入，依赖链 Repository ← Service ← UseCase ← Handler
// （wire.go提供等价的Wire注入器，运行wire gen生成wire_gen.go后可替换）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if _, err := logger.New(logger.Config{
		Level: cfg.Log.Level,
		Mode:  cfg.Log.Mode,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zap.L().Sync()

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 初始化数据库与Redis连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		zap.L().Fatal("初始化数据库失败", zap.Error(err))
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		zap.L().Fatal("初始化Redis失败", zap.Error(err))
	}

	// 5. 初始化文件存储
	fileStore, err := storage.NewLocalFileStore(cfg)
	if err != nil {
		zap.L().Fatal("初始化文件存储失败", zap.Error(err))
	}

	// 6. 依赖注入（手动组装）

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	likeRepo := mysql.NewLikeRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	cartService := cart.NewService(cartRepo, bookRepo, txManager)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService, jwtManager)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, sessionStore)

	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, likeRepo)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	toggleLikeUseCase := appbook.NewToggleLikeUseCase(bookService, likeRepo)
	uploadFileUseCase := appbook.NewUploadFileUseCase(bookRepo, fileStore)

	addToCartUseCase := appcart.NewAddToCartUseCase(cartService)
	getCartUseCase := appcart.NewGetCartUseCase(cartService)
	removeFromCartUseCase := appcart.NewRemoveFromCartUseCase(cartService)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, cartRepo, txManager)
	listUserOrdersUseCase := apporder.NewListUserOrdersUseCase(orderRepo)
	listAllOrdersUseCase := apporder.NewListAllOrdersUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		listBooksUseCase,
		getBookUseCase,
		updateBookUseCase,
		deleteBookUseCase,
		toggleLikeUseCase,
		uploadFileUseCase,
	)
	cartHandler := handler.NewCartHandler(addToCartUseCase, getCartUseCase, removeFromCartUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, listUserOrdersUseCase, listAllOrdersUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 路由
	router := httpiface.NewRouter(cfg, userHandler, bookHandler, cartHandler, orderHandler, authMiddleware)

	// 8. 启动HTTP服务（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zap.L().Info("服务启动",
			zap.String("addr", srv.Addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("收到退出信号，开始优雅关闭")

	// 给正在处理的请求10秒收尾时间
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("优雅关闭失败", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Warn("关闭Redis连接失败", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			zap.L().Warn("关闭数据库连接失败", zap.Error(err))
		}
	}

	zap.L().Info("服务已退出")
}
