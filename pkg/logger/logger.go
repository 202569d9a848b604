// Package logger 基于zap的结构化日志
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// Config 日志配置
type Config struct {
	Level string // debug/info/warn/error
	Mode  string // development/production
}

// New 创建zap Logger
// 设计说明：
// 1. development模式：彩色console输出，带调用位置，适合本地调试
// 2. production模式：JSON输出，适合采集到日志系统
// 3. 通过zap.ReplaceGlobals注册为全局Logger，包内部可用zap.L()获取
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "development" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, apperrors.Wrap(err, "初始化日志失败")
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
