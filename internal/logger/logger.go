// Package logger настраивает zap для CLI и компонентов скрапера.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap оборачивает *zap.Logger, чтобы компоненты получали один и тот же экземпляр.
type Zap struct {
	*zap.Logger
}

// New создает логгер: env=prod дает JSON production-конфиг, остальное development-консоль.
func New(env, level string) (*Zap, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("неверный уровень логирования %q: %w", level, err)
	}

	var cfg zap.Config
	if env == "prod" || env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("ошибка создания логгера: %w", err)
	}

	return &Zap{Logger: l}, nil
}

// Nop возвращает логгер, который ничего не пишет. Используется в тестах.
func Nop() *Zap {
	return &Zap{Logger: zap.NewNop()}
}
