// Package logger собирает *zap.Logger из настроек wheel.yaml.
package logger

import (
	"fmt"
	"os"
	"time"

	"fortune-wheel/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFmt = "2006/01/02 15:04:05.000"

// New builds a logger: colored console output in dev mode, plus a rotating
// file when File is set. Prod mode without a file logs plain console lines.
func New(cfg config.LogSettings) (*zap.Logger, error) {
	lv := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	dev := cfg.Mode != "prod"
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg(dev)),
			zapcore.Lock(os.Stderr),
			lv,
		),
	}
	if cfg.File != "" {
		cores = append(cores, fileCore(cfg, lv))
	}

	opts := []zap.Option{zap.AddCaller()}
	if dev {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func fileCore(cfg config.LogSettings, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg(false)),
		zapcore.AddSync(w),
		lv,
	)
}

func encCfg(color bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg
}
