package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-queue/pkg/settings"
)

// New builds a JSON zap logger writing to stderr and, when FileLogName is
// set, to a rotating file as well. The returned close func flushes the
// logger and releases the log file; call it once the logger is done.
func New(cfg settings.Logger) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var file *lumberjack.Logger
	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	if cfg.FileLogName != "" {
		file = rotator(cfg)
		sinks = append(sinks, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	)
	log := zap.New(core, zap.AddCaller())

	closeFn := func() error {
		_ = log.Sync() // Sync on a terminal stderr returns EINVAL
		if file == nil {
			return nil
		}
		return errors.Wrap(file.Close(), "close log file")
	}
	return log, closeFn, nil
}

func rotator(cfg settings.Logger) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
