package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v5"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/common/config"
)

const appName = "bedrock-contentgen"

var (
	// Logger is the process-wide default logger. Components take an explicit
	// logger through their options and only fall back to this one.
	Logger      glog.Logger
	initLogOnce sync.Once
)

// init initializes the logger automatically when the package is imported
func init() {
	initLogger()
}

func initLogger() {
	initLogOnce.Do(func() {
		var err error
		Logger, err = glog.NewConsoleWithName(appName, glog.LevelInfo)
		if err != nil {
			panic(fmt.Sprintf("failed to create logger: %+v", err))
		}
	})
}

// Setup applies cfg to the process logger: level, optional log file for gin
// output, host field and the optional alert pusher.
func Setup(ctx context.Context, cfg config.LogConfig) error {
	if cfg.Dir != "" {
		if err := teeGinOutput(cfg.Dir, cfg.OnlyOneLogFile, time.Now()); err != nil {
			return errors.Wrap(err, "setup log file")
		}
	}

	opts := []zap.Option{}
	if cfg.PushAPI != "" {
		ratelimiter, err := gutils.NewRateLimiter(ctx, gutils.RateLimiterArgs{
			Max:     1,
			NPerSec: 1,
		})
		if err != nil {
			return errors.Wrap(err, "create ratelimiter")
		}

		alertPusher, err := glog.NewAlert(
			ctx,
			cfg.PushAPI,
			glog.WithAlertType(cfg.PushType),
			glog.WithAlertToken(cfg.PushToken),
			glog.WithAlertHookLevel(zap.ErrorLevel),
			glog.WithRateLimiter(ratelimiter),
		)
		if err != nil {
			return errors.Wrap(err, "create alert pusher")
		}

		opts = append(opts, zap.HooksWithFields(alertPusher.GetZapHook()))
		Logger.Info("alert pusher configured",
			zap.String("alert_api", cfg.PushAPI),
			zap.String("alert_type", cfg.PushType),
		)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "get hostname")
	}

	Logger = Logger.WithOptions(opts...).With(zap.String("host", hostname))

	if cfg.DebugEnabled {
		_ = Logger.ChangeLevel("debug")
		Logger.Info("running in debug mode")
	} else {
		_ = Logger.ChangeLevel("info")
	}

	return nil
}

// LogFilePath returns the file gin output is written to for the given day.
func LogFilePath(dir string, onlyOne bool, now time.Time) string {
	if onlyOne {
		return filepath.Join(dir, appName+".log")
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.log", appName, now.Format("20060102")))
}

func teeGinOutput(dir string, onlyOne bool, now time.Time) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, "resolve log dir %q", dir)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return errors.Wrapf(err, "create log dir %q", abs)
	}

	logPath := LogFilePath(abs, onlyOne, now)
	fd, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open log file %q", logPath)
	}

	gin.DefaultWriter = io.MultiWriter(os.Stdout, fd)
	gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, fd)
	Logger.Info("set log dir", zap.String("log_path", logPath))
	return nil
}
