package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/config"
	"github.com/osse101/PredictionLeague_Go/internal/handler"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and, when a log
// directory is configured, to a timestamped session file. The caller closes
// the returned file, which is nil without a log directory.
func SetupLogger(cfg *config.Config, service string) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.Log.Level, cfg.Log.Format, service, handler.CurrentVersion(), cfg.Environment, cfg.Log.AddSource)

	if cfg.Log.Dir == "" {
		logger.InitLogger(logCfg)
		logStartup(cfg, logCfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.Log.Dir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}
	cleanupLogs(cfg.Log.Dir, service)

	name := fmt.Sprintf(LogFileNamePattern, service, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.Log.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg, logCfg)
	return logFile, nil
}

func logStartup(cfg *config.Config, logCfg logger.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", cfg.Log.Format)
	slog.Info(LogMsgStarting, "service", logCfg.ServiceName, "environment", cfg.Environment, "version", logCfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.Database.Host,
		"db_name", cfg.Database.Name,
		"port", cfg.Server.Port,
		"telegram", cfg.Telegram.Enabled,
		"kalshi", cfg.KalshiEnabled())
	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}

// cleanupLogs keeps the newest LogFileRetentionCount session files of a service
func cleanupLogs(logDir, service string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, service+"_") && strings.HasSuffix(name, LogFileExtension) {
			names = append(names, name)
		}
	}
	// timestamped names sort chronologically
	slices.Sort(names)

	for len(names) > LogFileRetentionCount {
		if err := os.Remove(filepath.Join(logDir, names[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", names[0], "error", err)
		}
		names = names[1:]
	}
}
