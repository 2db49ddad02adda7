package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"kanji-tui/internal/app"
	"kanji-tui/internal/config"
	"kanji-tui/internal/kanji"
	"kanji-tui/internal/logging"
	"kanji-tui/internal/storage"
)

func main() {
	// Загружаем конфигурацию; при ошибке работаем на значениях по умолчанию
	cfg, cfgErr := config.Load()

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", zap.String("path", cfg.Path()), zap.Error(cfgErr))
	}

	// Создаем контекст с отменой для graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application := app.New(cfg, logger)
	if err := application.LoadPlugin(kanji.New()); err != nil {
		// Плагин остается загруженным на настройках по умолчанию
		logger.Warn("kanji plugin started with defaults", zap.Error(err))
	}

	program := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if cfg.WatchData {
		watcher, err := watchPluginData(ctx, logger, application, program)
		if err != nil {
			logger.Warn("data watcher disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	_, runErr := program.Run()
	application.Shutdown()

	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
}

// watchPluginData пересылает изменения файлов данных плагинов в программу
func watchPluginData(ctx context.Context, logger *zap.Logger, application *app.App, program *tea.Program) (*storage.Watcher, error) {
	watcher, err := storage.NewWatcher(ctx, logger)
	if err != nil {
		return nil, err
	}

	for id, path := range application.PluginDataPaths() {
		pluginID := id
		if err := watcher.WatchFile(path, func(storage.ChangeEvent) {
			program.Send(app.DataChangedMsg{PluginID: pluginID})
		}); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
	}
	return watcher, nil
}
