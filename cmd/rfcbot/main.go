// Package main запускает сервис конфигурации FCP-бота
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rfcbot/internal/config"
	httpapi "rfcbot/internal/http"
	"rfcbot/internal/repository"
	"rfcbot/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации процесса из ENV
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	cfgPath := os.Getenv("RFCBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = "rfcbot.toml"
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Подключение к БД с пользователями GitHub
	db, err := repository.NewPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepo(db)

	// Загрузка и валидация конфигурации бота: ровно один раз, до старта
	// сервера. Любая ошибка разбора или отсутствующий участник команды
	// фатальны — процесс с непроверенной конфигурацией не поднимается.
	cfg, err := config.Load(ctx, cfgPath, userRepo)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", cfgPath, err)
	}

	logger.Info("config loaded",
		slog.String("path", cfgPath),
		slog.Int("teams", len(cfg.Teams)),
		slog.Int("fcp_behaviors", len(cfg.FcpBehaviors)),
		slog.Int("reaction_policies", len(cfg.ProhibitedReactions)),
	)

	// Конфигурация неизменяема: сервис и обработчики читают её без блокировок
	cfgService := service.NewConfigService(cfg)
	handler := httpapi.NewHandler(cfgService, logger)

	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
