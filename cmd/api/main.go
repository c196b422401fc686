package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"boardCPT/cmd/app"
	"boardCPT/internal/config"
	handlers "boardCPT/internal/handler"
	"boardCPT/internal/middleware"
	"boardCPT/internal/web"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	db, repo, err := app.App(cfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := handlers.NewHandlers(repo, db, cfg, logger)

	pages, err := web.NewPages(logger)
	if err != nil {
		logger.Error("ошибка инициализации страниц", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// setting up routes
	router := mux.NewRouter()

	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/", pages.HomePage).Methods(http.MethodGet)
	router.HandleFunc("/write", pages.WritePage).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", pages.PostPage).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}/edit", pages.EditPage).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: handlerChain,
	}

	// Starting the server
	go func() {
		logger.Info("сервер запущен",
			slog.String("addr", addr),
			slog.String("db", cfg.DB.DbNAME),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ошибка запуска сервера", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// waiting for a stop signal, then drain
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("останавливаем сервер")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("ошибка при остановке сервера", slog.String("error", err.Error()))
	}

	if err := db.CloseDB(); err != nil {
		logger.Error("ошибка при закрытии БД", slog.String("error", err.Error()))
	}
}
