package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/brianvoe/gofakeit/v6"

	"boardCPT/cmd/app"
	"boardCPT/internal/config"
)

// заполняет таблицу posts тестовыми данными
func main() {
	count := flag.Int("count", 10, "сколько постов создать")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.LoadConfig()

	db, repo, err := app.App(cfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.CloseDB()

	ctx := context.Background()

	for i := 0; i < *count; i++ {
		title := gofakeit.Sentence(5)
		content := gofakeit.Paragraph(2, 4, 10, "\n")

		postID, err := repo.Post.Insert(ctx, title, content)
		if err != nil {
			logger.Error("ошибка при создании поста", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("пост создан", slog.Int64("post_id", postID))
	}

	logger.Info("заполнение завершено", slog.Int("count", *count))
}
