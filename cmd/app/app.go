package app

import (
	"fmt"
	"log/slog"

	"boardCPT/internal/config"
	"boardCPT/internal/database"
	"boardCPT/internal/repository"
)

// App собирает зависимости процесса: конфиг -> БД -> репозиторий
func App(cfg *config.Config, log *slog.Logger) (*database.DB, *repository.Repository, error) {
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	repo := repository.NewRepository(db.DB)

	return db, repo, nil
}
