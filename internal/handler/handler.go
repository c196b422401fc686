package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"boardCPT/internal/config"
	"boardCPT/internal/database"
	"boardCPT/internal/repository"
)

type Handlers struct {
	PostRepo repository.PostRepository
	DB       *database.DB
	Cfg      *config.Config
	Log      *slog.Logger
	Validate *validator.Validate
}

func NewHandlers(repo *repository.Repository, db *database.DB, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		PostRepo: repo.Post,
		DB:       db,
		Cfg:      cfg,
		Log:      log,
		Validate: validator.New(),
	}
}
