package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"boardCPT/internal/models"
	"boardCPT/internal/repository"
)

type PostsResponse struct {
	Success bool          `json:"success"`
	Posts   []models.Post `json:"posts"`
}

type PostResponse struct {
	Success bool         `json:"success"`
	Post    *models.Post `json:"post"`
}

type CreatedPost struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type CreatedResponse struct {
	Success bool        `json:"success"`
	Data    CreatedPost `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PostRequest - тело запроса на создание и обновление поста
type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// parsePostID - извлекает числовой id из пути, нечисловой id - ошибка валидации
func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.List(r.Context())
	if err != nil {
		h.Log.Error("ошибка при получении списка постов", slog.String("error", err.Error()))
		WriteError(w, "Не удалось получить посты", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, PostsResponse{Success: true, Posts: posts}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		h.Log.Error("ошибка при получении поста",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
		WriteError(w, "Не удалось получить пост", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, PostResponse{Success: true, Post: post}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// валидация до обращения к репозиторию
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заголовок и содержание обязательны", http.StatusBadRequest)
		return
	}

	postID, err := h.PostRepo.Insert(r.Context(), req.Title, req.Content)
	if err != nil {
		h.Log.Error("ошибка при создании поста", slog.String("error", err.Error()))
		WriteError(w, "Не удалось создать пост", http.StatusInternalServerError)
		return
	}

	response := CreatedResponse{
		Success: true,
		Data: CreatedPost{
			ID:      postID,
			Message: "Пост успешно создан",
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заголовок и содержание обязательны", http.StatusBadRequest)
		return
	}

	if err := h.PostRepo.UpdateByID(r.Context(), postID, req.Title, req.Content); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		h.Log.Error("ошибка при обновлении поста",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
		WriteError(w, "Не удалось обновить пост", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Success: true, Message: "Пост успешно обновлен"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := h.PostRepo.DeleteByID(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		h.Log.Error("ошибка при удалении поста",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
		WriteError(w, "Не удалось удалить пост", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Success: true, Message: "Пост успешно удален"}, http.StatusOK)
}
