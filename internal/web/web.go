package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages - клиентские страницы, вся работа с данными идет через JSON API
type Pages struct {
	tmpl *template.Template
	log  *slog.Logger
}

func NewPages(log *slog.Logger) (*Pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе шаблонов: %w", err)
	}

	return &Pages{tmpl: tmpl, log: log}, nil
}

func (p *Pages) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, name, nil); err != nil {
		p.log.Error("ошибка при рендеринге страницы",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
	}
}

// HomePage - список постов
func (p *Pages) HomePage(w http.ResponseWriter, r *http.Request) {
	p.render(w, "index.html")
}

// PostPage - просмотр одного поста
func (p *Pages) PostPage(w http.ResponseWriter, r *http.Request) {
	p.render(w, "post.html")
}

// WritePage - форма создания поста
func (p *Pages) WritePage(w http.ResponseWriter, r *http.Request) {
	p.render(w, "write.html")
}

// EditPage - форма редактирования поста
func (p *Pages) EditPage(w http.ResponseWriter, r *http.Request) {
	p.render(w, "edit.html")
}
