package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

//go:embed templates/*.html static/*
var assets embed.FS

const layoutFile = "templates/layout.html"

// PlaceholderPath путь заглушки для отсутствующих изображений
const PlaceholderPath = "/static/placeholder.svg"

// Site общие данные для всех страниц
type Site struct {
	Name           string
	CurrencySymbol string
}

// View данные, передаваемые в layout
type View struct {
	Site        Site
	Title       string
	Year        int
	Placeholder string
	Page        interface{}
}

// Renderer рендерит html страницы из встроенных шаблонов
type Renderer struct {
	site    Site
	pages   map[string]*template.Template
	printer *message.Printer
}

// NewRenderer разбирает все страницы вместе с общим layout
func NewRenderer(site Site) (*Renderer, error) {
	r := &Renderer{
		site:    site,
		pages:   make(map[string]*template.Template),
		printer: message.NewPrinter(language.English),
	}

	files, err := fs.Glob(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(r.funcs()).ParseFS(assets, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render выполняет страницу page в буфер и пишет её с кодом status.
// Ошибка шаблона не приводит к частично записанному ответу.
func (r *Renderer) Render(w http.ResponseWriter, status int, page, title string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	view := View{
		Site:        r.site,
		Title:       title,
		Year:        time.Now().Year(),
		Placeholder: PlaceholderPath,
		Page:        data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// FormatMoney форматирует сумму с символом валюты и разделителями разрядов: ₦45,000.00
func (r *Renderer) FormatMoney(v float64) string {
	return r.site.CurrencySymbol + r.printer.Sprint(number.Decimal(v, number.Scale(2)))
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money":      r.FormatMoney,
		"date":       FormatDate,
		"badgeClass": BadgeClass,
		"plural":     Plural,
	}
}

// FormatDate показывает дату как "Mon, 10 Mar 2025"; нераспознанные значения возвращаются как есть
func FormatDate(value string) string {
	t, err := domain.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return t.Format("Mon, 02 Jan 2006")
}

// BadgeClass css класс бейджа статуса
func BadgeClass(kind domain.BadgeKind) string {
	return "badge badge-" + string(kind)
}

// Plural выбирает форму слова по количеству: plural 1 "night" "nights"
func Plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// StaticHandler отдаёт встроенные статические файлы (заглушка изображения)
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
