package web

import (
	"html/template"
	"net/url"
	"strings"
	"time"
)

var funcs = template.FuncMap{
	"dataHora":   dataHora,
	"vazio":      vazio,
	"pathEscape": url.PathEscape,
}

// dataHora formata um horário no padrão brasileiro; zero vira "-".
func dataHora(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}

// vazio substitui texto em branco por "-".
func vazio(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
