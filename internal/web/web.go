// Package web carrega os templates HTML embutidos no binário e os renderiza
// dentro do layout "main". Os templates são processados uma única vez na
// inicialização.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/layouts/* templates/views/*
var templatesFS embed.FS

const (
	layoutGlob  = "templates/layouts/*.html"
	viewsSubdir = "templates/views"

	// Layout padrão que envolve todas as páginas.
	Layout = "main"
)

// Páginas renderizadas pela aplicação.
const (
	ViewPrimeiraPagina = "primeira_pagina"
	ViewConsulta       = "consulta"
	ViewEditar         = "editar"
)

var views = []ViewDef{
	{Name: ViewPrimeiraPagina, Template: "primeira_pagina.html", Title: "Agendamentos"},
	{Name: ViewConsulta, Template: "consulta.html", Title: "Consulta"},
	{Name: ViewEditar, Template: "editar.html", Title: "Editar agendamento"},
}

// ViewDef liga o nome de uma página ao arquivo de template e ao título.
type ViewDef struct {
	Name     string
	Template string
	Title    string
}

// ViewData é o contexto passado para os templates.
type ViewData struct {
	Title string
	Data  any
}

type TemplateSet struct {
	views map[string]*template.Template
	defs  map[string]ViewDef
}

// New processa os templates embutidos da aplicação.
func New() (*TemplateSet, error) {
	return NewTemplateSet(templatesFS, layoutGlob, viewsSubdir, views)
}

// NewTemplateSet processa os layouts e clona o conjunto para cada página,
// assim cada página pode definir o seu próprio bloco "content".
func NewTemplateSet(fsys fs.FS, layoutGlob, viewsSubdir string, defs []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewFS, err := fs.Sub(fsys, viewsSubdir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		views: make(map[string]*template.Template, len(defs)),
		defs:  make(map[string]ViewDef, len(defs)),
	}
	for _, d := range defs {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", d.Template, err)
		}
		if _, err := t.ParseFS(viewFS, d.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", d.Template, err)
		}
		ts.views[d.Name] = t
		ts.defs[d.Name] = d
	}

	return ts, nil
}

// Render executa a página pedida dentro do layout. O conteúdo é gerado num
// buffer antes de ser escrito para que um erro de template ainda possa virar
// uma resposta 500 limpa.
func (ts *TemplateSet) Render(w http.ResponseWriter, name string, data any) error {
	t, ok := ts.views[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	vd := ViewData{Title: ts.defs[name].Title, Data: data}
	if err := t.ExecuteTemplate(&buf, Layout, vd); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
