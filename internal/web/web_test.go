package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"agendamentos/pkg/models"
)

func TestNew(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, name := range []string{ViewPrimeiraPagina, ViewConsulta, ViewEditar} {
		if _, ok := ts.views[name]; !ok {
			t.Errorf("view %q not loaded", name)
		}
	}
}

func TestRenderPrimeiraPagina(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := ts.Render(w, ViewPrimeiraPagina, nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Agendamentos</title>",
		`action="/cadastrar"`,
		`name="data_contato"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}

func TestRenderConsulta(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data := []models.Agendamento{
		{ID: "id1", Nome: "Ana", Telefone: "11999990000", Origem: "site", DataContato: "2024-01-01"},
		{ID: "id2", Nome: "<script>", CriadoEm: time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local)},
	}

	w := httptest.NewRecorder()
	if err := ts.Render(w, ViewConsulta, data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Ana",
		`href="/editar/id1"`,
		`href="/excluir/id2"`,
		"&lt;script&gt;",
		"02/01/2024 09:30",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
	if strings.Contains(body, "Nenhum agendamento") {
		t.Error("body should not show the empty message")
	}
}

func TestRenderConsultaEscapesIDInLinks(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := ts.Render(w, ViewConsulta, []models.Agendamento{{ID: "a?b#c", Nome: "Ana"}}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{`href="/editar/a%3Fb%23c"`, `href="/excluir/a%3Fb%23c"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
	if strings.Contains(body, `/editar/a?b`) {
		t.Error("raw id should not appear in the edit link")
	}
}

func TestRenderConsultaEmpty(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := ts.Render(w, ViewConsulta, []models.Agendamento{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(w.Body.String(), "Nenhum agendamento cadastrado.") {
		t.Error("body does not contain the empty message")
	}
}

func TestRenderEditar(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	a := &models.Agendamento{ID: "X", Nome: "Ana Maria", DataContato: "2024-01-02", Observacao: "ligar depois"}

	w := httptest.NewRecorder()
	if err := ts.Render(w, ViewEditar, a); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{
		`action="/atualizar"`,
		`name="id" value="X"`,
		`value="Ana Maria"`,
		`value="2024-01-02"`,
		">ligar depois</textarea>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}

func TestRenderUnknownView(t *testing.T) {
	ts, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := ts.Render(w, "inexistente", nil); err == nil {
		t.Error("Render() with unknown view should return error")
	}
	if w.Body.Len() != 0 {
		t.Error("nothing should be written for an unknown view")
	}
}

func TestRenderExecutionErrorWritesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"layouts/main.html": {Data: []byte(`{{define "main"}}<p>{{template "content" .}}</p>{{end}}`)},
		"views/quebrada.html": {Data: []byte(`{{define "content"}}{{.Data.Campo}}{{end}}`)},
	}
	ts, err := NewTemplateSet(fsys, "layouts/*.html", "views", []ViewDef{
		{Name: "quebrada", Template: "quebrada.html", Title: "Quebrada"},
	})
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := ts.Render(w, "quebrada", 42); err == nil {
		t.Fatal("Render() should fail when the data has no field Campo")
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

func TestNewTemplateSetErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"layouts/main.html": {Data: []byte(`{{define "main"}}{{template "content" .}}{{end}}`)},
		"views/ok.html":     {Data: []byte(`{{define "content"}}ok{{end}}`)},
	}

	tests := []struct {
		name       string
		layoutGlob string
		defs       []ViewDef
	}{
		{"missing layouts", "nada/*.html", []ViewDef{{Name: "ok", Template: "ok.html"}}},
		{"missing view", "layouts/*.html", []ViewDef{{Name: "x", Template: "x.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTemplateSet(fsys, tt.layoutGlob, "views", tt.defs); err == nil {
				t.Error("NewTemplateSet() should return error")
			}
		})
	}
}

func TestFuncs(t *testing.T) {
	if got := vazio("  "); got != "-" {
		t.Errorf("vazio(blank) = %q, want -", got)
	}
	if got := vazio("Ana"); got != "Ana" {
		t.Errorf("vazio(Ana) = %q", got)
	}
	if got := dataHora(time.Time{}); got != "-" {
		t.Errorf("dataHora(zero) = %q, want -", got)
	}
}
