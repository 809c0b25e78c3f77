package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"agendamentos/internal/config"
	"agendamentos/internal/database"
	"agendamentos/internal/web"
	"agendamentos/pkg/models"

	"github.com/gorilla/mux"
)

// Store é o acesso à coleção de agendamentos. *database.DB implementa.
type Store interface {
	ListAgendamentos(ctx context.Context) ([]models.Agendamento, error)
	GetAgendamento(ctx context.Context, id string) (*models.Agendamento, error)
	CreateAgendamento(ctx context.Context, a models.Agendamento) (string, error)
	UpdateAgendamento(ctx context.Context, a models.Agendamento) error
	DeleteAgendamento(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Renderer renderiza uma página pelo nome. *web.TemplateSet implementa.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

// Notifier recebe os contatos recém-cadastrados (push, email)
type Notifier interface {
	Name() string
	NotifyNovoAgendamento(ctx context.Context, a models.Agendamento) error
}

// Handler reúne as dependências criadas na inicialização do processo.
type Handler struct {
	cfg       *config.Config
	store     Store
	views     Renderer
	notifiers []Notifier
	startTime time.Time

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func New(cfg *config.Config, store Store, views Renderer, notifiers ...Notifier) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     store,
		views:     views,
		notifiers: notifiers,
		startTime: time.Now(),
	}
}

// Register liga as rotas da aplicação no router
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.PrimeiraPagina).Methods(http.MethodGet)
	r.HandleFunc("/consulta", h.Consulta).Methods(http.MethodGet)
	r.HandleFunc("/editar/{id}", h.Editar).Methods(http.MethodGet)
	r.HandleFunc("/excluir/{id}", h.Excluir).Methods(http.MethodGet)
	r.HandleFunc("/cadastrar", h.Cadastrar).Methods(http.MethodPost)
	r.HandleFunc("/atualizar", h.Atualizar).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
}

// Close impede novas notificações e espera as que estão em andamento.
// Requisições que chegarem depois continuam funcionando, só não notificam.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.wg.Wait()
}

// storeContext desliga o cancelamento do cliente: uma conexão que cai não
// interrompe a escrita em andamento, apenas o timeout configurado.
func (h *Handler) storeContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), h.cfg.StoreTimeout())
}

func (h *Handler) PrimeiraPagina(w http.ResponseWriter, r *http.Request) {
	h.render(w, web.ViewPrimeiraPagina, nil)
}

func (h *Handler) Consulta(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.storeContext(r)
	defer cancel()

	data, err := h.store.ListAgendamentos(ctx)
	if err != nil {
		log.Printf("❌ Erro ao consultar os documentos: %v", err)
		http.Error(w, "Erro ao consultar os documentos.", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = []models.Agendamento{}
	}

	h.render(w, web.ViewConsulta, data)
}

func (h *Handler) Editar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := h.storeContext(r)
	defer cancel()

	data, err := h.store.GetAgendamento(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		log.Printf("⚠️ Documento não encontrado: %s", id)
		http.Error(w, "Documento não encontrado.", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("❌ Erro ao buscar o documento %s: %v", id, err)
		http.Error(w, "Erro ao buscar o documento.", http.StatusInternalServerError)
		return
	}

	h.render(w, web.ViewEditar, data)
}

func (h *Handler) Excluir(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := h.storeContext(r)
	defer cancel()

	if err := h.store.DeleteAgendamento(ctx, id); err != nil {
		log.Printf("❌ Erro ao excluir o documento: %v", err)
		http.Error(w, "Erro ao excluir o documento.", http.StatusInternalServerError)
		return
	}

	log.Printf("🗑️ Documento excluído com sucesso: %s", id)
	http.Redirect(w, r, "/consulta", http.StatusFound)
}

func (h *Handler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAgendamento(w, r)
	if err != nil {
		log.Printf("⚠️ Corpo inválido em /cadastrar: %v", err)
		http.Error(w, "Requisição inválida.", http.StatusBadRequest)
		return
	}

	ctx, cancel := h.storeContext(r)
	defer cancel()

	a := req.Agendamento()
	id, err := h.store.CreateAgendamento(ctx, a)
	if err != nil {
		log.Printf("❌ Erro ao cadastrar o documento: %v", err)
		http.Error(w, "Erro ao cadastrar o documento.", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Documento cadastrado com sucesso: %s", id)
	a.ID = id
	h.notify(a)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAgendamento(w, r)
	if err != nil {
		log.Printf("⚠️ Corpo inválido em /atualizar: %v", err)
		http.Error(w, "Requisição inválida.", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "ID do documento não informado.", http.StatusBadRequest)
		return
	}

	ctx, cancel := h.storeContext(r)
	defer cancel()

	if err := h.store.UpdateAgendamento(ctx, req.Agendamento()); err != nil {
		log.Printf("❌ Erro ao atualizar o documento %s: %v", req.ID, err)
		http.Error(w, "Erro ao atualizar o documento.", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Documento atualizado com sucesso: %s", req.ID)
	http.Redirect(w, r, "/consulta", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	if err := h.views.Render(w, name, data); err != nil {
		log.Printf("❌ Erro ao renderizar %s: %v", name, err)
		http.Error(w, "Erro ao carregar a página.", http.StatusInternalServerError)
	}
}

// notify dispara as notificações em segundo plano; falhas só vão para o log
func (h *Handler) notify(a models.Agendamento) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		log.Printf("⚠️ Notificações desligadas, agendamento %s não notificado", a.ID)
		return
	}

	for _, n := range h.notifiers {
		h.wg.Add(1)
		go func(n Notifier) {
			defer h.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), h.cfg.StoreTimeout())
			defer cancel()

			if err := n.NotifyNovoAgendamento(ctx, a); err != nil {
				log.Printf("⚠️ Falha na notificação %s: %v", n.Name(), err)
			}
		}(n)
	}
}
