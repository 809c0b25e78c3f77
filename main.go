package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendamentos/internal/config"
	"agendamentos/internal/database"
	"agendamentos/internal/email"
	"agendamentos/internal/handlers"
	"agendamentos/internal/middleware"
	"agendamentos/internal/push"
	"agendamentos/internal/web"

	"github.com/gorilla/mux"
)

func main() {
	log.Println("🚀 Iniciando servidor de agendamentos...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro config: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewDB(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseProjectID, cfg.Collection)
	if err != nil {
		log.Fatalf("❌ Erro Firestore: %v", err)
	}
	defer db.Close()

	views, err := web.New()
	if err != nil {
		log.Fatalf("❌ Erro templates: %v", err)
	}

	h := handlers.New(cfg, db, views, buildNotifiers(ctx, cfg)...)

	router := mux.NewRouter()
	h.Register(router)

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: middleware.Chain(router,
			middleware.Recovery(log.Default()),
			middleware.AccessLog(log.Writer()),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Servidor ativo na porta %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Falha ao iniciar servidor: %v", err)
		}
	}()

	<-quit
	log.Println("🛑 Desligando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Falha ao desligar servidor: %v", err)
	}
	h.Close()

	log.Println("✅ Servidor desligado com sucesso")
}

// buildNotifiers liga as notificações que estiverem configuradas; falhas
// aqui não impedem o servidor de subir.
func buildNotifiers(ctx context.Context, cfg *config.Config) []handlers.Notifier {
	var notifiers []handlers.Notifier

	if cfg.FirebaseNotifyTopic != "" {
		pushService, err := push.NewFirebaseService(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseNotifyTopic)
		if err != nil {
			log.Printf("⚠️ Aviso: Falha ao carregar Firebase Messaging: %v", err)
		} else {
			notifiers = append(notifiers, pushService)
		}
	}

	if cfg.EnableEmailNotify {
		emailService, err := email.NewEmailService(cfg)
		if err != nil {
			log.Printf("⚠️ Email service not configured: %v", err)
		} else {
			log.Println("✅ Email service initialized")
			notifiers = append(notifiers, emailService)
		}
	}

	return notifiers
}
