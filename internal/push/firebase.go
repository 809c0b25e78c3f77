package push

import (
	"context"
	"fmt"
	"log"
	"time"

	"agendamentos/pkg/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender é a parte do cliente FCM usada pelo serviço.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type FirebaseService struct {
	client Sender
	topic  string
}

// NewFirebaseService inicializa o cliente Firebase com suporte a FCM
func NewFirebaseService(ctx context.Context, credentialsPath, topic string) (*FirebaseService, error) {
	if topic == "" {
		return nil, fmt.Errorf("notification topic is empty")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Messaging client: %w", err)
	}

	log.Printf("✅ Firebase Messaging inicializado (tópico: %s)", topic)

	return NewWithSender(client, topic), nil
}

func NewWithSender(client Sender, topic string) *FirebaseService {
	return &FirebaseService{client: client, topic: topic}
}

func (s *FirebaseService) Name() string { return "push" }

// NotifyNovoAgendamento avisa a equipe inscrita no tópico que um contato foi cadastrado
func (s *FirebaseService) NotifyNovoAgendamento(ctx context.Context, a models.Agendamento) error {
	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: "📅 Novo agendamento",
			Body:  novoAgendamentoBody(a),
		},
		Data: map[string]string{
			"type":         "novo_agendamento",
			"id":           a.ID,
			"nome":         a.Nome,
			"origem":       a.Origem,
			"data_contato": a.DataContato,
			"timestamp":    fmt.Sprintf("%d", time.Now().Unix()),
		},
		Android: &messaging.AndroidConfig{
			Priority: "normal",
			Notification: &messaging.AndroidNotification{
				Sound:        "default",
				ChannelID:    "agendamentos",
				DefaultSound: true,
			},
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending novo agendamento push: %w", err)
	}

	log.Printf("🚀 Push de novo agendamento enviado: %s", response)
	return nil
}

func novoAgendamentoBody(a models.Agendamento) string {
	nome := a.Nome
	if nome == "" {
		nome = "Contato sem nome"
	}
	if a.Origem == "" {
		return nome
	}
	return fmt.Sprintf("%s (origem: %s)", nome, a.Origem)
}
