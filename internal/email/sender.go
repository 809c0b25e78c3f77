package email

import (
	"context"
	"fmt"
	"log"

	"agendamentos/pkg/models"
)

func (s *EmailService) Name() string { return "email" }

// NotifyNovoAgendamento envia o resumo de um contato recém-cadastrado
func (s *EmailService) NotifyNovoAgendamento(ctx context.Context, a models.Agendamento) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("📅 Novo agendamento - %s", a.Nome)
	htmlBody := NovoAgendamentoTemplate(a)

	if err := s.SendEmail(s.cfg.NotifyEmailTo, subject, htmlBody); err != nil {
		return err
	}

	log.Printf("📧 Email de novo agendamento enviado para: %s", s.cfg.NotifyEmailTo)
	return nil
}
