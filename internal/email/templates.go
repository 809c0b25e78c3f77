package email

import (
	"fmt"
	"html/template"
	"time"

	"agendamentos/pkg/models"
)

// NovoAgendamentoTemplate gera HTML com os dados do contato cadastrado
func NovoAgendamentoTemplate(a models.Agendamento) string {
	esc := template.HTMLEscapeString
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .header { background-color: #0d6efd; color: white; padding: 20px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .footer { background-color: #f8f9fa; padding: 15px; text-align: center; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>📅 Novo agendamento</h1>
        </div>
        <div class="content">
            <p><strong>Nome:</strong> %s</p>
            <p><strong>Telefone:</strong> %s</p>
            <p><strong>Origem:</strong> %s</p>
            <p><strong>Data do contato:</strong> %s</p>
            <p><strong>Observação:</strong> %s</p>
            <p><strong>Cadastrado em:</strong> %s</p>
        </div>
        <div class="footer">
            <p>Este é um email automático do sistema de agendamentos</p>
            <p>Não responda a este email</p>
        </div>
    </div>
</body>
</html>
    `, esc(a.Nome), esc(a.Telefone), esc(a.Origem), esc(a.DataContato), esc(a.Observacao),
		time.Now().Format("02/01/2006 15:04"))
}
