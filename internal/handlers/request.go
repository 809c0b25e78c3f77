package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"agendamentos/pkg/models"
)

const maxBodyBytes = 1 << 20

// AgendamentoRequest é o corpo aceito por /cadastrar e /atualizar.
// ID só é obrigatório em /atualizar; os demais campos são opcionais e,
// quando ausentes, são gravados como texto vazio.
type AgendamentoRequest struct {
	ID          Campo `json:"id"`
	Nome        Campo `json:"nome"`
	Telefone    Campo `json:"telefone"`
	Origem      Campo `json:"origem"`
	DataContato Campo `json:"data_contato"`
	Observacao  Campo `json:"observacao"`
}

func (req AgendamentoRequest) Agendamento() models.Agendamento {
	return models.Agendamento{
		ID:          strings.TrimSpace(string(req.ID)),
		Nome:        string(req.Nome),
		Telefone:    string(req.Telefone),
		Origem:      string(req.Origem),
		DataContato: string(req.DataContato),
		Observacao:  string(req.Observacao),
	}
}

// Campo aceita qualquer valor JSON e guarda como texto: strings como vieram,
// números e booleanos na forma literal, null como "". Objetos e listas ficam
// com o JSON compacto.
type Campo string

func (c *Campo) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Campo(s)
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*c = ""
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return err
	}
	*c = Campo(buf.String())
	return nil
}

// decodeAgendamento lê JSON quando o Content-Type pede, senão formulário
// (urlencoded ou multipart).
func decodeAgendamento(w http.ResponseWriter, r *http.Request) (AgendamentoRequest, error) {
	var req AgendamentoRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return req, fmt.Errorf("invalid content type %q: %w", ct, err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid json body: %w", err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return req, fmt.Errorf("invalid multipart body: %w", err)
		}
		req = fromForm(r)
	default:
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("invalid form body: %w", err)
		}
		req = fromForm(r)
	}

	req.ID = Campo(strings.TrimSpace(string(req.ID)))
	return req, nil
}

func fromForm(r *http.Request) AgendamentoRequest {
	return AgendamentoRequest{
		ID:          Campo(r.PostFormValue("id")),
		Nome:        Campo(r.PostFormValue("nome")),
		Telefone:    Campo(r.PostFormValue("telefone")),
		Origem:      Campo(r.PostFormValue("origem")),
		DataContato: Campo(r.PostFormValue("data_contato")),
		Observacao:  Campo(r.PostFormValue("observacao")),
	}
}
