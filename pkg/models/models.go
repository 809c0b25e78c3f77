package models

import "time"

// Agendamento é um contato registrado na coleção "agendamentos".
// O ID é atribuído pelo Firestore e não faz parte do corpo do documento.
type Agendamento struct {
	ID           string    `firestore:"-" json:"id"`
	Nome         string    `firestore:"nome" json:"nome"`
	Telefone     string    `firestore:"telefone" json:"telefone"`
	Origem       string    `firestore:"origem" json:"origem"`
	DataContato  string    `firestore:"data_contato" json:"data_contato"` // armazenada como recebida
	Observacao   string    `firestore:"observacao" json:"observacao"`
	CriadoEm     time.Time `firestore:"criado_em,omitempty" json:"criado_em,omitempty"`
	AtualizadoEm time.Time `firestore:"atualizado_em,omitempty" json:"atualizado_em,omitempty"`
}
