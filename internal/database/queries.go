package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"agendamentos/pkg/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ListAgendamentos retorna todos os documentos da coleção ordenados por
// criado_em e depois por ID. A ordenação é feita aqui e não com OrderBy
// para não perder documentos antigos que não têm o campo criado_em.
func (db *DB) ListAgendamentos(ctx context.Context) ([]models.Agendamento, error) {
	iter := db.col().Documents(ctx)
	defer iter.Stop()

	var agendamentos []models.Agendamento
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query agendamentos: %w", err)
		}
		agendamentos = append(agendamentos, fromData(snap.Ref.ID, snap.Data()))
	}

	SortAgendamentos(agendamentos)
	return agendamentos, nil
}

func (db *DB) GetAgendamento(ctx context.Context, id string) (*models.Agendamento, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	snap, err := db.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agendamento %s: %w", id, err)
	}

	a := fromData(snap.Ref.ID, snap.Data())
	return &a, nil
}

// CreateAgendamento grava um novo documento e devolve o ID atribuído pelo Firestore
func (db *DB) CreateAgendamento(ctx context.Context, a models.Agendamento) (string, error) {
	now := time.Now().UTC()
	a.CriadoEm = now
	a.AtualizadoEm = now

	ref, _, err := db.col().Add(ctx, a)
	if err != nil {
		return "", fmt.Errorf("failed to add agendamento: %w", err)
	}
	return ref.ID, nil
}

// UpdateAgendamento sobrescreve os cinco campos do documento. Sem controle de
// versão: a última escrita prevalece.
func (db *DB) UpdateAgendamento(ctx context.Context, a models.Agendamento) error {
	if !validID(a.ID) {
		return ErrNotFound
	}

	_, err := db.col().Doc(a.ID).Update(ctx, []firestore.Update{
		{Path: "nome", Value: a.Nome},
		{Path: "telefone", Value: a.Telefone},
		{Path: "origem", Value: a.Origem},
		{Path: "data_contato", Value: a.DataContato},
		{Path: "observacao", Value: a.Observacao},
		{Path: "atualizado_em", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update agendamento %s: %w", a.ID, err)
	}
	return nil
}

// DeleteAgendamento remove o documento. Remover um ID inexistente não é erro.
func (db *DB) DeleteAgendamento(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("invalid agendamento id: %q", id)
	}

	if _, err := db.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete agendamento %s: %w", id, err)
	}
	return nil
}

// SortAgendamentos ordena por criado_em crescente e desempata pelo ID.
// Documentos sem criado_em ficam no início.
func SortAgendamentos(list []models.Agendamento) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CriadoEm.Equal(list[j].CriadoEm) {
			return list[i].CriadoEm.Before(list[j].CriadoEm)
		}
		return list[i].ID < list[j].ID
	})
}

// fromData converte o mapa do documento sem exigir um formato fixo: campos
// ausentes viram "" e valores que não são string são formatados com fmt.Sprint.
func fromData(id string, data map[string]interface{}) models.Agendamento {
	return models.Agendamento{
		ID:           id,
		Nome:         stringField(data, "nome"),
		Telefone:     stringField(data, "telefone"),
		Origem:       stringField(data, "origem"),
		DataContato:  stringField(data, "data_contato"),
		Observacao:   stringField(data, "observacao"),
		CriadoEm:     timeField(data, "criado_em"),
		AtualizadoEm: timeField(data, "atualizado_em"),
	}
}

func stringField(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

func timeField(data map[string]interface{}, key string) time.Time {
	if t, ok := data[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

// IDs do Firestore não podem ser vazios nem conter "/"
func validID(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}
