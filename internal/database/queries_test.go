package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"agendamentos/pkg/models"

	"cloud.google.com/go/firestore"
)

func TestFromData(t *testing.T) {
	criado := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		data map[string]interface{}
		want models.Agendamento
	}{
		{
			"all fields",
			map[string]interface{}{
				"nome":         "Ana",
				"telefone":     "11999990000",
				"origem":       "site",
				"data_contato": "2024-01-01",
				"observacao":   "ligar depois",
				"criado_em":    criado,
			},
			models.Agendamento{
				ID: "abc", Nome: "Ana", Telefone: "11999990000", Origem: "site",
				DataContato: "2024-01-01", Observacao: "ligar depois", CriadoEm: criado,
			},
		},
		{
			"missing fields become empty",
			map[string]interface{}{"nome": "Bia"},
			models.Agendamento{ID: "abc", Nome: "Bia"},
		},
		{
			"non string values are formatted",
			map[string]interface{}{
				"telefone":     int64(11988887777),
				"data_contato": criado,
				"observacao":   true,
			},
			models.Agendamento{
				ID: "abc", Telefone: "11988887777", DataContato: "2024-01-01", Observacao: "true",
			},
		},
		{
			"nil map",
			nil,
			models.Agendamento{ID: "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromData("abc", tt.data)
			if got != tt.want {
				t.Errorf("fromData() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSortAgendamentos(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	list := []models.Agendamento{
		{ID: "c", CriadoEm: t2},
		{ID: "b", CriadoEm: t1},
		{ID: "z"},
		{ID: "a", CriadoEm: t1},
		{ID: "y"},
	}

	SortAgendamentos(list)

	want := []string{"y", "z", "a", "b", "c"}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("list[%d].ID = %q, want %q", i, list[i].ID, id)
		}
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"abc123", true},
		{"", false},
		{"a/b", false},
	}

	for _, tt := range tests {
		if got := validID(tt.id); got != tt.want {
			t.Errorf("validID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestInvalidIDShortCircuits(t *testing.T) {
	db := &DB{collection: "agendamentos"}
	ctx := context.Background()

	if _, err := db.GetAgendamento(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAgendamento(\"\") error = %v, want ErrNotFound", err)
	}
	if err := db.UpdateAgendamento(ctx, models.Agendamento{ID: "a/b"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAgendamento(a/b) error = %v, want ErrNotFound", err)
	}
	if err := db.DeleteAgendamento(ctx, ""); err == nil {
		t.Error("DeleteAgendamento(\"\") should return error")
	}
}

// Roda apenas com o emulador do Firestore (FIRESTORE_EMULATOR_HOST).
func TestFirestoreEmulatorCRUD(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "demo-agendamentos")
	if err != nil {
		t.Fatalf("firestore.NewClient() error = %v", err)
	}
	db := New(client, "agendamentos_"+time.Now().Format("150405.000000"))
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	id, err := db.CreateAgendamento(ctx, models.Agendamento{
		Nome: "Ana", Telefone: "11999990000", Origem: "site", DataContato: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateAgendamento() error = %v", err)
	}

	list, err := db.ListAgendamentos(ctx)
	if err != nil {
		t.Fatalf("ListAgendamentos() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != id || list[0].Nome != "Ana" {
		t.Fatalf("ListAgendamentos() = %+v", list)
	}

	err = db.UpdateAgendamento(ctx, models.Agendamento{
		ID: id, Nome: "Ana Maria", Telefone: "11999990000", Origem: "site",
		DataContato: "2024-01-02", Observacao: "ligar depois",
	})
	if err != nil {
		t.Fatalf("UpdateAgendamento() error = %v", err)
	}

	got, err := db.GetAgendamento(ctx, id)
	if err != nil {
		t.Fatalf("GetAgendamento() error = %v", err)
	}
	if got.Nome != "Ana Maria" || got.DataContato != "2024-01-02" || got.Observacao != "ligar depois" {
		t.Errorf("GetAgendamento() = %+v", got)
	}
	if got.CriadoEm.IsZero() {
		t.Error("CriadoEm should be set on create")
	}

	if err := db.UpdateAgendamento(ctx, models.Agendamento{ID: "inexistente"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAgendamento(inexistente) error = %v, want ErrNotFound", err)
	}
	if _, err := db.GetAgendamento(ctx, "inexistente"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAgendamento(inexistente) error = %v, want ErrNotFound", err)
	}

	if err := db.DeleteAgendamento(ctx, id); err != nil {
		t.Fatalf("DeleteAgendamento() error = %v", err)
	}
	list, err = db.ListAgendamentos(ctx)
	if err != nil {
		t.Fatalf("ListAgendamentos() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListAgendamentos() after delete = %+v, want empty", list)
	}
}
