package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ErrNotFound indica que o documento pedido não existe na coleção.
var ErrNotFound = errors.New("documento não encontrado")

type DB struct {
	client     *firestore.Client
	collection string
}

// NewDB inicializa o app Firebase com a conta de serviço e abre o cliente Firestore
func NewDB(ctx context.Context, credentialsPath, projectID, collection string) (*DB, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	log.Printf("✅ Firestore conectado (coleção: %s)", collection)
	return New(client, collection), nil
}

// New envolve um cliente Firestore já criado (usado com o emulador nos testes)
func New(client *firestore.Client, collection string) *DB {
	return &DB{client: client, collection: collection}
}

func (db *DB) Close() error {
	return db.client.Close()
}

func (db *DB) Collection() string {
	return db.collection
}

// Ping lê no máximo um documento para verificar se o Firestore responde
func (db *DB) Ping(ctx context.Context) error {
	iter := db.client.Collection(db.collection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

func (db *DB) col() *firestore.CollectionRef {
	return db.client.Collection(db.collection)
}
