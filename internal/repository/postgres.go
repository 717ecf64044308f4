package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pocketangadi/storefront/internal/domain"
)

// PostgresStore keeps the catalog blob in a key-value table, one row per
// namespace/key pair. It is the swappable backend for deployments that want
// the catalog to survive the host.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the key-value table if it does not exist yet. There
// is no migration machinery beyond this; the stored format is unversioned.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS storefront_kv (
			namespace TEXT NOT NULL,
			key       TEXT NOT NULL,
			value     JSONB NOT NULL,
			PRIMARY KEY (namespace, key)
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return errors.Wrap(err, "ensure storefront_kv schema")
}

func (s *PostgresStore) Load(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT value
		FROM storefront_kv
		WHERE namespace = $1 AND key = $2
	`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, Namespace, ProductsKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load product store")
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "decode product store")
	}
	return products, nil
}

func (s *PostgresStore) Save(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "encode product store")
	}

	query := `
		INSERT INTO storefront_kv (namespace, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err = s.db.ExecContext(ctx, query, Namespace, ProductsKey, data)
	return errors.Wrap(err, "save product store")
}
