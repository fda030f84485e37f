// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage"
)

const (
	backupStoreTable = "dashboard_store"
)

// CreateBackupStoreTable cria a tabela chave-valor dos backups automáticos
const CreateBackupStoreTable = `
	CREATE TABLE IF NOT EXISTS dashboard_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

type backupStoreRepository struct {
	conn postgres.Queryer
}

// NewBackupStoreRepository guarda os backups automáticos em PostgreSQL
func NewBackupStoreRepository(conn postgres.Queryer) storage.KeyValueStore {
	return &backupStoreRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela de backups quando ela ainda não existe
func EnsureSchema(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.ExecContext(ctx, CreateBackupStoreTable); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", backupStoreTable, err)
	}
	return nil
}

func (r *backupStoreRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sqlQuery, args, err := squirrel.
		Select("value").
		From(backupStoreTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value []byte
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar a chave %s: %w", key, err)
	}

	return value, nil
}

func (r *backupStoreRepository) Set(ctx context.Context, key string, value []byte) error {
	query := squirrel.StatementBuilder.
		Insert(backupStoreTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar a chave %s: %w", key, err)
	}

	return nil
}

func (r *backupStoreRepository) Delete(ctx context.Context, key string) error {
	sqlQuery, args, err := squirrel.
		Delete(backupStoreTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao remover a chave %s: %w", key, err)
	}

	return nil
}
