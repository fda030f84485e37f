// Package storage guarda os backups automáticos em um armazenamento chave-valor
package storage

import (
	"context"
	"errors"
)

// Chaves usadas pelo backup automático
const (
	AutoBackupKey     = "arizon-auto-backup"
	LastBackupDateKey = "last-backup-date"
)

var ErrNotFound = errors.New("key not found")

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
