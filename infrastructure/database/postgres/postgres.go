package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
)

// O armazenamento só guarda duas chaves, então o pool é pequeno
const (
	maxOpenConns    = 4
	maxIdleConns    = 2
	connMaxIdleTime = 5 * time.Minute
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Connection struct {
	*sql.DB
}

// driverName traduz o DATABASE_DRIVER para o nome registrado pelo lib/pq
func driverName(driver string) (string, error) {
	switch driver {
	case "", "postgres", "postgresql":
		return "postgres", nil
	default:
		return "", errors.Errorf("driver de banco não suportado: %s", driver)
	}
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	if cfg.DSN == "" {
		return nil, errors.New("DATABASE_URL não configurada")
	}

	driver, err := driverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "abrir conexão")
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping no banco")
	}

	return &Connection{DB: db}, nil
}
