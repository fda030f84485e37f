package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/vfg2006/arizon-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

// seedFromFile grava um backup exportado como backup automático inicial
func seedFromFile(ctx context.Context, db postgres.Queryer, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("ERRO ao ler o arquivo de backup %s: %v", path, err)
	}

	store := repository.NewBackupStoreRepository(db)
	if err := store.Set(ctx, storage.AutoBackupKey, data); err != nil {
		log.Fatalf("ERRO ao gravar o backup inicial: %v", err)
	}

	log.Printf("Backup inicial gravado a partir de %s (%d bytes)", path, len(data))
}

func main() {
	setupLogger()

	dsn := flag.String("dsn", os.Getenv("DATABASE_DSN"), "string de conexão do PostgreSQL")
	seed := flag.String("seed", "", "arquivo de backup exportado para gravar como backup automático")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("ERRO: informe -dsn ou DATABASE_DSN")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.NewConnection(ctx, config.Database{DSN: *dsn})
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer db.Close()

	startTime := time.Now()
	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ERRO ao criar o schema: %v", err)
	}
	log.Printf("Schema criado em %v", time.Since(startTime))

	if *seed != "" {
		seedFromFile(ctx, db, *seed)
	}

	log.Println("Migração concluída com sucesso")
}
