package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"recicleme/config"
	"recicleme/internal/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: .env não encontrado ou erro de leitura. Usando apenas o ambiente do sistema: %v", err)
	}

	cfg := config.LoadConfig()

	var migrationsDir string
	var verbose bool
	flag.StringVar(&migrationsDir, "dir", "./sql", "diretório com os arquivos de migração")
	flag.BoolVar(&verbose, "v", false, "exibe o log do goose")
	flag.Parse()

	// Migrações rodam em uma única conexão.
	db, err := database.NewPostgresDBWithPool(cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 10 * time.Minute,
	})
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	if !verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
