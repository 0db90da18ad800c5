package main

import (
	"log"

	"github.com/joho/godotenv"

	"recicleme/config"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/tasks"
)

// O worker consome a fila de notificações de coletas concluídas.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)

	processor := tasks.NewTaskProcessor(log)
	srv := tasks.NewServer(cfg.RedisAddr, cfg.WorkerQueue, cfg.WorkerThreads, log)

	log.Info("Worker Recicle.me iniciado.", map[string]interface{}{
		"queue":       cfg.WorkerQueue,
		"concurrency": cfg.WorkerThreads,
	})

	// Run bloqueia até SIGINT/SIGTERM e faz o shutdown das tarefas em andamento.
	if err := srv.Run(tasks.NewServeMux(processor)); err != nil {
		log.Fatal("Worker encerrado com erro.", err)
	}
}
