package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"recicleme/config"
	"recicleme/internal/pkg/cache"
	"recicleme/internal/pkg/database"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/storage"
	"recicleme/internal/pkg/token"
	"recicleme/internal/tasks"

	// Camadas para Injeção de Dependências
	"recicleme/internal/api/admin"
	"recicleme/internal/api/chat"
	"recicleme/internal/api/coleta"
	"recicleme/internal/api/feature"
	"recicleme/internal/api/profile"
	"recicleme/internal/api/router"
	"recicleme/internal/api/user"
	"recicleme/internal/repository/coletarepo"
	"recicleme/internal/repository/profilerepo"
	"recicleme/internal/repository/settingsrepo"
	"recicleme/internal/repository/statsrepo"
	"recicleme/internal/repository/userrepo"
	"recicleme/internal/service/adminservice"
	"recicleme/internal/service/chatservice"
	"recicleme/internal/service/coletaservice"
	"recicleme/internal/service/profileservice"
	"recicleme/internal/service/settingsservice"
	"recicleme/internal/service/userservice"
)

// @title Recicle.me API
// @version 1.0
// @description API de coletas de recicláveis, pontos e administração da plataforma.
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 0. Variáveis de ambiente (.env é opcional; em Docker tudo vem do ambiente)
	log.Println("⚡ Inicializando serviço Recicle.me...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 1. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis o serviço segue sem cache e sem rate limiting.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Warn("Redis indisponível; cache e rate limiting desativados.", map[string]interface{}{"error": err.Error()})
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": redisClient.Addr()})
	}

	// C. Fila de notificações (asynq)
	var notifier coletaservice.Notifier
	if redisClient != nil {
		queueClient := tasks.NewClient(cfg.RedisAddr)
		defer queueClient.Close()
		notifier = tasks.NewNotifier(queueClient, cfg.WorkerQueue, log)
	}

	// D. Armazenamento de fotos (S3), opcional
	var photoStorage coletaservice.PhotoStorage
	if cfg.StorageEnabled() {
		s3Storage, err := storage.NewS3Storage(context.Background(), cfg)
		if err != nil {
			log.Fatal("Falha ao configurar o armazenamento S3.", err)
		}
		photoStorage = s3Storage
		log.Info("Armazenamento de fotos habilitado.", map[string]interface{}{"bucket": cfg.AwsS3Bucket})
	}

	// 2. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// A. Repositórios
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	profileRepo := profilerepo.NewProfileRepository(db, cfg.DBTimeout, log)
	coletaRepo := coletarepo.NewColetaRepository(db, cfg.DBTimeout, log)
	settingsRepo := settingsrepo.NewSettingsRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTimeout, log)
	statsRepo := statsrepo.NewStatsRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	// B. Serviços
	settingsSvc := settingsservice.NewService(settingsRepo, log)
	userSvc := userservice.NewService(userRepo, profileRepo, tokenSvc, log)
	profileSvc := profileservice.NewService(profileRepo, userRepo, coletaRepo, log)
	coletaSvc := coletaservice.NewService(coletaRepo, settingsSvc, notifier, photoStorage, log)
	adminSvc := adminservice.NewService(userRepo, settingsSvc, statsRepo, log)
	chatSvc := chatservice.NewService()
	log.Debug("Serviços inicializados.", nil)

	// C. Handlers
	handlers := router.Handlers{
		User:    user.NewHandler(userSvc, log),
		Coleta:  coleta.NewHandler(coletaSvc, log),
		Profile: profile.NewHandler(profileSvc, log),
		Chat:    chat.NewHandler(chatSvc, log),
		Feature: feature.NewHandler(settingsSvc, log),
		Admin:   admin.NewHandler(adminSvc, log),
	}

	// 3. Roteador e Servidor
	r := router.NewRouter(handlers, tokenSvc, cacheClient, router.Options{
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimitMax:      cfg.RateLimitMaxRequests,
		RateLimitPeriod:   cfg.RateLimitPeriod,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor Recicle.me ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
