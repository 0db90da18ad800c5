package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do serviço Recicle.me.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache e fila (Redis)
	RedisAddr     string
	CacheTimeout  time.Duration
	WorkerQueue   string
	WorkerThreads int

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// CORS
	CORSAllowedOrigin string

	// Armazenamento de fotos (S3 compatível). Bucket vazio desabilita o upload.
	AwsRegion          string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsS3Bucket        string
	AwsS3Endpoint      string
	AwsS3PublicBaseURL string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados (PostgreSQL)
		// mustGetEnv garante que a aplicação não inicie se não houver credenciais de DB
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Cache e fila (Redis)
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTimeout:  getDurationEnv("CACHE_TIMEOUT_SEC", 60) * time.Second,
		WorkerQueue:   getEnv("WORKER_QUEUE", "default"),
		WorkerThreads: getIntEnv("WORKER_CONCURRENCY", 5),

		// 4. Segurança (JWT)
		JWTSecretKey: mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 6. CORS (mesmo default das funções originais)
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		// 7. Fotos das coletas
		AwsRegion:          getEnv("AWS_REGION", "us-east-1"),
		AwsAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AwsSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AwsS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AwsS3Endpoint:      getEnv("AWS_S3_ENDPOINT", ""),
		AwsS3PublicBaseURL: getEnv("AWS_S3_PUBLIC_BASE_URL", ""),
	}

	return cfg
}

// StorageEnabled indica se o upload de fotos foi configurado.
func (c *Config) StorageEnabled() bool {
	return c.AwsS3Bucket != ""
}

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
