package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato de interface para qualquer serviço de cache que o Repositório possa usar.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	GetInt(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
}

// ErrCacheMiss é retornado quando a chave não é encontrada no cache.
var ErrCacheMiss = redis.Nil

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient cria o cliente e testa a conexão com PING.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("falha ao conectar ao Redis em %s: %w", addr, err)
	}

	return &RedisClient{rdb: rdb}, nil
}

// Addr devolve o endereço configurado (usado para montar o cliente da fila).
func (c *RedisClient) Addr() string {
	return c.rdb.Options().Addr
}

// Close encerra o pool de conexões.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// Get recupera o valor associado a uma chave.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// GetInt recupera um contador numérico.
func (c *RedisClient) GetInt(ctx context.Context, key string) (int, error) {
	val, err := c.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("valor não numérico na chave %s: %w", key, err)
	}
	return n, nil
}

// Set define um valor para uma chave com um tempo de expiração.
func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Incr incrementa um contador preservando o TTL existente.
func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

// Delete remove uma chave do cache.
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}
