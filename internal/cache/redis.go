package cache

import (
	"context"
	"log"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/config"

	"github.com/redis/go-redis/v9"
)

// New construye el cliente Redis y verifica la conexión.
func New(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Println("[redis] conexión OK")
	return client, nil
}

// Allow implementa un contador de ventana fija para rate limiting:
// INCR + EXPIRE en la primera petición de la ventana. Devuelve false
// cuando la key superó el límite. Si Redis falla, dejamos pasar la
// petición y solo lo logueamos: el rate limit no debe tumbar lecturas.
func Allow(ctx context.Context, client *redis.Client, key string, limit int64, window time.Duration) bool {
	if client == nil {
		return true
	}

	n, err := client.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("[redis] rate limit INCR falló: %v", err)
		return true
	}
	if n == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			log.Printf("[redis] rate limit EXPIRE falló: %v", err)
		}
	}
	return n <= limit
}
