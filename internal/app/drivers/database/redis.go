package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"healthsync-service/internal/app/config"
)

const redisConnectTimeout = 5 * time.Second

// NewRedisClient connects to the session and cart store. Sessions and carts
// are the only state kept here, so a redis outage is fatal at startup.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to the session store: %v", err)
	}

	log.Println("Connected to redis")
	return client
}
