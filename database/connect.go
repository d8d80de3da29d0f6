package database

import (
	"context"
	"log"
	"time"

	"cinema_storefront/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// Store là mặt KV mà tầng nghiệp vụ dùng; test thay bằng MemKV
var Store KV

// ConnectRedis mở kết nối tới kho lưu trữ cục bộ của storefront.
// Mọi state bền (session, ví, lịch sử vé, pending payment) nằm ở đây.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
		DB:       config.ConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		panic("failed to connect redis: " + err.Error())
	}
	Store = NewRedisKV(Redis)
	log.Println("Connection opened to Redis")
}
