package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"akanuke/config"
	collectionRepo "akanuke/database/repository/collection"
	"akanuke/services/advisory"
	"akanuke/services/storage"
	"akanuke/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitSweepWorker runs the async worker in background.
func InitSweepWorker(store collectionRepo.Store, photos storage.PhotoStore, contexts advisory.ContextStore) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeGuestSweep, handleGuestSweepTask(store, photos, contexts))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleGuestSweepTask(store collectionRepo.Store, photos storage.PhotoStore, contexts advisory.ContextStore) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.GuestSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SweepHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[SweepHandler] 🧹 Reclaiming leftover data for %s", p.Owner)

		if err := store.RemoveOwner(ctx, p.Owner); err != nil {
			log.Printf("[SweepHandler] ❌ Failed to remove collections for %s: %v", p.Owner, err)
			return err
		}
		if err := contexts.Clear(ctx, p.Owner); err != nil {
			log.Printf("[SweepHandler] ❌ Failed to clear advisory context for %s: %v", p.Owner, err)
			return err
		}
		if err := photos.Delete(ctx, p.Owner); err != nil {
			// A missing photo is the common case; log and move on.
			log.Printf("[SweepHandler] ⚠️ Failed to delete retained photo for %s: %v", p.Owner, err)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SweepWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
