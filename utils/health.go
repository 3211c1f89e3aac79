package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus names the external services this system depends on: the Mongo
// store behind studios and bookings, and the Redis cache holding draft
// sessions and the notification queue.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	SessionCache bool      `json:"sessionCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(sessionCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			snapshot := HealthStatus{
				Mongo:        mongoClient.Ping(ctx, nil) == nil,
				SessionCache: sessionCache.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}

			mu.Lock()
			currentHealth = snapshot
			mu.Unlock()
		}
	}()
}
