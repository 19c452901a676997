package tasks

import (
	"encoding/json"
	"sync"
	"time"

	"akanuke/config"
	"akanuke/utils"

	"github.com/hibiken/asynq"
)

const TypeGuestSweep = "guest:sweep"

// guestSweepDelay is how long a guest's data outlives the session before
// the sweep reclaims it.
const guestSweepDelay = 24 * time.Hour

// GuestSweepPayload names the owner whose leftover data should be
// reclaimed.
type GuestSweepPayload struct {
	Owner string `json:"owner"`
}

// NewGuestSweepTask builds the delayed sweep task for one guest.
func NewGuestSweepTask(owner string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(GuestSweepPayload{Owner: owner})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeGuestSweep, b)
	opts := []asynq.Option{asynq.ProcessIn(guestSweepDelay)}

	return task, opts, nil
}

var (
	sweepClient     *asynq.Client
	sweepClientOnce sync.Once
)

func getSweepClient() *asynq.Client {
	sweepClientOnce.Do(func() {
		sweepClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSweepDB,
		})
	})
	return sweepClient
}

// EnqueueGuestSweep schedules the delayed reclaim of a guest's data.
// Failures are logged and swallowed: a missed sweep leaves stale rows,
// never a broken logout.
func EnqueueGuestSweep(owner string) {
	logger := utils.GetLogger().Sugar()

	task, opts, err := NewGuestSweepTask(owner)
	if err != nil {
		logger.Errorf("Failed to build guest sweep task for %s: %v", owner, err)
		return
	}
	if _, err := getSweepClient().Enqueue(task, opts...); err != nil {
		logger.Errorf("Failed to enqueue guest sweep for %s: %v", owner, err)
	}
}
