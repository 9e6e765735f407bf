package server

import (
	"context"
	"log"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/redis/go-redis/v9"

	"github.com/amaranand360/enterprise-search/internal/demo"
	"github.com/amaranand360/enterprise-search/internal/index"
)

// Reindexer periodically rebuilds the demo corpus so the index keeps
// fresh timestamps. Each rebuild uses a new seed generation so repeated
// refreshes produce new documents.
type Reindexer struct {
	Engine   *index.Engine
	Rdb      *redis.Client
	CronSpec string
	Seed     int64
	Size     int
	Stop     chan struct{}

	lastRun    *time.Time
	generation int64
}

func (r *Reindexer) Start() {
	ticker := time.NewTicker(1 * time.Minute)
	go func() {
		for {
			select {
			case <-r.Stop:
				ticker.Stop()
				return
			case <-ticker.C:
				r.tick()
			}
		}
	}()
}

func (r *Reindexer) tick() {
	if !isDue(r.CronSpec, r.lastRun) {
		return
	}
	ctx := context.Background()

	// distributed lock to avoid duplicate rebuilds across replicas
	if r.Rdb != nil {
		ok, _ := r.Rdb.SetNX(ctx, "sched:lock:reindex", "1", 2*time.Minute).Result()
		if !ok {
			return
		}
		defer r.Rdb.Del(ctx, "sched:lock:reindex")
	}

	r.generation++
	docs := demo.Corpus(r.Seed+r.generation, r.Size)
	if err := r.Engine.Rebuild(docs); err != nil {
		log.Printf("[SCHED] rebuild failed: %v", err)
		return
	}
	now := time.Now()
	r.lastRun = &now
	log.Printf("[SCHED] index rebuilt: %d documents", r.Engine.Size())
}

// isDue determines whether a job with cronSpec should run now given the
// last run time. Supports "@daily", "@hourly", and standard 5-field cron
// expressions.
func isDue(cronSpec string, last *time.Time) bool {
	now := time.Now()
	switch cronSpec {
	case "@daily":
		if last == nil {
			return true
		}
		return now.Sub(*last) >= 24*time.Hour
	case "@hourly":
		if last == nil {
			return true
		}
		return now.Sub(*last) >= time.Hour
	default:
		expr, err := cronexpr.Parse(cronSpec)
		if err != nil {
			// invalid spec falls back to daily
			if last == nil {
				return true
			}
			return now.Sub(*last) >= 24*time.Hour
		}
		if last == nil {
			return true
		}
		next := expr.Next(*last)
		return !next.After(now)
	}
}
