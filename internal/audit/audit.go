package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Event records one back-office mutation: who did what to which record.
type Event struct {
	UserID   string    `json:"user_id"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}

// Sink is where events end up.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Write(ctx, ev); err != nil {
			log.Println("audit error:", err)
		}
		cancel()
	}
}

// Dispatch never blocks a request. A full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

// --------- Redis sink ---------

const (
	redisTrailKey = "audit:trail"
	trailMaxLen   = 10000
)

// RedisSink keeps a capped trail in a redis list, newest first.
type RedisSink struct {
	rdb *redis.Client
}

func NewRedisSink(rdb *redis.Client) *RedisSink {
	return &RedisSink{rdb: rdb}
}

func (s *RedisSink) Write(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if err := s.rdb.LPush(ctx, redisTrailKey, payload).Err(); err != nil {
		return err
	}
	return s.rdb.LTrim(ctx, redisTrailKey, 0, trailMaxLen-1).Err()
}

// --------- Log sink ---------

// LogSink is the fallback when redis is not configured.
type LogSink struct{}

func (LogSink) Write(_ context.Context, ev Event) error {
	log.Printf("audit: user=%s action=%s entity=%s id=%s", ev.UserID, ev.Action, ev.Entity, ev.EntityID)
	return nil
}
