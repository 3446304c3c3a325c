package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	"github.com/jackpyp/massage-shop-web/internal/config"
	"github.com/jackpyp/massage-shop-web/internal/handlers"
	"github.com/jackpyp/massage-shop-web/internal/infra/restapi"
	"github.com/jackpyp/massage-shop-web/internal/media"
	"github.com/jackpyp/massage-shop-web/internal/routes"
	"github.com/jackpyp/massage-shop-web/internal/session"
	"github.com/jackpyp/massage-shop-web/internal/web"
)

func main() {

	cfg := config.Load()

	api := restapi.NewClient(cfg)

	store, sink := buildStores(cfg)
	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL, true)
	auditor := audit.NewDispatcher(sink)

	var uploader handlers.PictureUploader
	if cfg.MediaEnabled() {
		uploader = media.NewUploader(cfg)
	}

	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, api, sessions, auditor, uploader)

	log.Printf("Server running on %s (API %s)", cfg.Addr(), cfg.APIBaseURL)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// buildStores connects redis for sessions and the audit trail. When redis
// is unreachable the app still serves, with in-process sessions and audit
// events going to the log.
func buildStores(cfg *config.Config) (session.TokenStore, audit.Sink) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable (%v), using in-memory sessions", err)
		return session.NewMemoryStore(), audit.LogSink{}
	}

	return session.NewRedisStore(rdb), audit.NewRedisSink(rdb)
}
