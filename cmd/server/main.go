// @title           Admin Demo Backend
// @version         1.0
// @description     In-memory admin console store with a fixture auth backend.
// @BasePath        /
// @securityDefinitions.apikey FixtureToken
// @in              header
// @name            authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/admin-scaffold/demo-backend/internal/api"
	"github.com/admin-scaffold/demo-backend/internal/api/metrics"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
	"github.com/admin-scaffold/demo-backend/internal/core/service"
	"github.com/admin-scaffold/demo-backend/internal/infrastructure/config"
	"github.com/admin-scaffold/demo-backend/internal/infrastructure/db/memory"
	mongodb "github.com/admin-scaffold/demo-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/admin-scaffold/demo-backend/internal/infrastructure/db/redis"
	"github.com/admin-scaffold/demo-backend/internal/infrastructure/queue"
	"github.com/admin-scaffold/demo-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "admin-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "admin-demo",
	})
	log.Info().Str("env", cfg.Env).Str("preferences", cfg.PreferencesBackend).Msg("starting")

	var db *mongo.Database
	if cfg.NeedsMongo() {
		db, err = mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := mongodb.Disconnect(db, shutdownTimeout); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}()
		log.Info().Str("db", cfg.Mongo.Database).Msg("mongo connected")
	}

	var rdb *goredis.Client
	if cfg.NeedsRedis() {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	var changeRepo ports.ChangeRepository
	switch cfg.Changes.Sink {
	case config.ChangeLogMongo:
		repo := mongodb.NewChangeRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("could not create store_changes indexes")
		}
		changeRepo = repo
	case config.ChangeLogAMQP:
		pub, err := queue.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			return err
		}
		defer func() {
			if err := pub.Close(); err != nil {
				log.Warn().Err(err).Msg("amqp close")
			}
		}()
		log.Info().Str("queue", cfg.AMQP.Queue).Msg("amqp connected")
		changeRepo = pub
	}

	dispatcher := queue.NewDispatcher(cfg.Changes.Workers, service.NewChangeService(changeRepo, log), log)
	dispatcher.Start(ctx)

	storeOpts := []service.StoreOption{service.WithFetchLatency(cfg.Store.FetchLatency)}
	if !cfg.Store.Seed {
		storeOpts = append(storeOpts, service.WithoutSeed())
	}
	store := service.NewDomainStore(log, storeOpts...)
	store.Subscribe(metrics.RecordChange)
	store.Subscribe(dispatcher.Observe())

	app := service.NewAppStore(preferenceStore(cfg, db, rdb), log)
	log.Info().Str("theme", string(app.InitTheme(ctx))).Msg("theme restored")

	e := api.NewRouter(api.Dependencies{
		Store:   store,
		MockAPI: service.NewMockAPIService(cfg.Mock.Latency, log),
		App:     app,
		Counter: service.NewCounterStore(),
		Mongo:   db,
		Redis:   rdb,

		LoginRate:  cfg.RateLimit.LoginPerSecond,
		LoginBurst: cfg.RateLimit.LoginBurst,
	}, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// preferenceStore picks the theme persistence backend. A nil store disables
// persistence.
func preferenceStore(cfg *config.Config, db *mongo.Database, rdb *goredis.Client) ports.PreferenceStore {
	switch cfg.PreferencesBackend {
	case config.PreferencesRedis:
		return redisdb.NewPreferenceStore(rdb)
	case config.PreferencesMongo:
		return mongodb.NewPreferenceRepository(db)
	case config.PreferencesMemory:
		return memory.NewPreferenceStore()
	}
	return nil
}
