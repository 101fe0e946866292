package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/tala-app/backend/internal/adapter/postgres"
	"github.com/tala-app/backend/internal/adapter/postgres/dictionary"
	"github.com/tala-app/backend/internal/adapter/postgres/user"
	"github.com/tala-app/backend/internal/adapter/postgres/wordbook"
	"github.com/tala-app/backend/internal/auth"
	"github.com/tala-app/backend/internal/cache"
	"github.com/tala-app/backend/internal/config"
	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/http"
	"github.com/tala-app/backend/internal/http/middleware"
	"github.com/tala-app/backend/internal/lemma"
	"github.com/tala-app/backend/internal/observability"
	"github.com/tala-app/backend/internal/prompt"
	"github.com/tala-app/backend/internal/provider/gemini"
	"github.com/tala-app/backend/internal/provider/mistral"
	"github.com/tala-app/backend/internal/search"
	"github.com/tala-app/backend/internal/service"
)

// dbPools bundles the two connection pools: user data is mutable, the
// dictionary is read-only reference data.
type dbPools struct {
	Users      *pgxpool.Pool
	Dictionary *pgxpool.Pool
}

func newPools(cfg *config.DatabaseConfig) (*dbPools, error) {
	ctx := context.Background()

	users, err := postgres.NewPool(ctx, cfg.UserDSN, cfg.MaxConns)
	if err != nil {
		return nil, err
	}
	dict, err := postgres.NewPool(ctx, cfg.DictionaryDSN, cfg.MaxConns)
	if err != nil {
		users.Close()
		return nil, err
	}
	return &dbPools{Users: users, Dictionary: dict}, nil
}

// cacheBundle holds the two memoization caches, sized independently.
type cacheBundle struct {
	Dialogues *cache.TTL[service.CachedDialogue]
	Reports   *cache.TTL[domain.WordReport]
}

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		case sig := <-stop:
			observability.FromContext(context.Background()).Info("shutting down",
				observability.String("signal", sig.String()))

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				log.Fatalf("Shutdown failed: %v", err)
			}
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Databases
	if err := container.Provide(newPools); err != nil {
		log.Fatalf("Failed to provide database pools: %v", err)
	}

	// Repositories
	if err := container.Provide(func(p *dbPools) domain.UserStore {
		return user.New(p.Users)
	}); err != nil {
		log.Fatalf("Failed to provide user store: %v", err)
	}
	if err := container.Provide(func(p *dbPools) domain.WordbookStore {
		return wordbook.New(p.Users)
	}); err != nil {
		log.Fatalf("Failed to provide wordbook store: %v", err)
	}
	if err := container.Provide(func(p *dbPools) domain.DictionaryStore {
		return dictionary.New(p.Dictionary)
	}); err != nil {
		log.Fatalf("Failed to provide dictionary store: %v", err)
	}

	// Providers and dispatcher. Chain order is fixed: Mistral first,
	// Gemini as fallback. Unconfigured providers stay in the chain and
	// fail their own attempts.
	if err := container.Provide(func(cfg *mistral.Config) *mistral.Provider {
		return mistral.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide Mistral provider: %v", err)
	}
	if err := container.Provide(func(cfg *gemini.Config) *gemini.Provider {
		return gemini.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide Gemini provider: %v", err)
	}
	if err := container.Provide(func(primary *mistral.Provider, fallback *gemini.Provider) (*domain.Dispatcher, error) {
		return domain.NewDispatcher(primary, fallback)
	}); err != nil {
		log.Fatalf("Failed to provide dispatcher: %v", err)
	}

	// Prompts, caches, lemmatizer
	if err := container.Provide(prompt.NewManager); err != nil {
		log.Fatalf("Failed to provide prompt manager: %v", err)
	}
	if err := container.Provide(func(cfg *config.CacheConfig) *cacheBundle {
		ttl := time.Duration(cfg.TTL) * time.Second
		return &cacheBundle{
			Dialogues: service.NewDialogueCache(cfg.DialogueCapacity, ttl),
			Reports:   service.NewWordReportCache(cfg.ReportCapacity, ttl),
		}
	}); err != nil {
		log.Fatalf("Failed to provide caches: %v", err)
	}
	if err := container.Provide(func() domain.Lemmatizer {
		return lemma.NewService()
	}); err != nil {
		log.Fatalf("Failed to provide lemmatizer: %v", err)
	}

	// Auth
	if err := container.Provide(func(cfg *config.AuthConfig) *auth.JWTManager {
		return auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.AccessTokenTTL)*time.Minute)
	}); err != nil {
		log.Fatalf("Failed to provide JWT manager: %v", err)
	}

	// Services
	if err := container.Provide(func(d *domain.Dispatcher, pm *prompt.Manager, caches *cacheBundle) *service.DialogueService {
		return service.NewDialogueService(d, pm, caches.Dialogues)
	}); err != nil {
		log.Fatalf("Failed to provide dialogue service: %v", err)
	}
	if err := container.Provide(service.NewScenarioService); err != nil {
		log.Fatalf("Failed to provide scenario service: %v", err)
	}
	if err := container.Provide(service.NewReviewService); err != nil {
		log.Fatalf("Failed to provide review service: %v", err)
	}
	if err := container.Provide(service.NewTranslationService); err != nil {
		log.Fatalf("Failed to provide translation service: %v", err)
	}
	if err := container.Provide(func(d *domain.Dispatcher, pm *prompt.Manager, caches *cacheBundle) *service.WordReportService {
		return service.NewWordReportService(d, pm, caches.Reports)
	}); err != nil {
		log.Fatalf("Failed to provide word report service: %v", err)
	}
	if err := container.Provide(service.NewUserService); err != nil {
		log.Fatalf("Failed to provide user service: %v", err)
	}
	if err := container.Provide(service.NewWordbookService); err != nil {
		log.Fatalf("Failed to provide wordbook service: %v", err)
	}
	if err := container.Provide(search.NewService); err != nil {
		log.Fatalf("Failed to provide search service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(corsCfg *config.CORSConfig, rateCfg *config.RateLimitConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(corsCfg, rateCfg)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
