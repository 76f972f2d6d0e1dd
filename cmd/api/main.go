package main

import (
	"context"
	"net/http"
	"os"
	"time"

	_ "delivery-zone-api/docs"
	"delivery-zone-api/internal/cache"
	"delivery-zone-api/internal/config"
	"delivery-zone-api/internal/gazetteer"
	"delivery-zone-api/internal/handler"
	"delivery-zone-api/internal/locate"
	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/observability"
	"delivery-zone-api/internal/repository"
	"delivery-zone-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Delivery Zone API
//	@version		1.0
//	@description	Delivery-zone checks for the pizza storefront: polygon containment, distance to the restaurant and delivery windows.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)

	evaluator, err := config.Evaluator()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid delivery zone configuration")
	}

	ctx := context.Background()
	districts := config.Districts

	// Database connection
	var checks service.ZoneCheckRepository
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare db schema")
		}
		checks = repo
		districts = loadDistricts(ctx, repo, districts)
	} else {
		log.Warn().Msg("DB_SOURCE not set, zone checks will not be recorded")
	}

	// Redis connection
	var addressCache locate.AddressCache
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr, DB: config.RedisDB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("cannot connect to redis")
		}
		addressCache = cache.NewAddressCache(rdb, config.AddressCacheTTL)
	}

	index, err := gazetteer.NewIndex(districts)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid district list")
	}

	sources := []locate.Source{
		locate.DeviceSource{},
		locate.NewAddressSource(index, addressCache),
	}
	if config.IPLookupURL != "" {
		sources = append(sources, locate.NewIPSource(&http.Client{}, config.IPLookupURL, config.IPLookupTimeout))
	}

	metrics, err := observability.NewZoneCollector(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot register metrics")
	}

	// Initialize layers
	zoneService := service.NewZoneService(evaluator, checks, locate.NewChain(sources...), index, metrics)
	zoneHandler := handler.NewZoneHandler(zoneService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	handler.RegisterRoutes(r, zoneHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().
		Str("address", config.ServerAddress).
		Int("districts", index.Len()).
		Int("location_sources", len(sources)).
		Msg("starting delivery zone api")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func loadDistricts(ctx context.Context, repo *repository.Repository, fallback []models.District) []models.District {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stored, err := repo.ListDistricts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cannot load districts from db, using configured districts")
		return fallback
	}
	if len(stored) == 0 {
		return fallback
	}
	return stored
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
