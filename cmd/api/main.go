package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-dashboard/internal/db"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/barber-dashboard/internal/media"
	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/routes"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
	"github.com/BruksfildServices01/barber-dashboard/internal/storage"
	ucBooking "github.com/BruksfildServices01/barber-dashboard/internal/usecase/booking"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		client, err := storage.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		rdb = client
	} else {
		log.Println("REDIS_URL not set: booking cache off, sign-outs kept in memory")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("barber_dashboard", reg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// REPOSITORIES
	// ======================================================
	accounts := infraRepo.NewAccountGormRepository(db)

	var bookings domain.Repository = infraRepo.NewBookingGormRepository(db)
	var revocations session.RevocationStore = session.NewMemoryStore()
	if rdb != nil {
		bookings = infraRepo.NewCachedBookingRepository(bookings, rdb, cfg.BookingCacheTTL())
		revocations = session.NewRedisStore(rdb)
	}

	var images handlers.ImageUploader
	if cfg.ImagesEnabled() {
		images = media.NewUploader(media.NewS3Store(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}))
	} else {
		log.Println("S3_BUCKET not set: service image uploads disabled")
	}

	// ======================================================
	// SESSIONS
	// ======================================================
	sessions := session.NewManager(cfg.JWTSecret, cfg.SessionTTL(), revocations)
	registry := ucBooking.NewRegistry(ucBooking.NewFactory(bookings, accounts, auditDispatcher, m))

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst)
	go sweep(ctx, loginLimiter, registry)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		Accounts:     accounts,
		Barbers:      infraRepo.NewBarberGormRepository(db),
		Services:     infraRepo.NewServiceGormRepository(db),
		Bookings:     bookings,
		Sessions:     sessions,
		Registry:     registry,
		Audit:        auditDispatcher,
		AuditLogs:    auditLogger,
		Images:       images,
		Metrics:      m,
		Gatherer:     reg,
		MetricsPath:  cfg.MetricsPath,
		LoginLimiter: loginLimiter,
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	auditDispatcher.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
	dbpkg.Close(db)
}

// sweep drops idle rate-limit buckets and expired sessions' booking state.
func sweep(ctx context.Context, rl *middleware.RateLimiter, registry *ucBooking.Registry) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rl.Sweep(3 * time.Minute)
			registry.Sweep()
		}
	}
}
