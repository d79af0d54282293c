package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/felstore-tech/analytics-backend/internal/cfg"
	appKafka "github.com/felstore-tech/analytics-backend/internal/infrastructure/kafka"
	minioRepo "github.com/felstore-tech/analytics-backend/internal/repository/minio"
	"github.com/felstore-tech/analytics-backend/internal/repository/pgdb"
	pgdbConv "github.com/felstore-tech/analytics-backend/internal/repository/pgdb/converter/generated"
	redisRepo "github.com/felstore-tech/analytics-backend/internal/repository/redis"
	"github.com/felstore-tech/analytics-backend/internal/usecase"
	"github.com/felstore-tech/analytics-backend/pkg/clients"
	"github.com/felstore-tech/analytics-backend/pkg/closer"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/felstore-tech/analytics-backend/pkg/jitter"
	"github.com/felstore-tech/analytics-backend/pkg/logger"
	"github.com/felstore-tech/analytics-backend/pkg/postgres"
	"github.com/jimlawless/whereami"
)

const (
	ensureTopicTimeout = 10 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// App собирает зависимости и управляет жизненным циклом приложения:
// первый прогон каталога запросов сразу после старта, дальше по расписанию.
type App struct {
	cfg         *config.Config
	logger      logger.Logger
	analyticsUC usecase.AnalyticsUC
	closer      *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	customerConv := pgdbConv.NewCustomerConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()

	customerRepo := pgdb.NewCustomerRepo(db.Pool, customerConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	archiveRepo := minioRepo.NewReportRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redisRepo.NewCacheRepo(redisClient, cfg.Redis, log)

	producer, err := appKafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	analyticsUC := usecase.NewAnalyticsUC(
		customerRepo,
		productRepo,
		orderRepo,
		cacheRepo,
		archiveRepo,
		producer,
		log,
	)

	return &App{
		cfg:         cfg,
		logger:      log,
		analyticsUC: analyticsUC,
		closer:      cl,
	}, nil
}

// Run выполняет первый прогон отчёта и дальше работает по расписанию до сигнала остановки.
// Первый прогон фатален: без загруженного снапшота приложению нечего делать.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	if _, err := a.analyticsUC.RunReport(ctx); err != nil {
		a.logger.Errorf(err, "initial report run failed")
		a.close()
		return err
	}

	// Джиттер разносит прогоны соседних реплик во времени
	timer := time.NewTimer(jitter.Duration(a.cfg.Report.Interval, jitter.DefaultJitter))
	defer timer.Stop()

	for {
		select {
		case <-shutdown:
			a.logger.Infof("Received shutdown signal, stopping gracefully...")
			a.close()
			a.logger.Infof("Application shutdown complete")
			return nil
		case <-timer.C:
			if _, err := a.analyticsUC.RunReport(ctx); err != nil {
				a.logger.Errorf(err, "scheduled report run failed")
			}

			timer.Reset(jitter.Duration(a.cfg.Report.Interval, jitter.DefaultJitter))
		}
	}
}

// close освобождает ресурсы в порядке LIFO.
func (a *App) close() {
	closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer closeCancel()

	if err := a.closer.Close(closeCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
