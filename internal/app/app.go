package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/fitplan-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/fitplan-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/fitplan-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/fitplan-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/fitplan-backend/internal/infrastructure/metrics"
	minioInfra "github.com/DRSN-tech/fitplan-backend/internal/infrastructure/minio"
	ml_model "github.com/DRSN-tech/fitplan-backend/internal/infrastructure/ml-model"
	"github.com/DRSN-tech/fitplan-backend/internal/infrastructure/planner"
	s3Repo "github.com/DRSN-tech/fitplan-backend/internal/repository/minio"
	"github.com/DRSN-tech/fitplan-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/fitplan-backend/internal/repository/pgdb/converter"
	qdrantRepo "github.com/DRSN-tech/fitplan-backend/internal/repository/qdrant"
	"github.com/DRSN-tech/fitplan-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/fitplan-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/clients"
	"github.com/DRSN-tech/fitplan-backend/pkg/closer"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/DRSN-tech/fitplan-backend/pkg/postgres"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout        = 10 * time.Second
	ensureTopicTimeout = 10 * time.Second
)

// App собирает зависимости сервиса и управляет его жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
}

// NewApp подключает хранилища, загружает модель и каталог, собирает usecase и серверы.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (_ *App, err error) {
	app := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(cfg.Shutdown.ForcedTimeout),
	}
	defer func() {
		if err != nil {
			_ = app.closer.Close(context.Background())
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	src, keys, err := app.artifactSource(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := ml_model.Load(ctx, src, keys.modelData, keys.clusterInfo)
	if err != nil {
		log.Errorf(err, "failed to load cluster model")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	log.Infof("cluster model loaded: %d clusters, %d features", model.NClusters(), len(model.FeatureNames()))

	catalog, err := planner.LoadCatalog(ctx, src, keys.workouts)
	if err != nil {
		log.Errorf(err, "failed to load workout catalog")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	log.Infof("workout catalog loaded: %d exercises", catalog.Len())

	db, err := initPGDB(ctx, log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	app.closer.AddFunc("postgres", db.Close)

	trManager := manager.Must(trmpgx.NewDefaultFactory(db.Pool))
	planRepo := pgdb.NewPlanRepo(db.Pool, pgdbConv.PlanConverter{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverter{})

	redisClient := clients.NewRedisClient(cfg.Redis)
	app.closer.AddNamed("redis", func(context.Context) error { return redisClient.Client.Close() })
	if err := redisClient.Ping(ctx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.PlanConverter{}, cfg.Redis, log)

	profileRepo, err := app.initProfiles(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	producer := kafka.NewProducer(log, cfg.Kafka)
	app.closer.AddNamed("kafka producer", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		log.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
	}

	prom := metrics.NewPrometheus()

	planUC := usecase.NewPlanUC(
		planRepo,
		outboxRepo,
		cacheRepo,
		profileRepo,
		trManager,
		model,
		planner.NewWorkoutGenerator(catalog, rand.New(rand.NewSource(time.Now().UnixNano()))),
		planner.NewNutritionGenerator(),
		producer,
		prom,
		log,
	)
	clusterUC := usecase.NewClusterUC(model, prom, log)

	app.worker = kafka.NewOutboxWorker(outboxRepo, log, producer, prom, cfg.Outbox, cfg.Db.DSN())

	app.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	app.grpcSrv.RegisterServices(clusterUC)

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(planUC, clusterUC, prom.Handler(), cfg.Http.SwaggerURL)
	app.httpSrv = v1Http.NewServer(r, cfg.Http)

	return app, nil
}

// Run запускает серверы и воркер и блокируется до сигнала или фатальной ошибки.
func (a *App) Run() error {
	workerCtx, stopWorker := context.WithCancel(context.Background())
	if err := a.worker.Start(workerCtx); err != nil {
		stopWorker()
		a.logger.Errorf(err, "failed to start outbox worker")
		return err
	}
	a.closer.AddNamed("outbox worker", func(context.Context) error {
		stopWorker()
		a.worker.Stop()
		return nil
	})

	errCh := make(chan error, 2)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()
	a.closer.AddNamed("grpc server", a.grpcSrv.Stop)

	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()
	a.closer.AddNamed("http server", a.httpSrv.Stop)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Shutdown.Timeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		appErr = errors.Join(appErr, err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

type artifactKeys struct {
	modelData   string
	clusterInfo string
	workouts    string
}

// artifactSource выбирает источник документов модели и каталога по MODEL_SOURCE.
func (a *App) artifactSource(ctx context.Context) (usecase.ArtifactSource, artifactKeys, error) {
	m := a.cfg.Model
	if m.Source != config.ModelSourceMinio {
		return ml_model.NewFileSource(""), artifactKeys{
			modelData:   m.ModelDataPath,
			clusterInfo: m.ClusterInfoPath,
			workouts:    m.WorkoutsPath,
		}, nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, artifactKeys{}, err
	}
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, artifactKeys{}, err
	}

	repo := s3Repo.NewArtifactRepo(minioClient, a.cfg.Minio)
	return minioInfra.NewArtifactSource(repo, m.FetchRetries, a.logger), artifactKeys{
		modelData:   m.ModelDataKey,
		clusterInfo: m.ClusterInfoKey,
		workouts:    m.WorkoutsKey,
	}, nil
}

// initProfiles подключает Qdrant. Без QDRANT_HOST поиск похожих профилей выключен
// и возвращается nil-интерфейс.
func (a *App) initProfiles(ctx context.Context) (usecase.ProfileRepository, error) {
	if !a.cfg.Qdrant.Enabled {
		a.logger.Infof("qdrant is not configured, similar profiles are disabled")
		return nil, nil
	}

	qdrantClient, err := clients.NewQdrantClient(a.cfg.Qdrant)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize qdrant")
		return nil, err
	}
	a.closer.AddNamed("qdrant", func(context.Context) error { return qdrantClient.Client.Close() })

	if err := clients.EnsureCollection(ctx, qdrantClient); err != nil {
		a.logger.Errorf(err, "failed to initialize qdrant collection")
		return nil, err
	}

	return qdrantRepo.NewProfileRepo(qdrantClient.Client, a.cfg.Qdrant), nil
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		db.Close()
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
