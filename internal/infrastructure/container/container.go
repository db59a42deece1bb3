// Package container wires the application together with Uber FX.
package container

import (
	"context"

	"github.com/savorly/savorly/internal/application/auth"
	"github.com/savorly/savorly/internal/application/catalog"
	"github.com/savorly/savorly/internal/application/favorites"
	"github.com/savorly/savorly/internal/application/notebook"
	"github.com/savorly/savorly/internal/application/prefs"
	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/infrastructure/config"
	gormRepo "github.com/savorly/savorly/internal/infrastructure/persistence/gorm"
	"github.com/savorly/savorly/internal/infrastructure/snapshot"
	"github.com/savorly/savorly/internal/ports/outbound"
	"github.com/savorly/savorly/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides every dependency the application needs.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	SnapshotModule,
	RepositoryModule,
	ServiceModule,
	LifecycleModule,
)

// ConfigModule provides configuration.
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging.
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.IsDevelopment(),
			FilePath:    cfg.App.LogFile,
		})
	},
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the SQLite connection.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := gormRepo.Open(gormRepo.Options{
			Path:         cfg.Database.Path,
			ResetOnStart: cfg.Database.ResetOnStart,
			Debug:        cfg.Database.Debug,
		}, log)
		if err != nil {
			return nil, err
		}
		log.Info("connected to catalog database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("reset_on_start", cfg.Database.ResetOnStart),
		)
		return db, nil
	},
)

// SnapshotModule provides the JSON snapshot store for user preferences and
// saved accounts.
var SnapshotModule = fx.Provide(
	func(cfg *config.Config) (*snapshot.FileStore, error) {
		return snapshot.NewFileStore(cfg.Snapshot.Dir)
	},
	func(store *snapshot.FileStore) outbound.SnapshotStore { return store },
	func(store *snapshot.FileStore) outbound.AccountsStore { return store },
)

// RepositoryModule provides repository implementations.
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewUserRepository,
)

// ServiceModule provides application services.
var ServiceModule = fx.Provide(
	session.New,

	func(
		users outbound.UserRepository,
		store outbound.SnapshotStore,
		sess *session.Session,
		cfg *config.Config,
		log *zap.Logger,
	) *prefs.Service {
		return prefs.NewService(users, store, sess, cfg.Snapshot.Precedence, log)
	},

	auth.NewService,
	favorites.NewService,
	catalog.NewService,
	notebook.NewService,
)

// LifecycleModule registers startup and shutdown hooks.
var LifecycleModule = fx.Invoke(RegisterLifecycleHooks)

// RegisterLifecycleHooks seeds the catalog on first start and closes the
// database on shutdown.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	catalogSvc *catalog.Service,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting savorly",
				zap.String("environment", cfg.App.Environment),
			)

			if cfg.Database.Seed {
				if err := gormRepo.Seed(db, log); err != nil {
					return err
				}
			}

			total, food, drink, err := catalogSvc.Counts(ctx)
			if err != nil {
				return err
			}
			log.Info("catalog ready",
				zap.Int64("recipes", total),
				zap.Int64("food", food),
				zap.Int64("drinks", drink),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down savorly")

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
