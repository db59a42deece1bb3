package gorm

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options controls how the catalog database is opened.
type Options struct {
	// Path to the sqlite file, or ":memory:" for tests.
	Path string
	// ResetOnStart drops all catalog tables before migrating, restoring the
	// wipe-and-reseed startup behavior.
	ResetOnStart bool
	// Debug enables SQL statement logging.
	Debug bool
}

// Open connects to the sqlite database and migrates the schema.
func Open(opts Options, log *zap.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if opts.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(sqlite.Open(opts.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", opts.Path, err)
	}

	if opts.ResetOnStart {
		log.Warn("resetting catalog database", zap.String("path", opts.Path))
		err := db.Migrator().DropTable(
			"recipe_tags",
			&IngredientModel{}, &StepModel{}, &TagModel{}, &RecipeModel{}, &UserModel{},
		)
		if err != nil {
			return nil, fmt.Errorf("reset database: %w", err)
		}
	}

	err = db.AutoMigrate(
		&UserModel{}, &TagModel{}, &RecipeModel{}, &IngredientModel{}, &StepModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	log.Info("catalog database ready", zap.String("path", opts.Path))
	return db, nil
}
