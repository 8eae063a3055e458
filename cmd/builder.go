package cmd

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hagio-gakuto/user-directory/api"
	"github.com/hagio-gakuto/user-directory/api/health"
	apime "github.com/hagio-gakuto/user-directory/api/me"
	apisearchcondition "github.com/hagio-gakuto/user-directory/api/searchcondition"
	apiuser "github.com/hagio-gakuto/user-directory/api/user"
	meapp "github.com/hagio-gakuto/user-directory/application/me"
	conditionapp "github.com/hagio-gakuto/user-directory/application/searchcondition"
	userapp "github.com/hagio-gakuto/user-directory/application/user"
	"github.com/hagio-gakuto/user-directory/config"
	searchconditiondomain "github.com/hagio-gakuto/user-directory/domain/searchcondition"
	userdomain "github.com/hagio-gakuto/user-directory/domain/user"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/memory"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/mysql"
	"github.com/hagio-gakuto/user-directory/pkg/logger"
)

// AppBuilder wires config → logger → store → repositories → services →
// controllers → router into a runnable App.
type AppBuilder struct {
	cfg *config.Config
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// Build creates the App instance
func (b *AppBuilder) Build() *App {
	if err := logger.Init(b.cfg.Log.ToLoggerConfig(), b.cfg.App.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env),
		zap.String("database", b.cfg.Database.Type))

	db, userRepo, conditionRepo := b.initStore()

	userService := userapp.NewApplicationService(userRepo, b.cfg.Pagination.DefaultPageSize, b.cfg.Pagination.MaxPageSize)
	conditionService := conditionapp.NewApplicationService(conditionRepo)
	meService := meapp.NewApplicationService(userRepo)

	router := api.NewRouter(
		b.cfg,
		health.NewController(b.cfg, sqlDBOrNil(db)),
		apiuser.NewController(userService),
		apisearchcondition.NewController(conditionService),
		apime.NewController(meService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		db:     db,
	}
}

// initStore opens the configured backend. Anything other than "mysql"
// runs on the in-memory store; db stays nil in that case.
func (b *AppBuilder) initStore() (*gorm.DB, userdomain.Repository, searchconditiondomain.Repository) {
	if b.cfg.Database.Type != "mysql" {
		logger.Info("Using in-memory persistence layer")
		return nil, memory.NewUserRepository(), memory.NewSearchConditionRepository()
	}

	logger.Info("Using MySQL/GORM persistence layer")

	mysqlConfig := &mysql.Config{
		Host:            b.cfg.Database.Host,
		Port:            b.cfg.Database.Port,
		Username:        b.cfg.Database.Username,
		Password:        b.cfg.Database.Password,
		Database:        b.cfg.Database.Database,
		MaxOpenConns:    b.cfg.Database.MaxOpenConns,
		MaxIdleConns:    b.cfg.Database.MaxIdleConns,
		ConnMaxLifetime: b.cfg.Database.ConnMaxLifetime,
		LogLevel:        b.cfg.Log.Level,
	}

	db, err := mysqlConfig.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}

	if b.cfg.Database.AutoMigrate {
		if err := mysql.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	return db, mysql.NewUserRepository(db), mysql.NewSearchConditionRepository(db)
}

func sqlDBOrNil(db *gorm.DB) *sql.DB {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil
	}
	return sqlDB
}
