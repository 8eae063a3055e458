// Command seed populates a development database with sample users and
// search conditions. It always targets MySQL; the in-memory store has
// nothing to seed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hagio-gakuto/user-directory/config"
	"github.com/hagio-gakuto/user-directory/domain/searchcondition"
	"github.com/hagio-gakuto/user-directory/domain/user"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/mysql"
	"github.com/hagio-gakuto/user-directory/pkg/logger"
)

type seedUser struct {
	email     string
	role      user.Role
	firstName string
	lastName  string
	gender    *user.Gender
}

func gender(g user.Gender) *user.Gender { return &g }

var seedUsers = []seedUser{
	{"admin@example.com", user.RoleAdmin, "管理", "東雲", nil},
	{"taro.yamada@example.com", user.RoleUser, "太郎", "山田", gender(user.GenderMale)},
	{"hanako.sato@example.com", user.RoleUser, "花子", "佐藤", gender(user.GenderFemale)},
	{"jiro.suzuki@example.com", user.RoleUser, "次郎", "鈴木", gender(user.GenderMale)},
	{"misaki.tanaka@example.com", user.RoleAdmin, "美咲", "田中", gender(user.GenderFemale)},
	{"kaoru.takahashi@example.com", user.RoleUser, "薫", "高橋", gender(user.GenderOther)},
	{"ichiro.kobayashi@example.com", user.RoleUser, "一郎", "小林", nil},
}

type seedCondition struct {
	formType  string
	name      string
	urlParams string
}

var seedConditions = []seedCondition{
	{"user", "管理者のみ", "role=admin"},
	{"user", "山田さん検索", "search=山田"},
	{"user", "性別未設定", "gender="},
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (default: ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.ToLoggerConfig(), cfg.App.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Database.Type != "mysql" {
		logger.Fatal("Seeding requires database.type=mysql", zap.String("type", cfg.Database.Type))
	}

	mysqlConfig := &mysql.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Log.Level,
	}
	db, err := mysqlConfig.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}
	if err := mysql.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	ctx := context.Background()
	userRepo := mysql.NewUserRepository(db)
	conditionRepo := mysql.NewSearchConditionRepository(db)

	for _, s := range seedUsers {
		u, err := user.NewUser(s.email, s.role, s.firstName, s.lastName, s.gender, "system")
		if err != nil {
			logger.Fatal("Invalid seed user", zap.String("email", s.email), zap.Error(err))
		}
		created, err := userRepo.Create(ctx, u)
		if err != nil {
			// duplicates are fine on re-runs
			logger.Warn("Skipping user", zap.String("email", s.email), zap.Error(err))
			continue
		}
		logger.Info("Seeded user", zap.String("id", created.ID()), zap.String("email", s.email))
	}

	for _, s := range seedConditions {
		c, err := searchcondition.New(s.formType, s.name, s.urlParams, "system")
		if err != nil {
			logger.Fatal("Invalid seed condition", zap.String("name", s.name), zap.Error(err))
		}
		created, err := conditionRepo.Create(ctx, c)
		if err != nil {
			logger.Warn("Skipping search condition", zap.String("name", s.name), zap.Error(err))
			continue
		}
		logger.Info("Seeded search condition", zap.String("id", created.ID()), zap.String("name", s.name))
	}

	logger.Info("Seeding complete")
}
