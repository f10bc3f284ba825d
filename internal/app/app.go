package app

import (
	"context"
	"database/sql"

	"hr-portal/internal/attendance"
	"hr-portal/internal/auth"
	"hr-portal/internal/config"
	"hr-portal/internal/employee"
	"hr-portal/internal/hr"
	"hr-portal/internal/leave"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/notification"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/connection"
	"hr-portal/internal/shared/token"
	"hr-portal/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// App holds the long lived resources of the API process.
type App struct {
	db         *sql.DB
	rdb        *redis.Client
	dispatcher *notification.Dispatcher
	cancel     context.CancelFunc
}

func BuildApp(router *gin.Engine, cfg config.Config) (*App, error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency and report caching disabled")
	}

	clk := clock.New(cfg.Location())
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL(), clk)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	sender := notification.NewSender(notificationSettings(cfg), logger)
	dispatcher := notification.NewDispatcher(sender, cfg.NotifyQueueSize, cfg.NotifyTimeout(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	dispatcher.Start(ctx)

	a := &App{db: sqlDB, rdb: rdb, dispatcher: dispatcher, cancel: cancel}

	// 2. Register Modules & Routes
	hrService, err := registerModules(router, modules{
		db:         sqlDB,
		gormDB:     gormDB,
		rdb:        rdb,
		clock:      clk,
		tokens:     tokens,
		hasher:     hasher,
		dispatcher: dispatcher,
		location:   cfg.Location(),
		secure:     cfg.IsProduction(),
		logger:     zap.L(),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	// 3. Seed the first HR account
	if cfg.Seed.Email != "" {
		created, err := hrService.Seed(ctx, hr.SeedInput{
			Name:       cfg.Seed.Name,
			Email:      cfg.Seed.Email,
			Password:   cfg.Seed.Password,
			Department: cfg.Seed.Department,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		if created {
			logger.Info("seeded hr account", zap.String("email", cfg.Seed.Email))
		}
	}

	return a, nil
}

// Close drains queued notifications and releases connections.
func (a *App) Close() {
	a.dispatcher.Stop()
	a.dispatcher.Wait()
	a.cancel()
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	_ = a.db.Close()
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&hr.HR{},
		&employee.Employee{},
		&attendance.Attendance{},
		&leave.Leave{},
		&task.Task{},
		&kafka.OutboxRecord{},
	)
}

func notificationSettings(cfg config.Config) notification.Settings {
	return notification.Settings{
		SMTP: notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		},
		MailerURL: cfg.MailerURL,
		Timeout:   cfg.NotifyTimeout(),
	}
}
