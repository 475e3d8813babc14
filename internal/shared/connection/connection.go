package connection

import (
	"context"
	"fmt"
	"time"

	"school-payroll/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RetryDelay is the pause between connection attempts.
var RetryDelay = 5 * time.Second

func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)
}

// ConnectGORMWithRetry opens and pings Postgres, retrying up to
// cfg.MaxRetries times before giving up.
func ConnectGORMWithRetry(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	log := logger.Named("db")
	attempts := max(cfg.MaxRetries, 1)

	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := openGORM(ctx, cfg)
		if err == nil {
			log.Info("connected to database", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
			return db, nil
		}

		lastErr = err
		log.Warn("database connection failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if i < attempts {
			if err := sleep(ctx, RetryDelay); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", attempts, lastErr)
}

func openGORM(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// ConnectRedisWithRetry returns a pinged client for cfg.Addr.
func ConnectRedisWithRetry(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	log := logger.Named("redis")
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	attempts := max(cfg.MaxRetries, 1)

	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			log.Info("connected to redis", zap.String("addr", cfg.Addr))
			return rdb, nil
		}

		log.Warn("redis connection failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(lastErr),
		)
		if i < attempts {
			if err := sleep(ctx, RetryDelay); err != nil {
				_ = rdb.Close()
				return nil, err
			}
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d attempts: %w", attempts, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
