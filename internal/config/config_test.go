package config

import (
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("DB_NAME", "staybooker_test")
	t.Setenv("BOOKING_AUTO_CONFIRM", "true")
	t.Setenv("BOOKING_MAX_NIGHTS", "14")
	t.Setenv("SCHEDULER_INTERVAL", "5m")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staybooker_test", cfg.Postgres.Database)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.Interval)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, domain.BookingPolicy{AutoConfirm: true, MaxNights: 14}, cfg.Booking.Policy())
	assert.Equal(t, "staybooker.events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestBookingConfig_Policy(t *testing.T) {
	b := BookingConfig{AllowPastCheckIn: true, MaxNights: 30}

	assert.Equal(t, domain.BookingPolicy{AllowPastCheckIn: true, MaxNights: 30}, b.Policy())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"info", logger.InfoLevel},
		{"unknown", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LoggerConfig{Level: tt.level}.LogLevel())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "staybooker", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=staybooker sslmode=disable", p.DSN())
}
