package cfg

import (
	"testing"
	"time"

	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("POSTGRES_USER", "analytics")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "retail")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "retail-reports")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REPORT_TTL", "")
	t.Setenv("REPORT_INTERVAL", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("POSTGRES_PORT", "")

	config, err := Load(nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, "localhost", config.Db.Host)
	assert.Equal(t, "5432", config.Db.Port)
	assert.Equal(t, "analytics", config.Db.User)
	assert.Equal(t, "disable", config.Db.SSLMode)

	assert.Equal(t, 10*time.Minute, config.Redis.ReportTTL)
	assert.Equal(t, time.Hour, config.Report.Interval)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "retail-reports", config.Kafka.Topic)
	assert.Equal(t, 3, config.Kafka.Partitions)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REPORT_TTL", "30m")
	t.Setenv("REPORT_INTERVAL", "15m")
	t.Setenv("REDIS_DB_ID", "2")

	config, err := Load(nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, config.Redis.ReportTTL)
	assert.Equal(t, 15*time.Minute, config.Report.Interval)
	assert.Equal(t, 2, config.Redis.DB)
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "postgres user", key: "POSTGRES_USER"},
		{name: "postgres password", key: "POSTGRES_PASSWORD"},
		{name: "postgres db", key: "POSTGRES_DB"},
		{name: "kafka brokers", key: "KAFKA_BROKERS"},
		{name: "kafka topic", key: "KAFKA_TOPIC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, "")

			_, err := Load(nopLogger{})
			require.Error(t, err)
		})
	}
}

func TestLoadMalformedValues(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REPORT_INTERVAL", "soon")

		_, err := Load(nopLogger{})
		require.Error(t, err)
	})

	t.Run("bad int", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REDIS_DB_ID", "two")

		_, err := Load(nopLogger{})
		require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})
}

func TestRedisTimeoutIsMaxOfReadWrite(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("WRITE_TIMEOUT", "7s")

	config, err := Load(nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, config.Redis.Timeout)
}
