package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "fit")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "fitplan")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "plan-events")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	c, err := Load(logger.Nop{})
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, "8091", c.Grpc.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, ModelSourceFile, c.Model.Source)
	assert.Equal(t, "data/model-data.json", c.Model.ModelDataPath)
	assert.False(t, c.Qdrant.Enabled)
	assert.Equal(t, 10*time.Minute, c.Redis.PlanTTL)
	assert.Equal(t, 3*time.Second, c.Redis.Timeout)
	assert.Equal(t, "@every 1m", c.Outbox.SweepSchedule)
	assert.Equal(t, 5*time.Minute, c.Outbox.StaleAfter)
	assert.Equal(t, "host=localhost port=5432 user=fit password=secret dbname=fitplan sslmode=disable", c.Db.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("QDRANT_HOST", "qdrant")
	t.Setenv("MODEL_SOURCE", "minio")
	t.Setenv("WRITE_TIMEOUT", "7s")

	c, err := Load(logger.Nop{})
	require.NoError(t, err)

	assert.Equal(t, "9000", c.Http.Port)
	assert.Equal(t, "http://localhost:9000/swagger/doc.json", c.Http.SwaggerURL)
	assert.True(t, c.Qdrant.Enabled)
	assert.Equal(t, ModelSourceMinio, c.Model.Source)
	assert.Equal(t, 7*time.Second, c.Redis.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing postgres user", "POSTGRES_USER", ""},
		{"missing kafka brokers", "KAFKA_BROKERS", ""},
		{"bad duration", "HTTP_READ_TIMEOUT", "soon"},
		{"bad model source", "MODEL_SOURCE", "s3"},
		{"bad bool", "MINIO_USE_SSL", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(logger.Nop{})
			assert.Error(t, err)
		})
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	_, err := parseIntEnv("SOME_INT", 1)
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)

	t.Setenv("SOME_INT", "")
	v, err := parseIntEnv("SOME_INT", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
