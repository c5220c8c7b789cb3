package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_EnvOverridesAndDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("POSTGRES_SECONDARY_URL", "")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.5")

	cfg := Get()

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "purchases", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Postgres.SecondaryURL)
	assert.Equal(t, 100, cfg.Cache.Size)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "dev", cfg.Tracing.Environment)
	assert.Equal(t, 0.5, cfg.Tracing.SampleRatio)

	// Повторный вызов возвращает тот же экземпляр
	assert.Same(t, cfg, Get())
}
