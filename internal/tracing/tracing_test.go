package tracing

import (
	"clothing_shop/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		root  string
	}{
		{name: "все трейсы", ratio: 1, root: "root:AlwaysOnSampler"},
		{name: "больше единицы", ratio: 3, root: "root:AlwaysOnSampler"},
		{name: "доля", ratio: 0.25, root: "root:TraceIDRatioBased{0.25}"},
		{name: "ноль", ratio: 0, root: "root:AlwaysOffSampler"},
		{name: "отрицательная доля", ratio: -1, root: "root:AlwaysOffSampler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := newSampler(tt.ratio).Description()
			assert.Contains(t, desc, "ParentBased")
			assert.Contains(t, desc, tt.root)
		})
	}
}

func TestNewResource(t *testing.T) {
	res := newResource(config.TracingConfig{ServiceName: "clothing-shop", Environment: "prod"})

	set := res.Set()
	name, ok := set.Value(semconv.ServiceNameKey)
	assert.True(t, ok)
	assert.Equal(t, attribute.StringValue("clothing-shop"), name)
	env, ok := set.Value(semconv.DeploymentEnvironmentKey)
	assert.True(t, ok)
	assert.Equal(t, "prod", env.AsString())
}

func TestInit_Disabled(t *testing.T) {
	shutdown := Init(config.TracingConfig{Enabled: false})

	assert.NotPanics(t, shutdown)
}
