// Package tracing подключает OpenTelemetry с экспортом в Jaeger.
package tracing

import (
	"clothing_shop/internal/config"
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const shutdownTimeout = 5 * time.Second

// Init регистрирует глобальный TracerProvider по настройкам cfg и возвращает
// функцию его остановки. Если трассировка выключена или экспортер не создан,
// остается провайдер по умолчанию, а остановка ничего не делает.
func Init(cfg config.TracingConfig) func() {
	if !cfg.Enabled {
		log.Println("Трассировка отключена.")
		return func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerURL)))
	if err != nil {
		log.Printf("Ошибка создания Jaeger-экспортера, трассировка отключена: %v", err)
		return func() {}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(newSampler(cfg.SampleRatio)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Printf("Трассировка включена: сервис %s, окружение %s, доля трейсов %.2f.", cfg.ServiceName, cfg.Environment, cfg.SampleRatio)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Ошибка остановки TracerProvider: %v", err)
		}
	}
}

func newResource(cfg config.TracingConfig) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment),
	)
}

// newSampler учитывает решение родительского спана. Доля вне [0, 1] обрезается.
func newSampler(ratio float64) sdktrace.Sampler {
	var root sdktrace.Sampler
	switch {
	case ratio >= 1:
		root = sdktrace.AlwaysSample()
	case ratio <= 0:
		root = sdktrace.NeverSample()
	default:
		root = sdktrace.TraceIDRatioBased(ratio)
	}
	return sdktrace.ParentBased(root)
}
