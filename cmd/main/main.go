package main

import (
	"clothing_shop/internal/api"
	"clothing_shop/internal/cache"
	"clothing_shop/internal/config"
	"clothing_shop/internal/database"
	"clothing_shop/internal/kafka"
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/tracing"
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	cfg := config.Get()

	metrics.Init()
	shutdownTracing := tracing.Init(cfg.Tracing)
	defer shutdownTracing()

	// Инициализация хранилища
	storage, err := database.New(cfg.Postgres)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация кэша
	orderCache := cache.NewLRUCache(cfg.Cache.Size)
	if err := cache.WarmUp(ctx, storage, orderCache, cfg.Cache.Size); err != nil {
		log.Printf("Ошибка при прогреве кэша: %v", err)
	}

	// Запуск Kafka Consumer
	var wg sync.WaitGroup
	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(cfg.Kafka, storage)
		wg.Add(1)
		go func() {
			defer wg.Done()
			consumer.Run(ctx)
		}()
	} else {
		log.Println("Kafka-консюмер отключен.")
	}

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, storage, orderCache)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка остановки HTTP-сервера: %v", err)
	}

	cancel()
	wg.Wait()
	log.Println("Сервис успешно остановлен.")
}
