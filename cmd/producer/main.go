package main

import (
	"clothing_shop/internal/config"
	"clothing_shop/internal/generator"
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/segmentio/kafka-go"
)

// Producer отвечает за генерацию и отправку событий покупок в Kafka.
type Producer struct {
	writer    *kafka.Writer
	generator *generator.Generator
	buyerIDs  []int64
}

// NewProducer создает и настраивает новый экземпляр продюсера.
func NewProducer(cfg config.KafkaConfig, buyerIDs []int64) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer, generator: generator.New(0), buyerIDs: buyerIDs}
}

// Run запускает цикл отправки сообщений до отмены контекста.
func (p *Producer) Run(ctx context.Context, interval time.Duration) {
	log.Println("Продюсер запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Продюсер останавливается.")
			return
		case <-ticker.C:
			event := p.generator.NewPurchaseEvent(p.buyerIDs)
			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("Ошибка сериализации события: %v", err)
				continue
			}

			err = p.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(event.EventID),
				Value: payload,
			})
			if err != nil {
				log.Printf("Ошибка отправки сообщения: %v", err)
			} else {
				log.Printf("Отправлено событие %s: покупатель %d, сумма %s", event.EventID, event.BuyerID, event.TotalAmount)
			}
		}
	}
}

func (p *Producer) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer: %v", err)
	}
}

// producerConfig - настройки генерации событий.
type producerConfig struct {
	BuyerIDs []int64      `env:"PRODUCER_BUYER_IDS" env-default:"1,2,3,4,5"`
	Interval time.Duration `env:"PRODUCER_INTERVAL" env-default:"2s"`
}

func main() {
	cfg := config.Get()

	var pcfg producerConfig
	if err := cleanenv.ReadEnv(&pcfg); err != nil {
		log.Fatalf("Не удалось прочитать настройки продюсера: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer := NewProducer(cfg.Kafka, pcfg.BuyerIDs)
	defer producer.Close()

	producer.Run(ctx, pcfg.Interval)
}
