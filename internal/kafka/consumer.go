package kafka

import (
	"clothing_shop/internal/config"
	"clothing_shop/internal/database"
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/model"
	"clothing_shop/internal/validator"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// messageReader - часть kafka.Reader, которую использует консюмер.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// messageWriter - часть kafka.Writer, нужная для отправки в DLQ.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает события покупок из Kafka и сохраняет их.
type Consumer struct {
	reader     messageReader
	dlqWriter  messageWriter // Продюсер для отправки "битых" сообщений в DLQ
	storage    database.PurchaseRepository
	tracer     trace.Tracer
	maxRetries int           // Количество попыток для временных ошибок БД
	retryDelay time.Duration // Базовая пауза между попытками
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig, storage database.PurchaseRepository) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты выполняются вручную после обработки.
	})

	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Consumer{
		reader:     reader,
		dlqWriter:  dlqWriter,
		storage:    storage,
		tracer:     otel.Tracer("kafka-consumer"),
		maxRetries: 3,
		retryDelay: time.Second,
	}
}

// Run запускает цикл чтения сообщений из Kafka.
func (c *Consumer) Run(ctx context.Context) {
	log.Println("Kafka-консюмер запущен...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Kafka-консюмер останавливается.")
				return
			}
			log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
			continue
		}

		if procErr := c.processMessage(ctx, msg); procErr != nil {
			// Не коммитим: Kafka доставит сообщение повторно.
			log.Printf("Ошибка обработки сообщения (ключ: %s): %v. Не коммитим, ждем retry.", string(msg.Key), procErr)
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("Ошибка коммита сообщения: %v", err)
		}
	}
}

// processMessage разбирает, проверяет и сохраняет событие покупки.
// Возвращает error, только если сообщение нужно обработать повторно
// (контекст отменен во время ожидания). nil означает, что сообщение
// сохранено, уже было сохранено раньше или ушло в DLQ.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var event model.PurchaseEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("Невалидное JSON-сообщение, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil
	}

	if err := validator.ValidateStruct(&event); err != nil {
		log.Printf("Ошибка валидации события %s, отправка в DLQ: %v", event.EventID, err)
		c.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil
	}

	var dbErr error
	for i := 0; i < c.maxRetries; i++ {
		dbErr = c.storage.CreatePurchase(ctx, event.ToPurchase())
		if dbErr == nil || model.IsViolation(dbErr) {
			break
		}
		log.Printf("Ошибка сохранения в БД (попытка %d/%d): %v", i+1, c.maxRetries, dbErr)
		if i == c.maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay * time.Duration(i+1)):
		}
	}

	switch {
	case dbErr == nil:
		log.Printf("Покупка по событию %s сохранена.", event.EventID)
		metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()
	case isDuplicateEvent(dbErr):
		log.Printf("Событие %s уже обработано, пропускаем.", event.EventID)
		metrics.KafkaMessagesProcessed.WithLabelValues("duplicate").Inc()
	case model.IsViolation(dbErr):
		log.Printf("Событие %s нарушает правила модели, отправка в DLQ: %v", event.EventID, dbErr)
		c.sendToDLQ(ctx, msg, "domain_violation", dbErr)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_violation").Inc()
	default:
		log.Printf("Не удалось сохранить событие %s после %d попыток, отправка в DLQ.", event.EventID, c.maxRetries)
		c.sendToDLQ(ctx, msg, "db_save_error", dbErr)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_db_error").Inc()
	}
	return nil
}

// isDuplicateEvent - нарушение уникальности event_id.
func isDuplicateEvent(err error) bool {
	var cv *model.ConstraintViolation
	return errors.As(err, &cv) && cv.Field == "event_id"
}

// sendToDLQ отправляет "битое" сообщение в DLQ топик.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить сообщение %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
	} else {
		log.Printf("Сообщение %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
