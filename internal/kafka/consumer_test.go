package kafka

import (
	db_mocks "clothing_shop/internal/database/mocks"
	"clothing_shop/internal/model"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/mock/gomock"
)

// fakeReader отдает заранее заданные сообщения, затем ждет отмены контекста.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

// fakeWriter запоминает сообщения, отправленные в DLQ.
type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func (w *fakeWriter) reason() string {
	if len(w.messages) == 0 {
		return ""
	}
	for _, h := range w.messages[len(w.messages)-1].Headers {
		if h.Key == "X-Error-Reason" {
			return string(h.Value)
		}
	}
	return ""
}

// setupConsumerAndMocks - хелпер для инициализации консюмера и моков
func setupConsumerAndMocks(t *testing.T) (*Consumer, *db_mocks.MockPurchaseRepository, *fakeWriter) {
	ctrl := gomock.NewController(t)
	mockStorage := db_mocks.NewMockPurchaseRepository(ctrl)
	dlq := &fakeWriter{}

	consumer := &Consumer{
		reader:     &fakeReader{},
		dlqWriter:  dlq,
		storage:    mockStorage,
		tracer:     otel.Tracer("test-tracer"),
		maxRetries: 3,
		retryDelay: 0,
	}
	return consumer, mockStorage, dlq
}

// helperTestEvent - валидное событие для тестов
var helperTestEvent = model.PurchaseEvent{
	EventID:       "b563feb7-b2b8-4b6f-807c-9b63a11e81b9",
	BuyerID:       1,
	TotalAmount:   decimal.RequireFromString("4500.00"),
	PaymentMethod: model.PaymentCard,
	Notes:         "Онлайн-заказ",
}

func eventMessage(t *testing.T, event model.PurchaseEvent) kafka.Message {
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(event.EventID), Value: raw, Topic: "purchases"}
}

func TestConsumer_ProcessMessage_Success(t *testing.T) {
	consumer, mockStorage, dlq := setupConsumerAndMocks(t)

	mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *model.Purchase) error {
			assert.Equal(t, int64(1), p.BuyerID)
			assert.Equal(t, "4500", p.TotalAmount.String())
			require.NotNil(t, p.EventID)
			assert.Equal(t, helperTestEvent.EventID, *p.EventID)
			return nil
		})

	err := consumer.processMessage(context.Background(), eventMessage(t, helperTestEvent))

	assert.NoError(t, err)
	assert.Empty(t, dlq.messages)
}

func TestConsumer_ProcessMessage_DBError(t *testing.T) {
	consumer, mockStorage, dlq := setupConsumerAndMocks(t)
	dbErr := errors.New("database connection failed")

	mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(dbErr).Times(consumer.maxRetries)

	err := consumer.processMessage(context.Background(), eventMessage(t, helperTestEvent))

	// Сообщение ушло в DLQ, повторять не нужно
	assert.NoError(t, err)
	assert.Equal(t, "db_save_error", dlq.reason())
}

func TestConsumer_ProcessMessage_DBError_RetryLogic(t *testing.T) {
	consumer, mockStorage, dlq := setupConsumerAndMocks(t)
	dbErr := errors.New("temp db error")

	gomock.InOrder(
		mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(dbErr).Times(2),
		mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(nil).Times(1),
	)

	err := consumer.processMessage(context.Background(), eventMessage(t, helperTestEvent))

	assert.NoError(t, err)
	assert.Empty(t, dlq.messages)
}

func TestConsumer_ProcessMessage_Duplicate(t *testing.T) {
	consumer, mockStorage, dlq := setupConsumerAndMocks(t)

	mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
		Return(&model.ConstraintViolation{Field: "event_id", Reason: "значение уже используется"}).Times(1)

	err := consumer.processMessage(context.Background(), eventMessage(t, helperTestEvent))

	assert.NoError(t, err)
	assert.Empty(t, dlq.messages, "повторное событие не должно попадать в DLQ")
}

func TestConsumer_ProcessMessage_DomainViolation(t *testing.T) {
	consumer, mockStorage, dlq := setupConsumerAndMocks(t)

	// Покупатель не найден: повторять бесполезно
	mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
		Return(&model.ConstraintViolation{Field: "buyer_id", Reason: "связанная запись не найдена"}).Times(1)

	err := consumer.processMessage(context.Background(), eventMessage(t, helperTestEvent))

	assert.NoError(t, err)
	assert.Equal(t, "domain_violation", dlq.reason())
}

func TestConsumer_ProcessMessage_BadJSON(t *testing.T) {
	consumer, mockStorage, dlq := setupConsumerAndMocks(t)

	mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Times(0)

	err := consumer.processMessage(context.Background(), kafka.Message{Value: []byte("this is not json")})

	assert.NoError(t, err)
	assert.Equal(t, "json_unmarshal_error", dlq.reason())
}

func TestConsumer_ProcessMessage_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *model.PurchaseEvent)
	}{
		{name: "нет event_id", mutate: func(e *model.PurchaseEvent) { e.EventID = "" }},
		{name: "event_id не UUID", mutate: func(e *model.PurchaseEvent) { e.EventID = "not-a-uuid" }},
		{name: "отрицательная сумма", mutate: func(e *model.PurchaseEvent) { e.TotalAmount = decimal.NewFromInt(-1) }},
		{name: "неизвестный способ оплаты", mutate: func(e *model.PurchaseEvent) { e.PaymentMethod = "barter" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, mockStorage, dlq := setupConsumerAndMocks(t)
			event := helperTestEvent
			tt.mutate(&event)

			mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Times(0)

			err := consumer.processMessage(context.Background(), eventMessage(t, event))

			assert.NoError(t, err)
			assert.Equal(t, "validation_error", dlq.reason())
		})
	}
}

func TestConsumer_Run_CommitsProcessedMessages(t *testing.T) {
	consumer, mockStorage, _ := setupConsumerAndMocks(t)
	reader := &fakeReader{messages: []kafka.Message{
		eventMessage(t, helperTestEvent),
		{Value: []byte("broken")},
	}}
	consumer.reader = reader

	ctx, cancel := context.WithCancel(context.Background())
	mockStorage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *model.Purchase) error { return nil })

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		reader.mu.Lock()
		defer reader.mu.Unlock()
		return len(reader.committed) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
