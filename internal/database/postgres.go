package database

import (
	"clothing_shop/internal/analytics"
	"clothing_shop/internal/config"
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/model"
	"clothing_shop/internal/validator"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=./mocks/storage_mock.go -package=mocks clothing_shop/internal/database ClothesTypeRepository,BuyerRepository,PurchaseRepository,OrderRepository,SnapshotLoader

type ClothesTypeRepository interface {
	CreateClothesType(ctx context.Context, ct *model.ClothesType) error
	GetClothesType(ctx context.Context, id int64) (*model.ClothesType, error)
	ListClothesTypes(ctx context.Context) ([]model.ClothesType, error)
	UpdateClothesType(ctx context.Context, ct *model.ClothesType) error
	DeleteClothesType(ctx context.Context, id int64) error
}

type BuyerRepository interface {
	CreateBuyer(ctx context.Context, buyer *model.Buyer) error
	GetBuyer(ctx context.Context, id int64) (*model.Buyer, error)
	ListBuyers(ctx context.Context) ([]model.Buyer, error)
	UpdateBuyer(ctx context.Context, buyer *model.Buyer) error
	DeleteBuyer(ctx context.Context, id int64) error
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *model.Purchase) error
	GetPurchase(ctx context.Context, id int64) (*model.Purchase, error)
	ListPurchases(ctx context.Context) ([]model.Purchase, error)
	ListBuyerPurchases(ctx context.Context, buyerID int64) ([]model.Purchase, error)
	UpdatePurchase(ctx context.Context, purchase *model.Purchase) error
	DeletePurchase(ctx context.Context, id int64) error
}

type SizeRepository interface {
	CreateSize(ctx context.Context, size *model.Size) error
	GetSize(ctx context.Context, id int64) (*model.Size, error)
	ListSizes(ctx context.Context) ([]model.Size, error)
	UpdateSize(ctx context.Context, size *model.Size) error
	DeleteSize(ctx context.Context, id int64) error
}

type AssortmentRepository interface {
	CreateAssortment(ctx context.Context, a *model.Assortment) error
	GetAssortment(ctx context.Context, id int64) (*model.Assortment, error)
	ListAssortments(ctx context.Context) ([]model.Assortment, error)
	UpdateAssortment(ctx context.Context, a *model.Assortment) error
	DeleteAssortment(ctx context.Context, id int64) error

	CreateAssortmentSize(ctx context.Context, as *model.AssortmentSize) error
	ListAssortmentSizes(ctx context.Context, assortmentID int64) ([]model.AssortmentSize, error)
	UpdateAssortmentSize(ctx context.Context, as *model.AssortmentSize) error
	DeleteAssortmentSize(ctx context.Context, id int64) error
}

type SellerRepository interface {
	CreateSeller(ctx context.Context, seller *model.Seller) error
	GetSeller(ctx context.Context, id int64) (*model.Seller, error)
	ListSellers(ctx context.Context) ([]model.Seller, error)
	UpdateSeller(ctx context.Context, seller *model.Seller) error
	DeleteSeller(ctx context.Context, id int64) error

	CreateSellerProfile(ctx context.Context, profile *model.SellerProfile) error
	GetSellerProfile(ctx context.Context, sellerID int64) (*model.SellerProfile, error)
	UpdateSellerProfile(ctx context.Context, profile *model.SellerProfile) error
	DeleteSellerProfile(ctx context.Context, sellerID int64) error
}

type DeliveryMethodRepository interface {
	CreateDeliveryMethod(ctx context.Context, method *model.DeliveryMethod) error
	GetDeliveryMethod(ctx context.Context, id int64) (*model.DeliveryMethod, error)
	ListDeliveryMethods(ctx context.Context) ([]model.DeliveryMethod, error)
	UpdateDeliveryMethod(ctx context.Context, method *model.DeliveryMethod) error
	DeleteDeliveryMethod(ctx context.Context, id int64) error
}

type BuyerProfileRepository interface {
	CreateBuyerProfile(ctx context.Context, profile *model.BuyerProfile) error
	GetBuyerProfile(ctx context.Context, buyerID int64) (*model.BuyerProfile, error)
	ListBuyerProfiles(ctx context.Context) ([]model.BuyerProfile, error)
	UpdateBuyerProfile(ctx context.Context, profile *model.BuyerProfile) error
	DeleteBuyerProfile(ctx context.Context, buyerID int64) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order *model.Order) error
	DeleteOrder(ctx context.Context, id int64) error

	AddOrderItem(ctx context.Context, item *model.OrderItem) error
	ListOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	UpdateOrderItem(ctx context.Context, item *model.OrderItem) error
	DeleteOrderItem(ctx context.Context, id int64) error
	RecalculateOrderTotal(ctx context.Context, orderID int64) (*model.Order, error)
}

type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) (*analytics.Snapshot, error)
}

// Storage определяет полный интерфейс хранилища магазина.
type Storage interface {
	ClothesTypeRepository
	BuyerRepository
	PurchaseRepository
	SizeRepository
	AssortmentRepository
	SellerRepository
	DeliveryMethodRepository
	BuyerProfileRepository
	OrderRepository
	SnapshotLoader
	Close() error
}

// postgresStorage обеспечивает взаимодействие с базами данных PostgreSQL.
// Это конкретная реализация интерфейса Storage.
type postgresStorage struct {
	stores *Stores
	tracer trace.Tracer
	now    func() time.Time
}

// New создает подключения к БД, применяет миграции к каждой физической базе
// и возвращает экземпляр, реализующий интерфейс Storage.
func New(cfg config.PostgresConfig) (Storage, error) {
	primary, err := connect(cfg.URL)
	if err != nil {
		return nil, err
	}

	var secondary *sqlx.DB
	if cfg.SecondaryURL != "" && cfg.SecondaryURL != cfg.URL {
		if secondary, err = connect(cfg.SecondaryURL); err != nil {
			_ = primary.Close()
			return nil, err
		}
	}

	urls := []string{cfg.URL}
	if secondary != nil {
		urls = append(urls, cfg.SecondaryURL)
	}
	for _, url := range urls {
		if err := runMigrations(url, cfg.MigrationsPath); err != nil {
			_ = primary.Close()
			if secondary != nil {
				_ = secondary.Close()
			}
			return nil, fmt.Errorf("ошибка применения миграций: %w", err)
		}
	}

	return newPostgresStorage(NewStores(primary, secondary), time.Now), nil
}

func newPostgresStorage(stores *Stores, now func() time.Time) *postgresStorage {
	if stores.Separate() {
		log.Println("Хранилища разнесены: связи между ними будут отклоняться.")
	}
	return &postgresStorage{
		stores: stores,
		tracer: otel.Tracer("postgres-storage"),
		now:    now,
	}
}

func connect(dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}
	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// inTx выполняет fn в транзакции хранилища, которому принадлежит kind.
// Ошибки PostgreSQL переводятся в доменные нарушения.
func (s *postgresStorage) inTx(ctx context.Context, kind model.Kind, op operation, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, span := s.tracer.Start(ctx, fmt.Sprintf("DB.%s.%s", op, kind))
	defer span.End()

	tx, err := s.stores.db(kind).BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
			err = translateError(kind, op, err)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// get читает одну запись из хранилища сущности.
func (s *postgresStorage) get(ctx context.Context, kind model.Kind, dest interface{}, query string, args ...interface{}) error {
	ctx, span := s.tracer.Start(ctx, fmt.Sprintf("DB.get.%s", kind))
	defer span.End()

	if err := s.stores.db(kind).GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		metrics.DBErrors.WithLabelValues("get_" + string(kind)).Inc()
		return fmt.Errorf("не удалось получить %s: %w", kind, err)
	}
	return nil
}

// list читает набор записей из хранилища сущности.
func (s *postgresStorage) list(ctx context.Context, kind model.Kind, dest interface{}, query string, args ...interface{}) error {
	ctx, span := s.tracer.Start(ctx, fmt.Sprintf("DB.list.%s", kind))
	defer span.End()

	if err := s.stores.db(kind).SelectContext(ctx, dest, query, args...); err != nil {
		metrics.DBErrors.WithLabelValues("list_" + string(kind)).Inc()
		return fmt.Errorf("не удалось получить список %s: %w", kind, err)
	}
	return nil
}

// namedGet выполняет именованный запрос с RETURNING и сканирует результат в dest.
func namedGet(ctx context.Context, q sqlx.ExtContext, dest interface{}, query string, arg interface{}) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, q, dest, q.Rebind(bound), args...)
}

// namedExec выполняет именованный запрос и требует, чтобы он затронул строку.
func namedExec(ctx context.Context, q sqlx.ExtContext, query string, arg interface{}) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return execOne(ctx, q, q.Rebind(bound), args...)
}

// execOne выполняет запрос и возвращает ErrNotFound, если ни одна строка не затронута.
func execOne(ctx context.Context, q sqlx.ExecerContext, query string, args ...interface{}) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// prepare проверяет связи сущности, теги и правила до начала транзакции.
func (s *postgresStorage) prepare(kind model.Kind, v interface{}, rules ...func() error) error {
	if err := s.stores.CheckRelations(kind); err != nil {
		countViolation(kind, err)
		return err
	}
	if err := validator.Validate(v, rules...); err != nil {
		countViolation(kind, err)
		return err
	}
	return nil
}

// clock приводит время суток к формату колонки TIME.
func clock(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("15:04:05")
}

// today - текущая календарная дата.
func (s *postgresStorage) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Close закрывает соединения с БД.
func (s *postgresStorage) Close() error {
	var firstErr error
	for _, db := range s.stores.all() {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
