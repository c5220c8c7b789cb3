package main

import (
	"clothing_shop/internal/config"
	"clothing_shop/internal/database"
	"clothing_shop/internal/generator"
	"clothing_shop/internal/seed"
	"context"
	"log"
	"os"
	"time"
)

func main() {
	cfg := config.Get()

	fixture, err := loadFixture(cfg.Seed.FixturePath)
	if err != nil {
		log.Fatalf("Ошибка загрузки фикстуры: %v", err)
	}

	storage, err := database.New(cfg.Postgres)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	log.Println("=== Создание демо-данных магазина одежды ===")
	seeder := seed.NewSeeder(storage, generator.New(0), time.Now)
	res, err := seeder.Run(context.Background(), fixture)
	if err != nil {
		log.Printf("Ошибка заполнения базы: %v", err)
		return
	}
	log.Printf("=== Демо-данные добавлены: %+v ===", res)
}

// loadFixture читает фикстуру из файла или берет встроенную.
func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.DefaultFixture()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.ParseFixture(data)
}
