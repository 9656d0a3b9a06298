package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Davi-Bueno/api-vendas/internal/models"
)

var DB *gorm.DB

func Init() {

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Sao_Paulo",
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_USER", "vendas"),
		getEnv("POSTGRES_PASSWORD", "vendas"),
		getEnv("POSTGRES_DB", "vendas"),
		getEnv("DB_PORT", "5432"),
	)

	var err error

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which handlers map to 409.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Cliente{},
		&models.Vendedor{},
		&models.Eletrodomestico{},
		&models.Carrinho{},
		&models.CarrinhoEletro{},
	)

	if err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	log.Println("Database connected and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
