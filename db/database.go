package db

import (
	"fmt"
	"log"

	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/internal/domain/audit"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/domain/recipient"
	"github.com/quillsign/quillsign/internal/domain/signing"
	"github.com/quillsign/quillsign/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := DB.AutoMigrate(
		&user.User{},
		&document.Document{},
		&field.SignatureField{},
		&field.Signature{},
		&signing.SigningRequest{},
		&signing.SignerInfo{},
		&recipient.DocumentRecipient{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
