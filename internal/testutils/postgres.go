package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/quillsign/quillsign/internal/domain/audit"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/domain/recipient"
	"github.com/quillsign/quillsign/internal/domain/signing"
	"github.com/quillsign/quillsign/internal/domain/user"
)

// SetupPostgresForIntegration returns a migrated gorm handle backed either by
// an external database (TEST_DB_DSN) or by a throwaway postgres container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	// Check if an external DB DSN is provided
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB := openAndMigrate(dsn)
		return gormDB, func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "quillsign",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/quillsign?sslmode=disable", host, port.Port())

	// retry until the container accepts connections
	var raw *sql.DB
	for i := 0; i < 10; i++ {
		raw, err = sql.Open("postgres", dsn)
		if err == nil {
			err = raw.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	_ = raw.Close()

	gormDB := openAndMigrate(dsn)

	cleanup := func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}

	return gormDB, cleanup
}

func openAndMigrate(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&user.User{},
		&document.Document{},
		&field.SignatureField{},
		&field.Signature{},
		&signing.SigningRequest{},
		&signing.SignerInfo{},
		&recipient.DocumentRecipient{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal(err)
	}
	return gormDB
}
