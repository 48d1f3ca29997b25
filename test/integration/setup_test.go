//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/db"
	"github.com/quillsign/quillsign/internal/api/middleware"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/domain/user"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/internal/testutils"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Storage    *fakeObjectStorage
	OwnerToken string
	OtherToken string
	Owner      *user.User
	Other      *user.User
}

var (
	testCtx   *TestContext
	dbCleanup func()
)

// fakeObjectStorage keeps blobs in memory so the suite needs a real database
// but no MinIO instance.
type fakeObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: map[string][]byte{}}
}

func (s *fakeObjectStorage) Fetch(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[path]
	if !ok {
		return nil, fmt.Errorf("object %s not found", path)
	}
	return data, nil
}

func (s *fakeObjectStorage) Store(_ context.Context, path string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = append([]byte(nil), data...)
	return nil
}

func (s *fakeObjectStorage) Remove(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

func (s *fakeObjectStorage) PresignedGet(_ context.Context, path string, _ time.Duration) (string, error) {
	return "https://storage.test/" + path, nil
}

// samplePDF builds a classic-xref single page document that the renderer can
// parse and update.
func samplePDF() []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 5)
	addObj := func(id int, body string) {
		offsets[id] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", id, body)
	}
	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 /MediaBox [0 0 612 792] >>")
	addObj(3, "<< /Type /Page /Parent 2 0 R /Contents 4 0 R /Resources << >> >>")
	addObj(4, "<< /Length 3 >>\nstream\nq Q\nendstream")

	xref := b.Len()
	b.WriteString("xref\n0 5\n0000000000 65535 f \n")
	for id := 1; id <= 4; id++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	if err := setupTestEnvironment(); err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	cleanupTestEnvironment()
	os.Exit(code)
}

func setupTestEnvironment() error {
	gin.SetMode(gin.TestMode)

	config.JwtSecret = "test-secret-key-for-integration-testing"
	config.Issuer = "quillsign-test"
	config.SigningBaseURL = "http://localhost:3000/sign"
	config.DefaultExpiryDays = 14
	config.AllowRefinalize = false
	middleware.Init()

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	dbCleanup = cleanup
	db.InitWithGormDB(gormDB)

	storage := newFakeObjectStorage()
	repos := repository.NewRepositories(gormDB)
	services := &application.Services{
		User:      application.NewUserService(repos),
		Document:  application.NewDocumentService(repos, storage),
		Field:     application.NewFieldService(repos),
		Signing:   application.NewSigningService(repos, application.NewLogNotifier()),
		Recipient: application.NewRecipientService(repos),
		Finalize:  application.NewFinalizeService(repos, storage),
		Audit:     application.NewAuditService(repos),
	}

	testCtx = &TestContext{
		DB:      gormDB,
		Storage: storage,
		Router:  testutils.SetupRouter(repos, services),
	}

	return createTestData(gormDB)
}

func createTestData(gormDB *gorm.DB) error {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	owner := &user.User{
		Email:    "owner@test.com",
		Username: "test-owner",
		Password: string(hashed),
		Type:     user.TypeOrigin,
	}
	if err := gormDB.Create(owner).Error; err != nil {
		return fmt.Errorf("failed to create owner user: %v", err)
	}
	testCtx.Owner = owner

	other := &user.User{
		Email:    "other@test.com",
		Username: "test-other",
		Password: string(hashed),
		Type:     user.TypeOrigin,
	}
	if err := gormDB.Create(other).Error; err != nil {
		return fmt.Errorf("failed to create second user: %v", err)
	}
	testCtx.Other = other

	var err error
	testCtx.OwnerToken, err = middleware.GenerateToken(owner.ID, owner.Username, owner.Email, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate owner token: %v", err)
	}
	testCtx.OtherToken, err = middleware.GenerateToken(other.ID, other.Username, other.Email, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate second token: %v", err)
	}

	return nil
}

func cleanupTestEnvironment() {
	if dbCleanup != nil {
		dbCleanup()
	}
}

// ownerClient returns a client authenticated as the seeded document owner.
func ownerClient() *HTTPClient {
	return NewHTTPClient(testCtx.Router, testCtx.OwnerToken)
}

// otherClient returns a client authenticated as a user who owns nothing.
func otherClient() *HTTPClient {
	return NewHTTPClient(testCtx.Router, testCtx.OtherToken)
}

// anonClient returns an unauthenticated client for the token signing surface.
func anonClient() *HTTPClient {
	return NewHTTPClient(testCtx.Router, "")
}
