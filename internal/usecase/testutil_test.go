package usecase

import (
	"io"
	"testing"
	"time"

	"go-consult-intake/config"
	"go-consult-intake/internal/infrastructure/database"
	"go-consult-intake/internal/repository"
	"go-consult-intake/internal/service"
	"go-consult-intake/pkg/hasher"
	"go-consult-intake/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// In-memory sqlite holds one database per connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func newTestAccountUsecase(t *testing.T) (AccountUsecase, *gorm.DB, *redis.Client) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	redisClient := newTestRedis(t)

	uc := NewAccountUsecase(
		db,
		log,
		repository.NewUserRepository(),
		auditService,
		hasher.NewBcryptHasher(4),
		newTestJWTService(),
		redisClient,
	)
	return uc, db, redisClient
}

func newTestFormUsecase(t *testing.T) (FormUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	uc := NewFormUsecase(
		db,
		log,
		repository.NewConsultFormRepository(),
		repository.NewConsultQuestionRepository(),
		repository.NewFollowupQuestionRepository(),
		auditService,
	)
	return uc, db
}

func newTestConsultationUsecase(t *testing.T) (ConsultationUsecase, FormUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	formRepo := repository.NewConsultFormRepository()
	questionRepo := repository.NewConsultQuestionRepository()
	followupRepo := repository.NewFollowupQuestionRepository()

	formUsecase := NewFormUsecase(db, log, formRepo, questionRepo, followupRepo, auditService)
	consultationUsecase := NewConsultationUsecase(
		db,
		log,
		repository.NewConsultationRepository(),
		formRepo,
		questionRepo,
		followupRepo,
		repository.NewConsultAnswerRepository(),
		repository.NewFollowupAnswerRepository(),
		auditService,
	)
	return consultationUsecase, formUsecase, db
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(s string) *string {
	return &s
}
