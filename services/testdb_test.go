package services

import (
	"context"
	"testing"
	"time"

	"crop-procurement-api/config"
	"crop-procurement-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	farmerID      = "11111111-1111-1111-1111-111111111111"
	otherFarmerID = "22222222-2222-2222-2222-222222222222"
	officerID     = "33333333-3333-3333-3333-333333333333"
	otherOfficer  = "44444444-4444-4444-4444-444444444444"
)

var (
	farmer  = Actor{UserID: farmerID, UserType: models.UserTypeFarmer}
	farmer2 = Actor{UserID: otherFarmerID, UserType: models.UserTypeFarmer}
	officer = Actor{UserID: officerID, UserType: models.UserTypeOfficer}
	officr2 = Actor{UserID: otherOfficer, UserType: models.UserTypeOfficer}
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	phone := "+91-9000000000"
	now := time.Now().UTC()
	users := []models.User{
		{ID: farmerID, Name: "Asha Farmer", Email: "asha@example.test", Phone: &phone, UserType: models.UserTypeFarmer, CreatedAt: now, UpdatedAt: now},
		{ID: otherFarmerID, Name: "Ravi Farmer", Email: "ravi@example.test", UserType: models.UserTypeFarmer, CreatedAt: now, UpdatedAt: now},
		{ID: officerID, Name: "Meera Officer", Email: "meera@example.test", UserType: models.UserTypeOfficer, CreatedAt: now, UpdatedAt: now},
		{ID: otherOfficer, Name: "Kiran Officer", Email: "kiran@example.test", UserType: models.UserTypeOfficer, CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}
	return db
}

type fixture struct {
	db            *gorm.DB
	store         *GormSubmissionStore
	notifications *GormNotificationStore
	svc           *CropSubmissionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	store := NewGormSubmissionStore(db)
	notifications := NewGormNotificationStore(db)
	notifier := NewNotificationService(notifications, NewGormUserDirectory(db), nil, "")
	return &fixture{
		db:            db,
		store:         store,
		notifications: notifications,
		svc:           NewCropSubmissionService(store, notifier),
	}
}

// seedSubmission creates a submitted lot owned by farmerID.
func (f *fixture) seedSubmission(t *testing.T) *models.CropSubmission {
	t.Helper()
	harvest := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	sub := &models.CropSubmission{
		ID:          uuid.NewString(),
		FarmerID:    farmerID,
		CropType:    "wheat",
		Quantity:    datatypes.NewJSONType(models.Quantity{Amount: 40, Unit: "quintal"}),
		HarvestDate: harvest,
		Location:    datatypes.NewJSONType(models.Location{District: "Nashik", State: "Maharashtra"}),
		Status:      models.StatusSubmitted,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := f.store.Create(context.Background(), sub); err != nil {
		t.Fatalf("failed to seed submission: %v", err)
	}
	return sub
}

// setStatus forces a status without going through the service.
func (f *fixture) setStatus(t *testing.T, id string, status models.SubmissionStatus) {
	t.Helper()
	if err := f.db.Model(&models.CropSubmission{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		t.Fatalf("failed to set status: %v", err)
	}
}

func (f *fixture) reload(t *testing.T, id string) *models.CropSubmission {
	t.Helper()
	sub, err := f.store.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload %s: %v", id, err)
	}
	return sub
}

func (f *fixture) notificationsFor(t *testing.T, submissionID string) []models.Notification {
	t.Helper()
	var items []models.Notification
	if err := f.db.Where("related_entity_id = ?", submissionID).Find(&items).Error; err != nil {
		t.Fatalf("failed to load notifications: %v", err)
	}
	return items
}

func strPtr(s string) *string { return &s }
