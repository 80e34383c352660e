package bookingstore

import (
	"context"
	"fmt"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"gorm.io/gorm"
)

// Bookings GORM model for database mapping
type Bookings struct {
	ID        uint      `gorm:"primaryKey"`
	BookingID string    `gorm:"column:booking_id;not null"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (Bookings) TableName() string {
	return "bookings"
}

type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore migrates the bookings table and returns a store on it.
func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&Bookings{}); err != nil {
		return nil, fmt.Errorf("failed to migrate bookings table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Append(ctx context.Context, record dto.BookingRecord) error {
	model := Bookings{
		BookingID: record.BookingID,
		Email:     record.Email,
	}

	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to insert booking record: %w", err)
	}

	return nil
}

func (s *PostgresStore) GetAll(ctx context.Context) ([]dto.BookingRecord, error) {
	var rows []Bookings
	if err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list booking records: %w", err)
	}

	records := make([]dto.BookingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, dto.BookingRecord{
			BookingID: row.BookingID,
			Email:     row.Email,
		})
	}

	return records, nil
}
