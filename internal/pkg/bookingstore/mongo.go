package bookingstore

import (
	"context"
	"fmt"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "bookings"

type bookingDocument struct {
	BookingID string    `bson:"bookingId"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"createdAt"`
}

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection(collectionName),
	}
}

func (s *MongoStore) Append(ctx context.Context, record dto.BookingRecord) error {
	doc := bookingDocument{
		BookingID: record.BookingID,
		Email:     record.Email,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert booking record: %w", err)
	}

	return nil
}

// GetAll sorts on _id; generated ObjectIDs increase with insertion time.
func (s *MongoStore) GetAll(ctx context.Context) ([]dto.BookingRecord, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list booking records: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode booking records: %w", err)
	}

	records := make([]dto.BookingRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, dto.BookingRecord{
			BookingID: doc.BookingID,
			Email:     doc.Email,
		})
	}

	return records, nil
}

// NewMongoClient connects and pings within a bounded time.
func NewMongoClient(ctx context.Context, uri, username, password string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	if username != "" && password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: username,
			Password: password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}
