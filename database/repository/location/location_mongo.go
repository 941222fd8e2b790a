package locationRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLocationRepo implements LocationRepository using MongoDB.
type MongoLocationRepo struct {
	coll *mongo.Collection
}

// NewMongoLocationRepo creates a new instance of LocationRepository using MongoDB.
func NewMongoLocationRepo() LocationRepository {
	coll := database.MongoClient.Database("barberbook").Collection("locations")
	repo := &MongoLocationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLocationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new location.
func (r *MongoLocationRepo) Create(l *models.Location) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

// GetByID retrieves a location by its unique ID.
func (r *MongoLocationRepo) GetByID(id string) (*models.Location, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var l models.Location
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to fetch location with id %s: %w", id, err)
	}
	return &l, nil
}

// GetAll retrieves all locations.
func (r *MongoLocationRepo) GetAll() ([]models.Location, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	for cursor.Next(ctx) {
		var l models.Location
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, nil
}

// Update replaces mutable location fields and returns the stored document.
func (r *MongoLocationRepo) Update(l *models.Location) (*models.Location, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	l.UpdatedAt = time.Now()
	update := bson.M{"$set": l}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Location
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": l.ID}, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update location %s: %w", l.ID, err)
	}
	return &updated, nil
}

// Delete removes a location by id.
func (r *MongoLocationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete location %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("location %s not found", id)
	}
	return nil
}
