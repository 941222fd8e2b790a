package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.MongoClient.Database("barberbook").Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service.
func (r *MongoServiceRepo) Create(s *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

// GetByID retrieves a service by its unique ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &s, nil
}

// GetAll retrieves all services.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// Update replaces mutable service fields and returns the stored document.
func (r *MongoServiceRepo) Update(s *models.Service) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	update := bson.M{"$set": s}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Service
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": s.ID}, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", s.ID, err)
	}
	return &updated, nil
}

// Delete removes a service by id.
func (r *MongoServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}
