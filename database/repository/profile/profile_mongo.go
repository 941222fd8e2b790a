package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database("barberbook").Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new profile.
func (r *MongoProfileRepo) Create(p *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID.
func (r *MongoProfileRepo) GetByID(id string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &p, nil
}

// GetByUserID retrieves a profile by its auth subject id. Returns nil, nil
// when no profile exists yet for the identity.
func (r *MongoProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return &p, nil
}

// GetByEmail retrieves a profile by email. Returns nil, nil when absent.
func (r *MongoProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with email %s: %w", email, err)
	}
	return &p, nil
}

// GetAll retrieves all profiles.
func (r *MongoProfileRepo) GetAll() ([]models.Profile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	for cursor.Next(ctx) {
		var p models.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Update replaces mutable profile fields and returns the stored document.
func (r *MongoProfileRepo) Update(p *models.Profile) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	update := bson.M{"$set": p}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Profile
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": p.ID}, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", p.ID, err)
	}
	return &updated, nil
}

// Delete removes a profile by id.
func (r *MongoProfileRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("profile %s not found", id)
	}
	return nil
}
