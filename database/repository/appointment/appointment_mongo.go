package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database("barberbook").Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "barber_id", Value: 1}, {Key: "start_at", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "start_at", Value: 1}}},
		{Keys: bson.D{{Key: "stripe_payment_intent_id", Value: 1}}, Options: options.Index().SetSparse(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment.
func (r *MongoAppointmentRepo) Create(a *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &a, nil
}

// GetAll retrieves all appointments.
func (r *MongoAppointmentRepo) GetAll() ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

// ListByBarberBetween returns a barber's non-cancelled appointments
// overlapping [from, to).
func (r *MongoAppointmentRepo) ListByBarberBetween(barberID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"barber_id": barberID,
		"status":    bson.M{"$ne": models.AppointmentCancelled},
		"start_at":  bson.M{"$lt": to},
		"end_at":    bson.M{"$gt": from},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments for barber %s: %w", barberID, err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

// Update replaces mutable appointment fields and returns the stored document.
func (r *MongoAppointmentRepo) Update(a *models.Appointment) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	update := bson.M{"$set": a}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": a.ID}, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", a.ID, err)
	}
	return &updated, nil
}

// UpdateFields applies a partial update and returns the stored document.
func (r *MongoAppointmentRepo) UpdateFields(id string, fields map[string]interface{}) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return &updated, nil
}

// GetByPaymentIntentID resolves an appointment by its Stripe intent reference.
func (r *MongoAppointmentRepo) GetByPaymentIntentID(intentID string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"stripe_payment_intent_id": intentID}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment for intent %s: %w", intentID, err)
	}
	return &a, nil
}

func decodeAppointments(ctx context.Context, cursor *mongo.Cursor) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
