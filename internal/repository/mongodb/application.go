package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/repository"
	applicationservice "courier-network/internal/service/application"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type applicationDoc struct {
	ID              string               `bson:"_id"`
	UserID          string               `bson:"user_id"`
	VehicleType     string               `bson:"vehicle_type"`
	VehicleNumber   string               `bson:"vehicle_number"`
	LicenseNumber   string               `bson:"license_number"`
	ExperienceYears int                  `bson:"experience_years"`
	Availability    string               `bson:"availability"`
	Phone           string               `bson:"phone"`
	Address         repository.AddressDB `bson:"address"`
	Status          string               `bson:"status"`
	AdminNotes      string               `bson:"admin_notes"`
	ReviewedBy      string               `bson:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time           `bson:"reviewed_at"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

func (d *applicationDoc) toDomain(people map[string]*entities.UserSummary) *entities.CourierApplication {
	return &entities.CourierApplication{
		ID:              d.ID,
		UserID:          d.UserID,
		User:            people[d.UserID],
		VehicleType:     entities.VehicleType(d.VehicleType),
		VehicleNumber:   d.VehicleNumber,
		LicenseNumber:   d.LicenseNumber,
		ExperienceYears: d.ExperienceYears,
		Availability:    entities.Availability(d.Availability),
		Phone:           d.Phone,
		Address:         repository.AddressToDomain(d.Address),
		Status:          entities.ApplicationStatus(d.Status),
		AdminNotes:      d.AdminNotes,
		ReviewedBy:      d.ReviewedBy,
		ReviewedAt:      d.ReviewedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type ApplicationRepository struct {
	store *Store
	now   func() time.Time
}

func NewApplicationRepository(store *Store) *ApplicationRepository {
	return &ApplicationRepository{
		store: store,
		now:   time.Now,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, a entities.CourierApplication) (*entities.CourierApplication, error) {
	now := r.now().UTC()
	doc := applicationDoc{
		ID:              uuid.NewString(),
		UserID:          a.UserID,
		VehicleType:     a.VehicleType.String(),
		VehicleNumber:   a.VehicleNumber,
		LicenseNumber:   a.LicenseNumber,
		ExperienceYears: a.ExperienceYears,
		Availability:    a.Availability.String(),
		Phone:           a.Phone,
		Address:         repository.AddressFromDomain(a.Address),
		Status:          a.Status.String(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.store.col(ColApplications).InsertOne(ctx, doc); err != nil {
		if repository.IsMongoDuplicateKey(err) {
			return nil, applicationservice.ErrPendingExists
		}
		return nil, fmt.Errorf("unexpected application repository create error: %w", err)
	}

	return r.withPeople(ctx, &doc)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entities.CourierApplication, error) {
	doc, err := findOne[applicationDoc](ctx, r.store.col(ColApplications), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository getbyid error: %w", err)
	}
	if doc == nil {
		return nil, applicationservice.ErrApplicationNotFound
	}
	return r.withPeople(ctx, doc)
}

func (r *ApplicationRepository) List(ctx context.Context, filter entities.ApplicationFilter) ([]entities.CourierApplication, error) {
	query := bson.D{}
	if filter.UserID != "" {
		query = append(query, bson.E{Key: "user_id", Value: filter.UserID})
	}
	if filter.Status != nil {
		query = append(query, bson.E{Key: "status", Value: filter.Status.String()})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	docs, err := findMany[applicationDoc](ctx, r.store.col(ColApplications), query, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository list error: %w", err)
	}

	seen := make(map[string]struct{}, len(docs))
	ids := make([]string, 0, len(docs))
	for i := range docs {
		if _, ok := seen[docs[i].UserID]; !ok {
			seen[docs[i].UserID] = struct{}{}
			ids = append(ids, docs[i].UserID)
		}
	}
	people, err := r.store.summaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository users lookup error: %w", err)
	}

	applications := make([]entities.CourierApplication, len(docs))
	for i := range docs {
		applications[i] = *docs[i].toDomain(people)
	}
	return applications, nil
}

func (r *ApplicationRepository) Review(ctx context.Context, review entities.ApplicationReview) (*entities.CourierApplication, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.D{
		{Key: "_id", Value: review.ID},
		{Key: "status", Value: entities.ApplicationPending.String()},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: review.Status.String()},
		{Key: "admin_notes", Value: review.AdminNotes},
		{Key: "reviewed_by", Value: review.ReviewedBy},
		{Key: "reviewed_at", Value: review.ReviewedAt.UTC()},
		{Key: "updated_at", Value: review.ReviewedAt.UTC()},
	}}}

	var doc applicationDoc
	err := r.store.col(ColApplications).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, applicationservice.ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("unexpected application repository review error: %w", err)
	}

	return r.withPeople(ctx, &doc)
}

func (r *ApplicationRepository) withPeople(ctx context.Context, doc *applicationDoc) (*entities.CourierApplication, error) {
	people, err := r.store.summaries(ctx, []string{doc.UserID})
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository users lookup error: %w", err)
	}
	return doc.toDomain(people), nil
}
