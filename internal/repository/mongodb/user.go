package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/repository"
	userservice "courier-network/internal/service/user"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userDoc struct {
	ID           string               `bson:"_id"`
	Name         string               `bson:"name"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"password_hash"`
	Role         string               `bson:"role"`
	Phone        string               `bson:"phone"`
	Address      repository.AddressDB `bson:"address"`
	AvatarURL    string               `bson:"avatar_url"`
	IsActive     bool                 `bson:"is_active"`
	IsAvailable  bool                 `bson:"is_available"`
	DeletedAt    *time.Time           `bson:"deleted_at"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func (d *userDoc) toDomain() *entities.User {
	return &entities.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         entities.Role(d.Role),
		Phone:        d.Phone,
		Address:      repository.AddressToDomain(d.Address),
		AvatarURL:    d.AvatarURL,
		IsActive:     d.IsActive,
		IsAvailable:  d.IsAvailable,
		DeletedAt:    d.DeletedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type UserRepository struct {
	store *Store
	now   func() time.Time
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{
		store: store,
		now:   time.Now,
	}
}

func (r *UserRepository) Create(ctx context.Context, u entities.User) (*entities.User, error) {
	now := r.now().UTC()
	doc := userDoc{
		ID:           uuid.NewString(),
		Name:         u.Name,
		Email:        strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		Phone:        u.Phone,
		Address:      repository.AddressFromDomain(u.Address),
		AvatarURL:    u.AvatarURL,
		IsActive:     u.IsActive,
		IsAvailable:  u.IsAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.store.col(ColUsers).InsertOne(ctx, doc); err != nil {
		if repository.IsMongoDuplicateKey(err) {
			return nil, userservice.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, bson.D{{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))}})
}

func (r *UserRepository) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	query := bson.D{}
	if !filter.IncludeDeleted {
		query = append(query, bson.E{Key: "deleted_at", Value: nil})
	}
	if filter.Role != nil {
		query = append(query, bson.E{Key: "role", Value: filter.Role.String()})
	}
	if filter.OnlyActive {
		query = append(query, bson.E{Key: "is_active", Value: true})
	}
	if filter.OnlyAvailable {
		query = append(query, bson.E{Key: "is_available", Value: true})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := bson.D{
			{Key: "$regex", Value: regexp.QuoteMeta(search)},
			{Key: "$options", Value: "i"},
		}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "email", Value: pattern}},
		}})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	docs, err := findMany[userDoc](ctx, r.store.col(ColUsers), query, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	users := make([]entities.User, len(docs))
	for i := range docs {
		users[i] = *docs[i].toDomain()
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, m entities.UserModify) (*entities.User, error) {
	if m.ID == nil {
		return nil, userservice.ErrUserNotFound
	}

	set := bson.D{}
	if m.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *m.Name})
	}
	if m.Email != nil {
		set = append(set, bson.E{Key: "email", Value: strings.ToLower(*m.Email)})
	}
	if m.PasswordHash != nil {
		set = append(set, bson.E{Key: "password_hash", Value: *m.PasswordHash})
	}
	if m.Role != nil {
		set = append(set, bson.E{Key: "role", Value: m.Role.String()})
	}
	if m.Phone != nil {
		set = append(set, bson.E{Key: "phone", Value: *m.Phone})
	}
	if m.Address != nil {
		set = append(set, bson.E{Key: "address", Value: repository.AddressFromDomain(*m.Address)})
	}
	if m.AvatarURL != nil {
		set = append(set, bson.E{Key: "avatar_url", Value: *m.AvatarURL})
	}
	if m.IsActive != nil {
		set = append(set, bson.E{Key: "is_active", Value: *m.IsActive})
	}
	if m.IsAvailable != nil {
		set = append(set, bson.E{Key: "is_available", Value: *m.IsAvailable})
	}
	set = append(set, bson.E{Key: "updated_at", Value: r.now().UTC()})

	updated, err := r.findOneAndUpdate(ctx, bson.D{{Key: "_id", Value: *m.ID}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		if repository.IsMongoDuplicateKey(err) {
			return nil, userservice.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}
	if updated == nil {
		return nil, userservice.ErrUserNotFound
	}
	return updated.toDomain(), nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string, deletedAt time.Time) error {
	res, err := r.store.col(ColUsers).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "deleted_at", Value: nil}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "deleted_at", Value: deletedAt.UTC()},
			{Key: "is_active", Value: false},
			{Key: "is_available", Value: false},
			{Key: "updated_at", Value: deletedAt.UTC()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("unexpected user repository softdelete error: %w", err)
	}
	if res.MatchedCount == 0 {
		return userservice.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Restore(ctx context.Context, id string) (*entities.User, error) {
	restored, err := r.findOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "deleted_at", Value: bson.D{{Key: "$ne", Value: nil}}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "deleted_at", Value: nil},
			{Key: "is_active", Value: true},
			{Key: "updated_at", Value: r.now().UTC()},
		}}},
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository restore error: %w", err)
	}
	if restored == nil {
		return nil, userservice.ErrNotDeleted
	}
	return restored.toDomain(), nil
}

func (r *UserRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	count, err := r.store.col(ColUsers).CountDocuments(ctx, bson.D{
		{Key: "role", Value: entities.RoleAdmin.String()},
		{Key: "is_active", Value: true},
		{Key: "deleted_at", Value: nil},
	})
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository countactiveadmins error: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[entities.Role]int64, error) {
	raw, err := countBy(ctx, r.store.col(ColUsers), bson.D{{Key: "deleted_at", Value: nil}}, "role")
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository countbyrole error: %w", err)
	}

	counts := make(map[entities.Role]int64, len(raw))
	for role, count := range raw {
		counts[entities.Role(role)] = count
	}
	return counts, nil
}

func (r *UserRepository) getOne(ctx context.Context, filter bson.D) (*entities.User, error) {
	doc, err := findOne[userDoc](ctx, r.store.col(ColUsers), filter)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}
	if doc == nil {
		return nil, userservice.ErrUserNotFound
	}
	return doc.toDomain(), nil
}

// findOneAndUpdate (nil, nil) если под фильтр ничего не попало.
func (r *UserRepository) findOneAndUpdate(ctx context.Context, filter, update bson.D) (*userDoc, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := r.store.col(ColUsers).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// summaries краткие карточки пользователей для заказов и заявок.
func (s *Store) summaries(ctx context.Context, ids []string) (map[string]*entities.UserSummary, error) {
	result := make(map[string]*entities.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	opts := options.Find().SetProjection(bson.D{
		{Key: "name", Value: 1},
		{Key: "email", Value: 1},
		{Key: "phone", Value: 1},
	})
	docs, err := findMany[userDoc](ctx, s.col(ColUsers), bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}, opts)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		result[docs[i].ID] = &entities.UserSummary{
			ID:    docs[i].ID,
			Name:  docs[i].Name,
			Email: docs[i].Email,
			Phone: docs[i].Phone,
		}
	}
	return result, nil
}
