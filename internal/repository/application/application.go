package application

import (
	"context"
	"errors"
	"fmt"

	"courier-network/internal/entities"
	"courier-network/internal/repository"
	"courier-network/internal/service/application"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `a.id::text, a.user_id::text, a.vehicle_type, a.vehicle_number, a.license_number,
	a.experience_years, a.availability, a.phone, a.address, a.status, a.admin_notes,
	COALESCE(a.reviewed_by::text, ''), a.reviewed_at, a.created_at, a.updated_at,
	u.name, u.email, u.phone`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, applicationEntity entities.CourierApplication) (*entities.CourierApplication, error) {
	applicationModel := FromDomain(&applicationEntity)
	query := `INSERT INTO courier_applications (user_id, vehicle_type, vehicle_number, license_number,
			experience_years, availability, phone, address, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		applicationModel.UserID,
		applicationModel.VehicleType,
		applicationModel.VehicleNumber,
		applicationModel.LicenseNumber,
		applicationModel.ExperienceYears,
		applicationModel.Availability,
		applicationModel.Phone,
		applicationModel.Address,
		applicationModel.Status,
	).Scan(&id)
	if err != nil {
		// частичный уникальный индекс по заявкам на рассмотрении
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, application.ErrPendingExists
		}
		return nil, fmt.Errorf("unexpected application repository create error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.CourierApplication, error) {
	if uuid.Validate(id) != nil {
		return nil, application.ErrApplicationNotFound
	}

	applications, err := r.selectApplications(ctx, sq.Eq{"a.id": id})
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository getbyid error: %w", err)
	}
	if len(applications) == 0 {
		return nil, application.ErrApplicationNotFound
	}

	return ToDomain(&applications[0]), nil
}

// List сначала новые.
func (r *Repository) List(ctx context.Context, filter entities.ApplicationFilter) ([]entities.CourierApplication, error) {
	conditions := sq.And{}
	if filter.UserID != "" {
		if uuid.Validate(filter.UserID) != nil {
			return []entities.CourierApplication{}, nil
		}
		conditions = append(conditions, sq.Eq{"a.user_id": filter.UserID})
	}
	if filter.Status != nil {
		conditions = append(conditions, sq.Eq{"a.status": filter.Status.String()})
	}

	applications, err := r.selectApplications(ctx, conditions)
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository list error: %w", err)
	}

	return ToDomainList(applications), nil
}

// Review переводит заявку из pending. Уже рассмотренную заявку не трогает.
func (r *Repository) Review(ctx context.Context, review entities.ApplicationReview) (*entities.CourierApplication, error) {
	if uuid.Validate(review.ID) != nil {
		return nil, application.ErrApplicationNotFound
	}

	query, args, err := qb.
		Update("courier_applications").
		Set("status", review.Status.String()).
		Set("admin_notes", review.AdminNotes).
		Set("reviewed_by", sq.Expr("NULLIF(?::text, '')::uuid", review.ReviewedBy)).
		Set("reviewed_at", review.ReviewedAt).
		Set("updated_at", review.ReviewedAt).
		Where(sq.Eq{
			"id":     review.ID,
			"status": entities.ApplicationPending.String(),
		}).
		Suffix("RETURNING id::text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository review error: %w", err)
	}

	var id string
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("unexpected application repository review error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) selectApplications(ctx context.Context, where sq.Sqlizer) ([]ApplicationDB, error) {
	query, args, err := qb.
		Select(selectColumns).
		From("courier_applications a").
		Join("users u ON u.id = a.user_id").
		Where(where).
		OrderBy("a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]ApplicationDB, 0, 4)
	for rows.Next() {
		var a ApplicationDB
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.VehicleType,
			&a.VehicleNumber,
			&a.LicenseNumber,
			&a.ExperienceYears,
			&a.Availability,
			&a.Phone,
			&a.Address,
			&a.Status,
			&a.AdminNotes,
			&a.ReviewedBy,
			&a.ReviewedAt,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.UserName,
			&a.UserEmail,
			&a.UserPhone,
		)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	return applications, rows.Err()
}
