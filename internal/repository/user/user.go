package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/repository"
	"courier-network/internal/service/user"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id::text, name, email, password_hash, role, phone, address, avatar_url,
	is_active, is_available, deleted_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userEntity entities.User) (*entities.User, error) {
	userModel := FromDomain(&userEntity)
	query := `INSERT INTO users (name, email, password_hash, role, phone, address, avatar_url, is_active, is_available)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + columns

	created, err := scanUser(r.querier.QueryRow(
		ctx,
		query,
		userModel.Name,
		userModel.Email,
		userModel.PasswordHash,
		userModel.Role,
		userModel.Phone,
		userModel.Address,
		userModel.AvatarURL,
		userModel.IsActive,
		userModel.IsAvailable,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(created), nil
}

// GetByID возвращает и мягко удаленных пользователей, решение за сервисом.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	if uuid.Validate(id) != nil {
		return nil, user.ErrUserNotFound
	}

	query := `SELECT ` + columns + ` FROM users WHERE id = $1`

	found, err := scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(found), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + columns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	found, err := scanUser(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(found), nil
}

func (r *Repository) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	builder := qb.
		Select(columns).
		From("users").
		OrderBy("created_at DESC")

	if !filter.IncludeDeleted {
		builder = builder.Where(sq.Eq{"deleted_at": nil})
	}
	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": filter.Role.String()})
	}
	if filter.OnlyActive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}
	if filter.OnlyAvailable {
		builder = builder.Where(sq.Eq{"is_available": true})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 16)
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		userModels = append(userModels, *found)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	if userModifyModel.ID == nil || uuid.Validate(*userModifyModel.ID) != nil {
		return nil, user.ErrUserNotFound
	}

	builder := qb.
		Update("users")

	// опциональные поля
	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Email != nil {
		builder = builder.Set("email", sq.Expr("LOWER(?)", *userModifyModel.Email))
	}
	if userModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", userModifyModel.PasswordHash)
	}
	if userModifyModel.Role != nil {
		builder = builder.Set("role", userModifyModel.Role)
	}
	if userModifyModel.Phone != nil {
		builder = builder.Set("phone", userModifyModel.Phone)
	}
	if userModifyModel.Address != nil {
		builder = builder.Set("address", *userModifyModel.Address)
	}
	if userModifyModel.AvatarURL != nil {
		builder = builder.Set("avatar_url", userModifyModel.AvatarURL)
	}
	if userModifyModel.IsActive != nil {
		builder = builder.Set("is_active", userModifyModel.IsActive)
	}
	if userModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", userModifyModel.IsAvailable)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING " + columns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	updated, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(updated), nil
}

func (r *Repository) SoftDelete(ctx context.Context, id string, deletedAt time.Time) error {
	query := `UPDATE users
		SET deleted_at = $2, is_active = FALSE, is_available = FALSE, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.querier.Exec(ctx, query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("unexpected user repository softdelete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *Repository) Restore(ctx context.Context, id string) (*entities.User, error) {
	query := `UPDATE users
		SET deleted_at = NULL, is_active = TRUE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING ` + columns

	restored, err := scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotDeleted
		}
		return nil, fmt.Errorf("unexpected user repository restore error: %w", err)
	}

	return ToDomain(restored), nil
}

func (r *Repository) CountActiveAdmins(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users
		WHERE role = 'admin' AND is_active AND deleted_at IS NULL`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository countactiveadmins error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountByRole(ctx context.Context) (map[entities.Role]int64, error) {
	query := `SELECT role, COUNT(*) FROM users
		WHERE deleted_at IS NULL
		GROUP BY role`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository countbyrole error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.Role]int64, len(entities.Roles))
	for rows.Next() {
		var (
			role  string
			count int64
		)
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("unexpected user repository countbyrole error: %w", err)
		}
		counts[entities.Role(role)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository countbyrole error: %w", err)
	}
	return counts, nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Email,
		&userModel.PasswordHash,
		&userModel.Role,
		&userModel.Phone,
		&userModel.Address,
		&userModel.AvatarURL,
		&userModel.IsActive,
		&userModel.IsAvailable,
		&userModel.DeletedAt,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &userModel, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
