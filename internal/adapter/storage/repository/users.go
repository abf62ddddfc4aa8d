package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

var userColumns = []string{
	"id", "full_name", "email", "phone", "password", "role",
	"device_token", "is_available", "created_at", "last_updated",
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := domain.User{}
	err := row.Scan(
		&user.ID, &user.FullName, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.DeviceToken, &user.IsAvailable,
		&user.CreatedAt, &user.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.Insert("users").
		Columns("full_name", "email", "phone", "password", "role", "device_token").
		Values(user.FullName, user.Email, user.Phone, user.Password, user.Role, user.DeviceToken).
		Suffix("RETURNING id, created_at, last_updated")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.LastUpdated)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) ReadUser(ctx context.Context, userID uint64) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) listUsers(ctx context.Context, statement sq.SelectBuilder) ([]*domain.User, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return r.listUsers(ctx, r.db.QueryBuilder.Select(userColumns...).From("users"))
}

func (r *Repository) ListUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	return r.listUsers(ctx, r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"role": role}))
}

func (r *Repository) ListUsersByCompany(ctx context.Context, companyID uint64) ([]*domain.User, error) {
	columns := make([]string, 0, len(userColumns))
	for _, c := range userColumns {
		columns = append(columns, "u."+c)
	}
	return r.listUsers(ctx, r.db.QueryBuilder.
		Select(columns...).
		From("users u").
		Join("company_staff cs ON cs.user_id = u.id").
		Where(sq.Eq{"cs.company_id": companyID}))
}

func (r *Repository) UpdateUserDeviceToken(ctx context.Context, userID uint64, token string) error {
	statement := r.db.QueryBuilder.Update("users").
		Set("device_token", token).
		Set("last_updated", sq.Expr("now()")).
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ReadCompany(ctx context.Context, companyID uint64) (*domain.Company, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "description", "sector", "address", "phone", "delivery_fee", "created_at").
		From("companies").
		Where(sq.Eq{"id": companyID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	company := domain.Company{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&company.ID, &company.Name, &company.Description, &company.Sector,
		&company.Address, &company.Phone, &company.DeliveryFee, &company.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &company, nil
}
