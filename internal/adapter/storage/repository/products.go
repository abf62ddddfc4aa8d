package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

var productColumns = []string{
	"id", "company_id", "category_id", "name", "description",
	"price", "discount_percentage", "final_price", "is_available",
	"created_at", "last_updated",
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := domain.Product{}
	err := row.Scan(
		&product.ID, &product.CompanyID, &product.CategoryID,
		&product.Name, &product.Description,
		&product.Price, &product.DiscountPercentage, &product.FinalPrice,
		&product.IsAvailable,
		&product.CreatedAt, &product.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.Insert("products").
		Columns("company_id", "category_id", "name", "description",
			"price", "discount_percentage", "final_price", "is_available").
		Values(product.CompanyID, product.CategoryID, product.Name, product.Description,
			product.Price, product.DiscountPercentage, product.FinalPrice, product.IsAvailable).
		Suffix("RETURNING id, created_at, last_updated")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.ID, &product.CreatedAt, &product.LastUpdated)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product, err := scanProduct(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("discount_percentage", product.DiscountPercentage).
		Set("final_price", product.FinalPrice).
		Set("is_available", product.IsAvailable).
		Set("last_updated", sq.Expr("now()")).
		Where(sq.Eq{"id": product.ID}).
		Suffix("RETURNING last_updated")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.LastUpdated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, productID uint64) error {
	statement := r.db.QueryBuilder.Delete("products").
		Where(sq.Eq{"id": productID})

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
