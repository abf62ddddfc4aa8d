package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

var orderColumns = []string{
	"o.id", "o.user_id", "o.company_id", "o.courier_id", "o.assigned_by_id",
	"o.customer_name", "o.customer_email", "o.customer_phone", "o.customer_address",
	"o.order_notes", "o.total_products", "o.quantity",
	"o.discount", "o.subtotal", "o.delivery_fee", "o.total_amount",
	"o.status", "o.order_date", "o.created_at", "o.last_updated",
	"o.accepted_at", "o.in_preparation_at", "o.waiting_at", "o.picked_up_at",
	"o.shipped_at", "o.delivered_at", "o.canceled_at", "o.rejected_at",
	"o.version",
	"c.name", "c.delivery_fee",
	"courier.full_name",
}

func (r *Repository) scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var companyName *string
	var companyFee *decimal.Decimal
	var courierName *string

	err := row.Scan(
		&order.ID, &order.UserID, &order.CompanyID, &order.CourierID, &order.AssignedByID,
		&order.CustomerName, &order.CustomerEmail, &order.CustomerPhone, &order.CustomerAddress,
		&order.OrderNotes, &order.TotalProducts, &order.Quantity,
		&order.Discount, &order.Subtotal, &order.DeliveryFee, &order.TotalAmount,
		&order.Status, &order.OrderDate, &order.CreatedAt, &order.LastUpdated,
		&order.AcceptedAt, &order.InPreparationAt, &order.WaitingAt, &order.PickedUpAt,
		&order.ShippedAt, &order.DeliveredAt, &order.CanceledAt, &order.RejectedAt,
		&order.Version,
		&companyName, &companyFee,
		&courierName,
	)
	if err != nil {
		return nil, err
	}

	if companyName != nil {
		order.Company = &domain.Company{ID: order.CompanyID, Name: *companyName}
		if companyFee != nil {
			order.Company.DeliveryFee = *companyFee
		}
	}
	if courierName != nil && order.CourierID != nil {
		order.Courier = &domain.User{ID: *order.CourierID, FullName: *courierName}
	}

	return &order, nil
}

func (r *Repository) selectOrders() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders o").
		LeftJoin("companies c ON c.id = o.company_id").
		LeftJoin("users courier ON courier.id = o.courier_id")
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("user_id", "company_id", "courier_id", "assigned_by_id",
			"customer_name", "customer_email", "customer_phone", "customer_address",
			"order_notes", "total_products", "quantity",
			"discount", "subtotal", "delivery_fee", "total_amount",
			"status", "order_date", "created_at", "last_updated").
		Values(order.UserID, order.CompanyID, order.CourierID, order.AssignedByID,
			order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.CustomerAddress,
			order.OrderNotes, order.TotalProducts, order.Quantity,
			order.Discount, order.Subtotal, order.DeliveryFee, order.TotalAmount,
			order.Status, order.OrderDate, order.CreatedAt, order.LastUpdated).
		Suffix("RETURNING id, version")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.Version)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.selectOrders().Where(sq.Eq{"o.id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := r.scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrder persists a mutated order, guarded by the version column. A
// concurrent update of the same order loses the race and gets
// ErrConflictingData.
func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("courier_id", order.CourierID).
		Set("assigned_by_id", order.AssignedByID).
		Set("customer_name", order.CustomerName).
		Set("customer_email", order.CustomerEmail).
		Set("customer_phone", order.CustomerPhone).
		Set("customer_address", order.CustomerAddress).
		Set("status", order.Status).
		Set("last_updated", order.LastUpdated).
		Set("accepted_at", order.AcceptedAt).
		Set("in_preparation_at", order.InPreparationAt).
		Set("waiting_at", order.WaitingAt).
		Set("picked_up_at", order.PickedUpAt).
		Set("shipped_at", order.ShippedAt).
		Set("delivered_at", order.DeliveredAt).
		Set("canceled_at", order.CanceledAt).
		Set("rejected_at", order.RejectedAt).
		Set("version", order.Version+1).
		Where(sq.Eq{"id": order.ID, "version": order.Version})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrConflictingData
	}

	order.Version++
	return order, nil
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.listOrders(ctx, r.selectOrders().OrderBy("o.created_at DESC"))
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, r.selectOrders().Where(sq.Eq{"o.user_id": userID}))
}

func (r *Repository) ListOrdersByCompany(ctx context.Context, companyID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, r.selectOrders().Where(sq.Eq{"o.company_id": companyID}))
}

func (r *Repository) ListOrdersByCourier(ctx context.Context, courierID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, r.selectOrders().Where(sq.Eq{"o.courier_id": courierID}))
}

func (r *Repository) DeleteOrder(ctx context.Context, orderID uint64) error {
	statement := r.db.QueryBuilder.Delete("orders").Where(sq.Eq{"id": orderID})

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
