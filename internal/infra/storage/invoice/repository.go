package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HospitalityService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// Repository репозиторий счетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет счет и его строки.
// Вызывающий код оборачивает вызов в транзакцию (txmanager), чтобы счет и строки записались атомарно.
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableInvoices).
		Columns(
			"number",
			"reservation_id",
			"business_id",
			"business_type",
			"total",
			"currency",
			"status",
			"issued_at",
		).
		Values(
			inv.Number,
			inv.ReservationID,
			inv.BusinessID,
			string(inv.BusinessType),
			inv.Total,
			inv.Currency,
			string(inv.Status),
			inv.IssuedAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &inv.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrInvoiceExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(inv.Items) == 0 {
		return inv, nil
	}

	itemsInsert := psqlbuilder.Insert(tableInvoiceItems).
		Columns("invoice_id", "description", "price", "quantity", "total").
		Suffix("RETURNING id")
	for _, item := range inv.Items {
		itemsInsert = itemsInsert.Values(inv.ID, item.Description, item.Price, item.Quantity, item.Total)
	}

	query, args, err = itemsInsert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build items insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute items insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for i := 0; rows.Next(); i++ {
		if i >= len(inv.Items) {
			break
		}
		if err := rows.Scan(&inv.Items[i].ID); err != nil {
			return nil, fmt.Errorf("%w: Create - scan item id: %v", ErrScanRow, err)
		}
		inv.Items[i].InvoiceID = inv.ID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Create - items rows error: %v", ErrScanRow, err)
	}

	return inv, nil
}

// GetByID получает счет со строками по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByReservationID получает счет бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error) {
	return r.getOne(ctx, squirrel.Eq{"reservation_id": reservationID}, "GetByReservationID")
}

// ListByBusiness возвращает счета бизнеса (новые первыми) со строками
func (r *Repository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(invoiceColumns...).
		From(tableInvoices).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("issued_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	byID := make(map[int64]*domain.Invoice)
	ids := make([]int64, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan invoice: %v", ErrScanRow, err)
		}
		invoices = append(invoices, inv)
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return invoices, nil
	}

	items, err := r.getItems(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if inv, ok := byID[item.InvoiceID]; ok {
			inv.Items = append(inv.Items, item)
		}
	}

	return invoices, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer, op string) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(invoiceColumns...).
		From(tableInvoices).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	inv, err := scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan invoice: %v", ErrScanRow, op, err)
	}

	items, err := r.getItems(ctx, executor, []int64{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return inv, nil
}

func (r *Repository) getItems(ctx context.Context, executor DBExecutor, invoiceIDs []int64) ([]domain.InvoiceItem, error) {
	query, args, err := psqlbuilder.Select("id", "invoice_id", "description", "price", "quantity", "total").
		From(tableInvoiceItems).
		Where(squirrel.Eq{"invoice_id": invoiceIDs}).
		OrderBy("invoice_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Price, &item.Quantity, &item.Total); err != nil {
			return nil, fmt.Errorf("%w: getItems - scan item: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row scanner) (*domain.Invoice, error) {
	var (
		inv          domain.Invoice
		businessType string
		status       string
		createdAt    sql.NullTime
	)
	err := row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.ReservationID,
		&inv.BusinessID,
		&businessType,
		&inv.Total,
		&inv.Currency,
		&status,
		&inv.IssuedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	inv.BusinessType = domain.BusinessType(businessType)
	inv.Status = domain.InvoiceStatus(status)
	inv.CreatedAt = createdAt.Time
	return &inv, nil
}
