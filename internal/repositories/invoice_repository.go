package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"invoiceBack/internal/models"
)

const dateLayout = "2006-01-02"

type InvoiceRepository struct {
	DB *sql.DB
}

// SaveInvoice inserts the invoice row and its item rows in one transaction.
// Saving an id that already exists returns models.ErrDuplicateInvoice.
func (r *InvoiceRepository) SaveInvoice(ctx context.Context, inv models.Invoice) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save invoice %s: %w", inv.ID, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (id, date, total) VALUES (?, ?, ?)`,
		inv.ID, inv.Date.Format(dateLayout), inv.Total,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return models.ErrDuplicateInvoice
		}
		return fmt.Errorf("insert invoice %s: %w", inv.ID, err)
	}

	if len(inv.Items) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO invoice_items (invoice_id, product, quantity, price) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare item insert for invoice %s: %w", inv.ID, err)
		}
		defer stmt.Close()
		for _, item := range inv.Items {
			if _, err := stmt.ExecContext(ctx, inv.ID, item.Product, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("insert item %q for invoice %s: %w", item.Product, inv.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit invoice %s: %w", inv.ID, err)
	}
	return nil
}

// GetInvoiceByID selects the invoice row only; the item list is left empty.
func (r *InvoiceRepository) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, date, total FROM invoices WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.Date, &inv.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	if err != nil {
		return models.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}
	inv.Items = []models.InvoiceItem{}
	return inv, nil
}

// GetAllInvoices reconstructs every invoice with its items through a left
// join, grouped by invoice id in first-seen order. An invoice without items
// appears with an empty item list.
func (r *InvoiceRepository) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	query := `
		SELECT i.id, i.date, i.total, ii.product, ii.quantity, ii.price
		FROM invoices i
		LEFT JOIN invoice_items ii ON i.id = ii.invoice_id
		ORDER BY i.rowid, ii.rowid
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	index := map[string]int{}
	for rows.Next() {
		var (
			id       string
			date     time.Time
			total    float64
			product  sql.NullString
			quantity sql.NullInt64
			price    sql.NullFloat64
		)
		if err := rows.Scan(&id, &date, &total, &product, &quantity, &price); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		pos, ok := index[id]
		if !ok {
			invoices = append(invoices, models.Invoice{
				ID:    id,
				Date:  date,
				Total: total,
				Items: []models.InvoiceItem{},
			})
			pos = len(invoices) - 1
			index[id] = pos
		}
		// NULL product means the invoice had no item rows to join.
		if product.Valid {
			invoices[pos].Items = append(invoices[pos].Items, models.InvoiceItem{
				Product:  product.String,
				Quantity: int(quantity.Int64),
				Price:    price.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return invoices, nil
}
