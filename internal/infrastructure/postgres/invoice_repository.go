package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/waleed-alfaifi/invoices-api/internal/domain"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/billing"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste el grafo completo de la factura: las dos direcciones, el
// cliente, la cabecera y las líneas. Asigna UUIDs a lo que llegue sin ID.
// Plazo de pago y estado vacíos toman el default de la capa de persistencia
// y se devuelven en la entidad. Llamar dentro de una transacción para que
// la inserción sea atómica.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if err := r.insertAddress(ctx, inv.Address); err != nil {
		return err
	}
	if err := r.insertAddress(ctx, inv.Client.Address); err != nil {
		return err
	}

	if inv.Client.ID == "" {
		inv.Client.ID = uuid.New().String()
	}
	inv.Client.AddressID = inv.Client.Address.ID
	_, err := r.q.Exec(ctx, `
		INSERT INTO clients (id, name, email, address_id)
		VALUES ($1, $2, $3, $4)`,
		inv.Client.ID, inv.Client.Name, inv.Client.Email, inv.Client.AddressID,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}

	now := time.Now()
	inv.AddressID = inv.Address.ID
	inv.ClientID = inv.Client.ID
	inv.CreatedAt = now
	inv.UpdatedAt = now
	err = r.q.QueryRow(ctx, `
		INSERT INTO invoices (id, user_id, date, description, payment_terms, status, is_deleted, address_id, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, 'terms_30'), COALESCE($6, 'pending'), FALSE, $7, $8, $9, $10)
		RETURNING payment_terms, status`,
		inv.ID, inv.UserID, inv.Date, inv.Description,
		nullIfEmpty(inv.PaymentTerms), nullIfEmpty(inv.Status),
		inv.AddressID, inv.ClientID, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.PaymentTerms, &inv.Status)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	for _, item := range inv.Items {
		item.InvoiceID = inv.ID
		if err := r.CreateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepo) insertAddress(ctx context.Context, a *entity.Address) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO addresses (id, street, city, country, post_code)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Street, a.City, a.Country, a.PostCode,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID obtiene la factura con el grafo completo (dirección del emisor,
// cliente con su dirección, líneas). Devuelve nil si no existe o está
// borrada lógicamente.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.user_id, i.date, i.description, i.payment_terms, i.status,
		       i.created_at, i.updated_at,
		       a.id, a.street, a.city, a.country, a.post_code,
		       c.id, c.name, c.email,
		       ca.id, ca.street, ca.city, ca.country, ca.post_code
		FROM invoices i
		JOIN addresses a  ON a.id  = i.address_id
		JOIN clients   c  ON c.id  = i.client_id
		JOIN addresses ca ON ca.id = c.address_id
		WHERE i.id = $1 AND i.is_deleted = FALSE`
	var inv entity.Invoice
	var addr, clientAddr entity.Address
	var client entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.UserID, &inv.Date, &inv.Description, &inv.PaymentTerms, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
		&addr.ID, &addr.Street, &addr.City, &addr.Country, &addr.PostCode,
		&client.ID, &client.Name, &client.Email,
		&clientAddr.ID, &clientAddr.Street, &clientAddr.City, &clientAddr.Country, &clientAddr.PostCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	client.AddressID = clientAddr.ID
	client.Address = &clientAddr
	inv.AddressID = addr.ID
	inv.ClientID = client.ID
	inv.Address = &addr
	inv.Client = &client

	items, err := r.ListItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.Item{} // grafo cargado: lista presente aunque vacía
	}
	inv.Items = items
	return &inv, nil
}

// ListByUser devuelve las facturas no borradas del usuario con el cliente
// (nombre y email, sin dirección) y las líneas.
func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	query := `
		SELECT i.id, i.user_id, i.date, i.description, i.payment_terms, i.status,
		       c.id, c.name, c.email
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.user_id = $1 AND i.is_deleted = FALSE
		ORDER BY i.created_at, i.id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	byID := make(map[string]*entity.Invoice)
	var ids []string
	for rows.Next() {
		var inv entity.Invoice
		var client entity.Client
		if err := rows.Scan(
			&inv.ID, &inv.UserID, &inv.Date, &inv.Description, &inv.PaymentTerms, &inv.Status,
			&client.ID, &client.Name, &client.Email,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.ClientID = client.ID
		inv.Client = &client
		inv.Items = []*entity.Item{}
		list = append(list, &inv)
		byID[inv.ID] = &inv
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, name, price, quantity
		FROM items WHERE invoice_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.Item
		if err := itemRows.Scan(&it.ID, &it.InvoiceID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if inv, ok := byID[it.InvoiceID]; ok {
			inv.Items = append(inv.Items, &it)
		}
	}
	return list, itemRows.Err()
}

// ListItems obtiene las líneas almacenadas de la factura.
func (r *InvoiceRepo) ListItems(ctx context.Context, invoiceID string) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, name, price, quantity
		FROM items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CreateItem inserta una línea nueva. El ID se asigna aquí y nunca se
// reutiliza después de un borrado.
func (r *InvoiceRepo) CreateItem(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO items (id, invoice_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.InvoiceID, item.Name, item.Price, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// UpdateItem actualiza nombre, precio y cantidad de una línea por ID.
func (r *InvoiceRepo) UpdateItem(ctx context.Context, item *entity.Item) error {
	_, err := r.q.Exec(ctx, `
		UPDATE items SET name = $3, price = $4, quantity = $5
		WHERE id = $1 AND invoice_id = $2`,
		item.ID, item.InvoiceID, item.Name, item.Price, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// DeleteItems borra físicamente las líneas indicadas de la factura.
func (r *InvoiceRepo) DeleteItems(ctx context.Context, invoiceID string, ids []string) error {
	_, err := r.q.Exec(ctx, `
		DELETE FROM items WHERE invoice_id = $1 AND id = ANY($2)`,
		invoiceID, ids,
	)
	if err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	return nil
}

// UpdateFields aplica el parche disperso: COALESCE deja intactas las
// columnas cuyo puntero llega nil. El WHERE con is_deleted = FALSE hace
// que una factura inexistente o borrada no empareje ninguna fila y se
// reporte como not-found.
func (r *InvoiceRepo) UpdateFields(ctx context.Context, id string, patch billing.InvoicePatch) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE invoices
		SET description   = COALESCE($2, description),
		    date          = COALESCE($3, date),
		    status        = COALESCE($4, status),
		    payment_terms = COALESCE($5, payment_terms),
		    updated_at    = $6
		WHERE id = $1 AND is_deleted = FALSE`,
		id, patch.Description, patch.Date, patch.Status, patch.PaymentTerms, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if p := patch.Address; p != nil {
		_, err := r.q.Exec(ctx, `
			UPDATE addresses SET
			    street    = COALESCE($2, street),
			    city      = COALESCE($3, city),
			    country   = COALESCE($4, country),
			    post_code = COALESCE($5, post_code)
			WHERE id = (SELECT address_id FROM invoices WHERE id = $1)`,
			id, p.Street, p.City, p.Country, p.PostCode,
		)
		if err != nil {
			return fmt.Errorf("update invoice address: %w", err)
		}
	}
	if p := patch.Client; p != nil {
		_, err := r.q.Exec(ctx, `
			UPDATE clients SET
			    name  = COALESCE($2, name),
			    email = COALESCE($3, email)
			WHERE id = (SELECT client_id FROM invoices WHERE id = $1)`,
			id, p.Name, p.Email,
		)
		if err != nil {
			return fmt.Errorf("update client: %w", err)
		}
		if pa := p.Address; pa != nil {
			_, err := r.q.Exec(ctx, `
				UPDATE addresses SET
				    street    = COALESCE($2, street),
				    city      = COALESCE($3, city),
				    country   = COALESCE($4, country),
				    post_code = COALESCE($5, post_code)
				WHERE id = (SELECT c.address_id
				            FROM clients c JOIN invoices i ON i.client_id = c.id
				            WHERE i.id = $1)`,
				id, pa.Street, pa.City, pa.Country, pa.PostCode,
			)
			if err != nil {
				return fmt.Errorf("update client address: %w", err)
			}
		}
	}
	return nil
}

// SoftDelete marca la factura como borrada (tombstone) y devuelve el nuevo
// valor del flag. Volver a borrar una factura ya borrada es idempotente.
func (r *InvoiceRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	var isDeleted bool
	err := r.q.QueryRow(ctx, `
		UPDATE invoices SET is_deleted = TRUE, updated_at = $2
		WHERE id = $1
		RETURNING is_deleted`,
		id, time.Now(),
	).Scan(&isDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("soft delete invoice: %w", err)
	}
	return isDeleted, nil
}
