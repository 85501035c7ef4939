package repository

import (
	"context"

	"github.com/waleed-alfaifi/invoices-api/internal/domain/billing"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas y su
// grafo anidado (dirección del emisor, cliente con su dirección, líneas).
// Las lecturas excluyen siempre las facturas con borrado lógico.
type InvoiceRepository interface {
	// Create persiste la factura completa: ambas direcciones, el cliente,
	// la cabecera y las líneas. Asigna IDs a todo lo que llegue sin ID.
	Create(ctx context.Context, inv *entity.Invoice) error

	// GetByID devuelve la factura con el grafo completo (dirección, líneas,
	// cliente con dirección), o nil si no existe o está borrada.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)

	// ListByUser devuelve las facturas no borradas del usuario, con cliente
	// (nombre y email, sin dirección) y líneas.
	ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error)

	// ListItems devuelve las líneas almacenadas de la factura.
	ListItems(ctx context.Context, invoiceID string) ([]*entity.Item, error)

	// CreateItem inserta una línea nueva; asigna ID si llega vacío.
	CreateItem(ctx context.Context, item *entity.Item) error

	// UpdateItem actualiza nombre, precio y cantidad de una línea por ID.
	UpdateItem(ctx context.Context, item *entity.Item) error

	// DeleteItems borra físicamente las líneas indicadas de la factura.
	DeleteItems(ctx context.Context, invoiceID string, ids []string) error

	// UpdateFields aplica el parche disperso sobre cabecera, dirección y
	// cliente. Devuelve domain.ErrNotFound si la factura no existe o está
	// borrada.
	UpdateFields(ctx context.Context, id string, patch billing.InvoicePatch) error

	// SoftDelete marca la factura como borrada y devuelve el nuevo valor
	// del flag. La factura nunca se elimina físicamente.
	SoftDelete(ctx context.Context, id string) (bool, error)
}
