package invoicing

import (
	"context"

	"github.com/waleed-alfaifi/invoices-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio atado a una transacción única.
// Si fn retorna error se hace rollback completo: la actualización de una
// factura (borrados, upserts y parche de campos) es todo o nada.
// El aislamiento es el por defecto de PostgreSQL (read committed); dos
// escritores concurrentes sobre la misma factura no se serializan aquí.
type TxRunner interface {
	RunInvoicing(ctx context.Context, fn func(repo repository.InvoiceRepository) error) error
}
