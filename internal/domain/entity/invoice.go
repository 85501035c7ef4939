package entity

import "time"

// Estados posibles de una factura. El núcleo no interpreta el estado:
// se persiste y se proyecta tal cual.
const (
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// InvoiceStatuses lista cerrada de estados válidos (para validación en el borde).
var InvoiceStatuses = []string{StatusDraft, StatusPending, StatusPaid}

// Invoice representa la cabecera de una factura. Toda factura tiene
// exactamente una dirección del emisor y un cliente; el borrado es
// lógico (IsDeleted) y todas las lecturas filtran IsDeleted = false.
type Invoice struct {
	ID           string
	UserID       string
	Date         time.Time
	Description  string
	PaymentTerms string // terms_1 | terms_7 | terms_14 | terms_30 (default por la DB)
	Status       string
	IsDeleted    bool
	AddressID    string
	ClientID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Asociaciones cargadas bajo demanda; nil significa "no incluida"
	// y el mapper la omite en la respuesta.
	Address *Address
	Client  *Client
	Items   []*Item
}
