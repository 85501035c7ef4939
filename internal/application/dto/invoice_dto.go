package dto

import "github.com/shopspring/decimal"

// ── Requests ─────────────────────────────────────────────────────────────────

// AddressRequest dirección en creación: todos los campos obligatorios.
type AddressRequest struct {
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	Country  string `json:"country" validate:"required"`
	PostCode string `json:"post_code" validate:"required"`
}

// ClientRequest cliente en creación, con su propia dirección.
type ClientRequest struct {
	Name    string          `json:"name" validate:"required"`
	Email   string          `json:"email" validate:"required,email"`
	Address *AddressRequest `json:"address" validate:"required"`
}

// ItemRequest línea en creación (sin ID: lo asigna el servidor).
type ItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// La fecha llega como milisegundos desde época, igual que sale.
type CreateInvoiceRequest struct {
	Date        int64           `json:"date" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Payment     string          `json:"payment,omitempty" validate:"omitempty,oneof=terms_1 terms_7 terms_14 terms_30"`
	Status      string          `json:"status,omitempty" validate:"omitempty,oneof=draft pending paid"`
	Address     *AddressRequest `json:"address" validate:"required"`
	Client      *ClientRequest  `json:"client" validate:"required"`
	Items       []ItemRequest   `json:"items,omitempty" validate:"omitempty,dive"`
}

// AddressPatchRequest dirección en actualización: campo nil = no cambiar.
type AddressPatchRequest struct {
	Street   *string `json:"street"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
	PostCode *string `json:"post_code"`
}

// ClientPatchRequest cliente en actualización (parche disperso).
type ClientPatchRequest struct {
	Name    *string              `json:"name"`
	Email   *string              `json:"email" validate:"omitempty,email"`
	Address *AddressPatchRequest `json:"address"`
}

// UpdateItemRequest línea en actualización. Con ID actualiza la línea
// existente; sin ID crea una nueva.
type UpdateItemRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:invoiceId.
// Parche disperso: campo ausente = sin cambios. Items distingue tres casos:
// nil (no tocar las líneas), lista vacía (borrarlas todas) y lista con
// contenido (conjunto autoritativo).
type UpdateInvoiceRequest struct {
	Description *string              `json:"description"`
	Date        *int64               `json:"date"`
	Status      *string              `json:"status" validate:"omitempty,oneof=draft pending paid"`
	Payment     *string              `json:"payment" validate:"omitempty,oneof=terms_1 terms_7 terms_14 terms_30"`
	Address     *AddressPatchRequest `json:"address"`
	Client      *ClientPatchRequest  `json:"client"`
	Items       *[]UpdateItemRequest `json:"items" validate:"omitempty,dive"`
}

// ── Views ────────────────────────────────────────────────────────────────────

// AddressView dirección en respuestas.
type AddressView struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Country  string `json:"country"`
	PostCode string `json:"post_code"`
}

// ItemView línea en respuestas.
type ItemView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ClientView cliente en respuestas. En la vista de lista la dirección
// no se incluye (queda omitida por omitempty).
type ClientView struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Address *AddressView `json:"address,omitempty"`
}

// PaymentView par código + etiqueta del plazo de pago.
type PaymentView struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// LinkView descriptor hipermedia.
type LinkView struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Action string `json:"action"`
}

// SingleInvoiceView proyección pública de una factura individual.
// Date es el instante almacenado en milisegundos desde época (conversión
// exacta, sin desplazamiento de zona). Las asociaciones no cargadas en la
// entidad de entrada se omiten: el mismo mapper sirve el registro completo
// y la forma reducida del resultado de creación.
type SingleInvoiceView struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Address     *AddressView `json:"address,omitempty"`
	Date        int64        `json:"date"`
	Status      string       `json:"status"`
	Items       []ItemView   `json:"items,omitempty"`
	Client      *ClientView  `json:"client,omitempty"`
	Payment     PaymentView  `json:"payment"`
	Links       []LinkView   `json:"links,omitempty"`
}

// InvoiceListEntry proyección reducida por factura en GET /api/invoices:
// sin descripción ni direcciones, siempre con su link self.
type InvoiceListEntry struct {
	ID      string      `json:"id"`
	Date    int64       `json:"date"`
	Status  string      `json:"status"`
	Client  ClientView  `json:"client"`
	Items   []ItemView  `json:"items"`
	Payment PaymentView `json:"payment"`
	Links   []LinkView  `json:"links"`
}

// DeleteInvoiceResponse resultado del borrado lógico: el nuevo valor del flag.
type DeleteInvoiceResponse struct {
	Status bool `json:"status"`
}
