// Package billing contiene la lógica pura de facturación: la
// reconciliación de líneas y los tipos de parche disperso que usa la
// actualización de facturas. No habla con almacenamiento.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemInput línea enviada por el cliente en una actualización.
// ID vacío significa "crear nueva línea".
type ItemInput struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// ItemsPatch distingue explícitamente tres casos que una slice normal
// confunde: campo ausente (Present=false, no tocar nada), lista vacía
// (Present=true y sin elementos, borrar todas las líneas) y lista con
// contenido (conjunto autoritativo).
type ItemsPatch struct {
	Present bool
	Items   []ItemInput
}

// AddressPatch parche disperso de una dirección: nil = no cambiar.
type AddressPatch struct {
	Street   *string
	City     *string
	Country  *string
	PostCode *string
}

// ClientPatch parche disperso del cliente y su dirección.
type ClientPatch struct {
	Name    *string
	Email   *string
	Address *AddressPatch
}

// InvoicePatch parche disperso de la cabecera de la factura.
// Todo puntero nil se deja sin cambios (semántica PUT parcial).
type InvoicePatch struct {
	Description  *string
	Date         *time.Time
	Status       *string
	PaymentTerms *string
	Address      *AddressPatch
	Client       *ClientPatch
}
