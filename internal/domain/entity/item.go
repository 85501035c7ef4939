package entity

import "github.com/shopspring/decimal"

// Item representa una línea de la factura. El ID es estable entre
// actualizaciones: se asigna en la primera persistencia y nunca se reutiliza.
type Item struct {
	ID        string
	InvoiceID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}
