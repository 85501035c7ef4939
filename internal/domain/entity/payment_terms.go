package entity

import "fmt"

// Plazos de pago válidos (enum cerrado; la DB asigna terms_30 por defecto).
const (
	Terms1  = "terms_1"
	Terms7  = "terms_7"
	Terms14 = "terms_14"
	Terms30 = "terms_30"
)

// PaymentTermsList lista cerrada de plazos (para validación en el borde).
var PaymentTermsList = []string{Terms1, Terms7, Terms14, Terms30}

// paymentTermsLabels asigna a cada plazo su etiqueta legible.
// El dominio de este mapa es exactamente el enum: no hay códigos sin entrada.
var paymentTermsLabels = map[string]string{
	Terms1:  "Net 1 Day",
	Terms7:  "Net 7 Days",
	Terms14: "Net 14 Days",
	Terms30: "Net 30 Days",
}

// PaymentTermsLabel devuelve la etiqueta legible de un plazo de pago.
// Un código fuera del enum es una violación de contrato del caller,
// no un error recuperable: panic inmediato.
func PaymentTermsLabel(code string) string {
	label, ok := paymentTermsLabels[code]
	if !ok {
		panic(fmt.Sprintf("payment terms desconocido: %q", code))
	}
	return label
}

// ValidPaymentTerms indica si el código pertenece al enum.
func ValidPaymentTerms(code string) bool {
	_, ok := paymentTermsLabels[code]
	return ok
}
