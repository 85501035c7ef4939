package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/waleed-alfaifi/invoices-api/internal/application/dto"
)

// validate instancia única del validador declarativo; las reglas viven en
// los tags `validate` de los DTOs, así el núcleo recibe siempre entrada ya
// validada y nunca re-valida.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los errores con el nombre del campo JSON, no el de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct valida el DTO y devuelve la lista de errores por campo
// (vacía si todo está bien).
func checkStruct(in any) []dto.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Field: "", Message: "entrada inválida"}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath recorta el nombre del struct raíz: "client.address.street"
// en vez de "CreateInvoiceRequest.client.address.street".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return fmt.Sprintf("longitud mínima: %s caracteres", fe.Param())
	case "oneof":
		return fmt.Sprintf("valores permitidos: [ %s ]", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("no cumple la regla %q", fe.Tag())
	}
}
