package invoicing

import (
	"fmt"

	"github.com/waleed-alfaifi/invoices-api/internal/application/dto"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
)

// selfLink construye el descriptor hipermedia de la propia factura.
func selfLink(id string) dto.LinkView {
	return dto.LinkView{
		Rel:    "self",
		Href:   fmt.Sprintf("/api/invoices/%s", id),
		Action: "GET",
	}
}

// MapSingle proyecta una factura almacenada a su forma pública individual.
// Transformación pura. La fecha sale como milisegundos desde época, sin
// desplazamiento de zona. Las asociaciones no cargadas en la entidad se
// omiten en la salida: el mismo mapper sirve el registro completo y la
// forma reducida del resultado de creación. Con withLinks=false el campo
// links se omite por completo, no va como lista vacía.
func MapSingle(inv *entity.Invoice, withLinks bool) *dto.SingleInvoiceView {
	view := &dto.SingleInvoiceView{
		ID:          inv.ID,
		Description: inv.Description,
		Date:        inv.Date.UnixMilli(),
		Status:      inv.Status,
		Payment: dto.PaymentView{
			Key:  inv.PaymentTerms,
			Text: entity.PaymentTermsLabel(inv.PaymentTerms),
		},
	}
	if inv.Address != nil {
		view.Address = mapAddress(inv.Address)
	}
	if inv.Items != nil {
		view.Items = mapItems(inv.Items)
	}
	if inv.Client != nil {
		client := &dto.ClientView{
			Name:  inv.Client.Name,
			Email: inv.Client.Email,
		}
		if inv.Client.Address != nil {
			client.Address = mapAddress(inv.Client.Address)
		}
		view.Client = client
	}
	if withLinks {
		view.Links = []dto.LinkView{selfLink(inv.ID)}
	}
	return view
}

// MapList proyecta la forma reducida de lista: por factura solo id, fecha,
// estado, cliente (nombre y email, sin dirección), líneas y plazo de pago,
// siempre con exactamente un link self (aquí no hay opt-out).
func MapList(invs []*entity.Invoice) []dto.InvoiceListEntry {
	out := make([]dto.InvoiceListEntry, 0, len(invs))
	for _, inv := range invs {
		entry := dto.InvoiceListEntry{
			ID:     inv.ID,
			Date:   inv.Date.UnixMilli(),
			Status: inv.Status,
			Items:  mapItems(inv.Items),
			Payment: dto.PaymentView{
				Key:  inv.PaymentTerms,
				Text: entity.PaymentTermsLabel(inv.PaymentTerms),
			},
			Links: []dto.LinkView{selfLink(inv.ID)},
		}
		if inv.Client != nil {
			entry.Client = dto.ClientView{
				Name:  inv.Client.Name,
				Email: inv.Client.Email,
			}
		}
		out = append(out, entry)
	}
	return out
}

func mapAddress(a *entity.Address) *dto.AddressView {
	return &dto.AddressView{
		Street:   a.Street,
		City:     a.City,
		Country:  a.Country,
		PostCode: a.PostCode,
	}
}

func mapItems(items []*entity.Item) []dto.ItemView {
	if items == nil {
		return nil
	}
	out := make([]dto.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemView{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return out
}
