package invoicing

import (
	"context"
	"time"

	"github.com/waleed-alfaifi/invoices-api/internal/application/dto"
	"github.com/waleed-alfaifi/invoices-api/internal/domain"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/billing"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/repository"
)

// UseCase casos de uso de facturas: consulta, creación, actualización y
// borrado lógico. Sin estado por petición: una sola instancia compartida.
type UseCase struct {
	repo     repository.InvoiceRepository
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InvoiceRepository, txRunner TxRunner) *UseCase {
	return &UseCase{repo: repo, txRunner: txRunner}
}

// Get devuelve la factura con su grafo completo, o ErrNotFound si no
// existe o está borrada lógicamente.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SingleInvoiceView, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return MapSingle(inv, false), nil
}

// ListByOwner devuelve las facturas no borradas del usuario en la forma
// reducida de lista.
func (uc *UseCase) ListByOwner(ctx context.Context, userID string) ([]dto.InvoiceListEntry, error) {
	invs, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return MapList(invs), nil
}

// Create persiste una factura nueva con su grafo completo (direcciones,
// cliente, líneas) en una sola transacción y devuelve la vista individual
// con su link self.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.SingleInvoiceView, error) {
	inv := &entity.Invoice{
		UserID:       userID,
		Date:         time.UnixMilli(in.Date),
		Description:  in.Description,
		PaymentTerms: in.Payment, // vacío: la capa de persistencia asigna el default
		Status:       in.Status,
		Address: &entity.Address{
			Street:   in.Address.Street,
			City:     in.Address.City,
			Country:  in.Address.Country,
			PostCode: in.Address.PostCode,
		},
		Client: &entity.Client{
			Name:  in.Client.Name,
			Email: in.Client.Email,
			Address: &entity.Address{
				Street:   in.Client.Address.Street,
				City:     in.Client.Address.City,
				Country:  in.Client.Address.Country,
				PostCode: in.Client.Address.PostCode,
			},
		},
	}
	for _, it := range in.Items {
		inv.Items = append(inv.Items, &entity.Item{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	err := uc.txRunner.RunInvoicing(ctx, func(repo repository.InvoiceRepository) error {
		return repo.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	return MapSingle(inv, true), nil
}

// Update aplica un parche disperso sobre la factura: reconcilia las líneas
// enviadas contra las almacenadas, aplica borrados y luego upserts, parchea
// cabecera, dirección y cliente, y devuelve la factura releída con el grafo
// completo. Todos los pasos corren dentro de una única transacción: un fallo
// en cualquiera revierte el conjunto.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.SingleInvoiceView, error) {
	patch := toInvoicePatch(in)
	itemsPatch := toItemsPatch(in.Items)

	var updated *entity.Invoice
	err := uc.txRunner.RunInvoicing(ctx, func(repo repository.InvoiceRepository) error {
		stored, err := repo.ListItems(ctx, id)
		if err != nil {
			return err
		}

		ops := billing.ReconcileItems(stored, itemsPatch)

		// Borrados antes que inserciones: las líneas no reenviadas salen
		// primero y ningún upsert puede chocar con un ID a punto de morir.
		if len(ops.Delete) > 0 {
			if err := repo.DeleteItems(ctx, id, ops.Delete); err != nil {
				return err
			}
		}
		for _, up := range ops.Upsert {
			item := &entity.Item{
				ID:        up.ID,
				InvoiceID: id,
				Name:      up.Name,
				Price:     up.Price,
				Quantity:  up.Quantity,
			}
			if up.ID == "" {
				err = repo.CreateItem(ctx, item)
			} else {
				err = repo.UpdateItem(ctx, item)
			}
			if err != nil {
				return err
			}
		}

		// El parche de cabecera detecta también el not-found: una factura
		// inexistente o borrada lógicamente no empareja ninguna fila.
		if err := repo.UpdateFields(ctx, id, patch); err != nil {
			return err
		}

		updated, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return MapSingle(updated, false), nil
}

// SoftDelete marca la factura como borrada y devuelve el nuevo valor del
// flag. La factura sigue existiendo en almacenamiento; desaparece de Get y
// ListByOwner.
func (uc *UseCase) SoftDelete(ctx context.Context, id string) (bool, error) {
	return uc.repo.SoftDelete(ctx, id)
}

func toInvoicePatch(in dto.UpdateInvoiceRequest) billing.InvoicePatch {
	patch := billing.InvoicePatch{
		Description:  in.Description,
		Status:       in.Status,
		PaymentTerms: in.Payment,
	}
	if in.Date != nil {
		d := time.UnixMilli(*in.Date)
		patch.Date = &d
	}
	if in.Address != nil {
		patch.Address = toAddressPatch(in.Address)
	}
	if in.Client != nil {
		patch.Client = &billing.ClientPatch{
			Name:  in.Client.Name,
			Email: in.Client.Email,
		}
		if in.Client.Address != nil {
			patch.Client.Address = toAddressPatch(in.Client.Address)
		}
	}
	return patch
}

func toAddressPatch(in *dto.AddressPatchRequest) *billing.AddressPatch {
	return &billing.AddressPatch{
		Street:   in.Street,
		City:     in.City,
		Country:  in.Country,
		PostCode: in.PostCode,
	}
}

func toItemsPatch(items *[]dto.UpdateItemRequest) billing.ItemsPatch {
	if items == nil {
		return billing.ItemsPatch{}
	}
	patch := billing.ItemsPatch{Present: true, Items: make([]billing.ItemInput, 0, len(*items))}
	for _, it := range *items {
		patch.Items = append(patch.Items, billing.ItemInput{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return patch
}
