package billing

import (
	"github.com/shopspring/decimal"

	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
)

// ItemUpsert operación sobre una línea. ID no vacío actualiza la línea
// existente con ese ID; ID vacío inserta una línea nueva con ID asignado
// por el servidor.
type ItemUpsert struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// ItemOps conjunto de operaciones calculado por ReconcileItems.
// Delete debe aplicarse antes que Upsert.
type ItemOps struct {
	Delete []string
	Upsert []ItemUpsert
}

// ReconcileItems calcula las operaciones mínimas para converger las líneas
// almacenadas con las enviadas por el cliente. Función pura: no toca
// almacenamiento, eso lo hace el orquestador de la actualización.
//
// Política (asimétrica a propósito):
//   - patch ausente: no se toca nada.
//   - patch presente y vacío: se marcan para borrado todas las líneas
//     almacenadas (señal explícita de "vaciar").
//   - patch presente y con contenido: el envío es el conjunto autoritativo.
//     Toda línea almacenada cuyo ID no aparece en el envío se borra; cada
//     línea enviada se convierte en upsert. El emparejamiento es solo por
//     ID, sin coincidencia difusa por nombre o precio.
//
// Un ID enviado que no corresponde a ninguna línea almacenada se trata como
// inserción con ID nuevo asignado por el servidor: el upsert sale con ID
// vacío y el ID del cliente se descarta, así nunca se cuelan IDs elegidos
// por el caller.
func ReconcileItems(stored []*entity.Item, patch ItemsPatch) ItemOps {
	var ops ItemOps
	if !patch.Present {
		return ops
	}

	if len(patch.Items) == 0 {
		for _, s := range stored {
			ops.Delete = append(ops.Delete, s.ID)
		}
		return ops
	}

	submitted := make(map[string]struct{}, len(patch.Items))
	for _, in := range patch.Items {
		if in.ID != "" {
			submitted[in.ID] = struct{}{}
		}
	}
	storedIDs := make(map[string]struct{}, len(stored))
	for _, s := range stored {
		storedIDs[s.ID] = struct{}{}
		if _, ok := submitted[s.ID]; !ok {
			ops.Delete = append(ops.Delete, s.ID)
		}
	}

	ops.Upsert = make([]ItemUpsert, 0, len(patch.Items))
	for _, in := range patch.Items {
		id := in.ID
		if _, ok := storedIDs[id]; !ok {
			id = "" // ID desconocido o ausente: inserción con ID del servidor
		}
		ops.Upsert = append(ops.Upsert, ItemUpsert{
			ID:       id,
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
		})
	}
	return ops
}
