package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waleed-alfaifi/invoices-api/internal/domain/billing"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
)

func storedItems(ids ...string) []*entity.Item {
	out := make([]*entity.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Item{ID: id, InvoiceID: "inv-1", Name: "item " + id})
	}
	return out
}

// Campo items ausente: no se toca nada.
func TestReconcileItems_PatchAusente_NoHaceNada(t *testing.T) {
	ops := billing.ReconcileItems(storedItems("1"), billing.ItemsPatch{Present: false})

	assert.Empty(t, ops.Delete, "sin patch no debe borrarse nada")
	assert.Empty(t, ops.Upsert, "sin patch no debe haber upserts")
}

// Lista vacía enviada explícitamente: borrar todas las líneas almacenadas.
func TestReconcileItems_ListaVacia_BorraTodo(t *testing.T) {
	ops := billing.ReconcileItems(storedItems("1", "2"), billing.ItemsPatch{Present: true})

	assert.ElementsMatch(t, []string{"1", "2"}, ops.Delete)
	assert.Empty(t, ops.Upsert)
}

// Lista vacía sin líneas almacenadas: tampoco hay nada que borrar.
func TestReconcileItems_ListaVaciaSinAlmacenadas(t *testing.T) {
	ops := billing.ReconcileItems(nil, billing.ItemsPatch{Present: true, Items: []billing.ItemInput{}})

	assert.Empty(t, ops.Delete)
	assert.Empty(t, ops.Upsert)
}

// El envío no vacío es el conjunto autoritativo: lo no reenviado se borra,
// lo reenviado con ID se actualiza.
func TestReconcileItems_OmitirLineaLaBorra(t *testing.T) {
	ops := billing.ReconcileItems(storedItems("1", "2"), billing.ItemsPatch{
		Present: true,
		Items:   []billing.ItemInput{{ID: "1", Name: "X"}},
	})

	assert.Equal(t, []string{"2"}, ops.Delete)
	require.Len(t, ops.Upsert, 1)
	assert.Equal(t, "1", ops.Upsert[0].ID)
	assert.Equal(t, "X", ops.Upsert[0].Name)
}

// Mezcla de actualización (con ID) e inserción (sin ID), en el orden enviado.
func TestReconcileItems_UpdateMasCreate(t *testing.T) {
	ops := billing.ReconcileItems(storedItems("1"), billing.ItemsPatch{
		Present: true,
		Items: []billing.ItemInput{
			{ID: "1"},
			{Name: "New", Price: decimal.NewFromInt(5), Quantity: 2},
		},
	})

	assert.Empty(t, ops.Delete)
	require.Len(t, ops.Upsert, 2)
	assert.Equal(t, "1", ops.Upsert[0].ID, "la primera operación actualiza la línea 1")
	assert.Equal(t, "", ops.Upsert[1].ID, "la segunda operación es una inserción")
	assert.Equal(t, "New", ops.Upsert[1].Name)
	assert.Equal(t, 2, ops.Upsert[1].Quantity)
}

// Un ID enviado que no existe entre las líneas almacenadas toma la ruta de
// creación: el ID del cliente se descarta y el servidor asigna uno nuevo.
func TestReconcileItems_IDDesconocidoEsInsercion(t *testing.T) {
	ops := billing.ReconcileItems(storedItems("1"), billing.ItemsPatch{
		Present: true,
		Items: []billing.ItemInput{
			{ID: "1", Name: "A"},
			{ID: "999", Name: "B"},
		},
	})

	assert.Empty(t, ops.Delete, "el ID desconocido no protege ni borra nada")
	require.Len(t, ops.Upsert, 2)
	assert.Equal(t, "1", ops.Upsert[0].ID)
	assert.Equal(t, "", ops.Upsert[1].ID, "el ID 999 se descarta: inserción con ID nuevo")
	assert.Equal(t, "B", ops.Upsert[1].Name)
}

// El emparejamiento es solo por ID: mismo nombre y precio no evita el borrado.
func TestReconcileItems_SinCoincidenciaDifusa(t *testing.T) {
	stored := []*entity.Item{{ID: "1", Name: "Café", Price: decimal.NewFromInt(3), Quantity: 1}}
	ops := billing.ReconcileItems(stored, billing.ItemsPatch{
		Present: true,
		Items:   []billing.ItemInput{{Name: "Café", Price: decimal.NewFromInt(3), Quantity: 1}},
	})

	assert.Equal(t, []string{"1"}, ops.Delete, "sin ID no hay emparejamiento")
	require.Len(t, ops.Upsert, 1)
	assert.Equal(t, "", ops.Upsert[0].ID)
}

// La función es pura: no modifica las líneas almacenadas.
func TestReconcileItems_NoMutaEntrada(t *testing.T) {
	stored := storedItems("1", "2")
	_ = billing.ReconcileItems(stored, billing.ItemsPatch{Present: true})

	assert.Equal(t, "1", stored[0].ID)
	assert.Equal(t, "item 1", stored[0].Name)
}
