package entity

// Address dirección postal. Cada factura tiene dos instancias
// independientes: la del emisor y la del cliente.
type Address struct {
	ID       string
	Street   string
	City     string
	Country  string
	PostCode string
}
