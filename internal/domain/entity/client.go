package entity

// Client representa el cliente facturado. Existe solo como sub-objeto de
// una factura (composición 1:1, no compartido) y posee su propia dirección.
type Client struct {
	ID        string
	Name      string
	Email     string
	AddressID string

	Address *Address // nil si no fue incluida en la consulta
}
