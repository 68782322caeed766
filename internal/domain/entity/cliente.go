package entity

import "time"

// Cliente representa un cliente de la tienda. Compras y Alquileres son
// historial desnormalizado: IDs de transacciones, mantenidos por el caso
// de uso de ventas en ambos backends.
type Cliente struct {
	ID         string
	Nombre     string
	Email      string
	Telefono   string
	Direccion  string
	Ciudad     string
	Compras    []string // IDs de transacciones tipo venta
	Alquileres []string // IDs de transacciones tipo alquiler
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
