package dto

import "time"

// Los nombres JSON son los del API original en italiano (nome, quantita, ...):
// el frontend existente depende de ellos.

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string `json:"nome"`
	Quantity    *int   `json:"quantita"`
	MinQuantity *int   `json:"quantitaMinima"`
	Unit        string `json:"unitaMisura"`
}

// UpdateProductRequest entrada para actualizar un producto (patch parcial:
// solo los campos presentes se aplican).
type UpdateProductRequest struct {
	Name        *string `json:"nome"`
	Quantity    *int    `json:"quantita"`
	MinQuantity *int    `json:"quantitaMinima"`
	Unit        *string `json:"unitaMisura"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Quantity    int       `json:"quantita"`
	MinQuantity int       `json:"quantitaMinima"`
	Unit        string    `json:"unitaMisura"`
	CreatedAt   time.Time `json:"createdAt"`
}
