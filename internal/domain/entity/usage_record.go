package entity

import "time"

// UsageRecord es el registro de auditoría inmutable de un consumo.
// ProductName es un snapshot deliberado del nombre al momento del consumo y
// nunca se resincroniza: si el producto se renombra (o se elimina) después,
// el histórico conserva el nombre bajo el cual se consumió.
type UsageRecord struct {
	ID           string
	OwnerID      string // vacío en despliegues single-tenant
	ProductID    string
	ProductName  string
	QuantityUsed int // siempre > 0
	UsedAt       time.Time
}
