package entity

// User cuenta de la aplicación. En despliegues multi-tenant su ID actúa como
// OwnerID de productos y registros de consumo.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // único
	PasswordHash string
}
