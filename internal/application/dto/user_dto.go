package dto

// RegisterRequest entrada para registrar un usuario (campos del API original).
type RegisterRequest struct {
	FirstName string `json:"nomeUtente"`
	LastName  string `json:"cognomeUtente"`
	Email     string `json:"mailUtente"`
	Password  string `json:"passwordUtente"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"mailUtente"`
	Password string `json:"passwordUtente"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"nomeUtente"`
	LastName  string `json:"cognomeUtente"`
	Email     string `json:"mailUtente"`
}

// LoginResponse salida del login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"utente"`
}
