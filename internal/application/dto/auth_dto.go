package dto

// LoginRequest credencial del back-office.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult resultado estructurado del login: el fallo de autenticación
// no es un error, es un resultado con Success=false y mensaje legible.
type LoginResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
}
