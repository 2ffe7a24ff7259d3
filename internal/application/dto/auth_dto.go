package dto

// AdminLoginRequest credenciales del admin.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse tokens emitidos en el login. SessionToken viaja solo en la cookie.
type AdminLoginResponse struct {
	Token        string `json:"token"`
	SessionToken string `json:"-"`
}
