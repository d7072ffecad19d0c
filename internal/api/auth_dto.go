package api

// AdminLoginRequest is the payload for POST /v1/admin/auth.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse is the response for POST /v1/admin/auth.
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
