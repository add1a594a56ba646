package auth

type LoginRequest struct {
	// Password is checked against the shared hotel password when Email is
	// empty, and against the account's own password otherwise.
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember_me"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
	Username  string `json:"username"`
}

type MeResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}
