package transport

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse pairs the authenticated profile with the API token.
type LoginResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// ApproveUserRequest carries the admin-chosen membership tier, which may
// differ from the one requested at signup.
type ApproveUserRequest struct {
	Classe string `json:"classe"`
}
