package models

// AuthResponse is returned by POST /signup and POST /login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the body of every non-2xx answer of the server.
// Clients surface Message to the user.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
