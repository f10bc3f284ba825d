package hr

type HRResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

// SeedInput describes the bootstrap HR account created at startup.
type SeedInput struct {
	Name       string
	Email      string
	Password   string
	Department string
}
