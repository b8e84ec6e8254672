package request

// Presence of every field is checked by the desk so the client gets the
// "Missing Information" answer rather than a binding error.
type RegisterCustomerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
