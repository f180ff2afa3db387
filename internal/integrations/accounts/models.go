package accounts

// Logger is the minimal logging surface the client needs.
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Customer is the accounts service profile used for booking and payments.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
}
