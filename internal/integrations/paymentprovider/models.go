package paymentprovider

// Logger is the minimal logging surface the client needs.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// InitializeRequest describes a payment to start at the provider.
type InitializeRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Reference   string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
}

// InitializeResult carries back the hosted checkout URL.
type InitializeResult struct {
	CheckoutURL string
	Reference   string
}

// VerifyResult is the provider's view of a transaction.
type VerifyResult struct {
	Reference string
	Amount    int64
	Currency  string
	Succeeded bool
}

type initializeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference string  `json:"tx_ref"`
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
		Status    string  `json:"status"`
	} `json:"data"`
}
