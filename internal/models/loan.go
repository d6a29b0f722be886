package models

// LoanState is the lifecycle state of a loan request.
type LoanState string

// LoanStatePending is the only state a loan request is created in.
const LoanStatePending LoanState = "PENDING"

// LoanDB represents a row of the loanlist table.
type LoanDB struct {
	ID     int64     `json:"id" db:"id"`
	UserID int64     `json:"user_id" db:"user_id"`
	Amount float64   `json:"amount" db:"amount"`
	Weeks  float64   `json:"weeks" db:"weeks"`
	State  LoanState `json:"state" db:"state"`
}

// LoanCreateRequest documents the JSON body for creating a loan request.
// Both fields accept numbers or numeric strings.
// swagger:model LoanCreateRequest
type LoanCreateRequest struct {
	// Loan amount
	// required: true
	// example: 500
	Amount any `json:"amount" swaggertype:"number"`

	// Loan duration in weeks
	// required: true
	// example: 8
	Weeks any `json:"weeks" swaggertype:"number"`
}

// LoanCreateResponse represents a successfully created loan request.
// swagger:model LoanCreateResponse
type LoanCreateResponse struct {
	// Success message
	// example: Loan request created successfully
	Message string `json:"message"`

	// Store-assigned loan identifier
	// example: 1
	LoanID int64 `json:"loan_id"`
}

// LoanErrorResponse represents a store failure while creating a loan request.
// swagger:model LoanErrorResponse
type LoanErrorResponse struct {
	// Error message
	// example: Error creating loan request
	Message string `json:"message"`

	// Underlying failure text
	Error string `json:"error"`
}

// Messages returned by POST /loans.
const (
	LoanCreatedMessage       = "Loan request created successfully"
	LoanMissingFieldsMessage = "Missing required fields"
	LoanInvalidTypeMessage   = "Invalid data types provided"
	LoanInvalidBodyMessage   = "Invalid request body"
	LoanCreateErrorMessage   = "Error creating loan request"
)
