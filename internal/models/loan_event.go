package models

// LoanRequestEvent is published to Kafka after a loan request is stored.
type LoanRequestEvent struct {
	LoanID    int64     `json:"loan_id"`   // LoanID is the store-assigned identifier.
	UserID    int64     `json:"user_id"`   // UserID is the owner recorded on the row.
	Amount    float64   `json:"amount"`    // Amount is the requested principal.
	Weeks     float64   `json:"weeks"`     // Weeks is the requested duration.
	State     LoanState `json:"state"`     // State is always PENDING at creation.
	Timestamp int64     `json:"timestamp"` // Timestamp is the Unix time (seconds) of creation.
}
