package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username *string `json:"username"`

	// Password
	// required: true
	// example: pw1
	Password *string `json:"password"`
}

// MessageResponse is the body of every JSON response from POST /login and of
// the validation failures of POST /loans.
// swagger:model MessageResponse
type MessageResponse struct {
	// Result message
	// example: Login Successful!
	Message string `json:"message"`
}

// Messages returned by POST /login.
const (
	LoginSuccessMessage         = "Login Successful!"
	LoginInvalidUserMessage     = "Invalid User!"
	LoginInvalidPasswordMessage = "Invalid Password!"
	LoginInvalidBodyMessage     = "Invalid request body"
	LoginInternalErrorMessage   = "Internal Server Error"
)
