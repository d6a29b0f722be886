package models

// SignupRequest represents the JSON body for user signup.
// Fields are pointers so an absent field can be told apart from an empty one.
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// example: alice
	Username *string `json:"username"`

	// Email
	// required: true
	// example: a@x.com
	Email *string `json:"email"`

	// Password
	// required: true
	// example: pw1
	Password *string `json:"password"`
}

// Plain-text bodies returned by POST /signup.
const (
	SignupCreatedText       = "User added successfully"
	SignupUserExistsText    = "User already exists"
	SignupInvalidBodyText   = "Invalid request body"
	SignupInternalErrorText = "Internal Server Error"
)
