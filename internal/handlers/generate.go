package handlers

//go:generate mockgen -source=signup.go -destination=mock_signup.go -package=handlers
//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers
//go:generate mockgen -source=loan.go -destination=mock_loan.go -package=handlers
