package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services
//go:generate mockgen -source=loan.go -destination=mock_loan.go -package=services
