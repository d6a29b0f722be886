package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"github.com/segmentio/kafka-go"
)

// LoanWriter stores loan requests.
type LoanWriter interface {
	Save(ctx context.Context, userID int64, amount, weeks float64, state models.LoanState) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LoanService creates loan requests and announces them on Kafka.
type LoanService struct {
	writer      LoanWriter
	kafkaWriter KafkaWriter
	userID      int64
}

// NewLoanService creates a new LoanService. Every loan is recorded against
// placeholderUserID until requests carry an authenticated principal.
// kafkaWriter may be nil.
func NewLoanService(writer LoanWriter, kafkaWriter KafkaWriter, placeholderUserID int64) *LoanService {
	return &LoanService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		userID:      placeholderUserID,
	}
}

// CreateLoan stores a PENDING loan request and returns its identifier.
func (s *LoanService) CreateLoan(ctx context.Context, amount, weeks float64) (int64, error) {
	id, err := s.writer.Save(ctx, s.userID, amount, weeks, models.LoanStatePending)
	if err != nil {
		logger.Log.Errorw("failed to save loan request", "userID", s.userID, "amount", amount, "weeks", weeks, "error", err)
		return 0, err
	}

	s.publishLoanRequest(ctx, models.LoanRequestEvent{
		LoanID:    id,
		UserID:    s.userID,
		Amount:    amount,
		Weeks:     weeks,
		State:     models.LoanStatePending,
		Timestamp: time.Now().Unix(),
	})

	return id, nil
}

// publishLoanRequest publishes a loan event to Kafka.
func (s *LoanService) publishLoanRequest(ctx context.Context, event models.LoanRequestEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "loan_id", event.LoanID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal loan event for Kafka", "loan_id", event.LoanID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.LoanID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish loan event to Kafka", "loan_id", event.LoanID, "error", err)
	} else {
		logger.Log.Infow("Loan event published to Kafka", "loan_id", event.LoanID, "amount", event.Amount)
	}
}
