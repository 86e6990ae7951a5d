package handlers

import (
	"time"

	"centime/internal/domain/billing"
	"centime/internal/shared/biztime"
	"centime/internal/shared/mapper"
)

type BillResponse struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	SubscriptionID *uint      `json:"subscription_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	AmountCents    int64      `json:"amount_cents"`
	Amount         string     `json:"amount"`
	Currency       string     `json:"currency"`
	DueDate        string     `json:"due_date"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toBillResponse(bill *billing.Bill) BillResponse {
	return BillResponse{
		ID:             bill.ID(),
		UserID:         bill.UserID(),
		SubscriptionID: bill.SubscriptionID(),
		Title:          bill.Title(),
		Description:    bill.Description(),
		AmountCents:    bill.Amount().AmountInCents(),
		Amount:         bill.Amount().String(),
		Currency:       bill.Amount().Currency(),
		DueDate:        biztime.FormatDate(bill.DueDate()),
		Category:       bill.Category().String(),
		Status:         bill.Status().String(),
		PaidAt:         bill.PaidAt(),
		CreatedAt:      bill.CreatedAt(),
	}
}

func toBillResponses(bills []*billing.Bill) []BillResponse {
	return mapper.MapSlice(bills, toBillResponse)
}

type TransactionResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	BillID      uint      `json:"bill_id"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentDate time.Time `json:"payment_date"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	ProcessedBy *uint     `json:"processed_by,omitempty"`
}

func toTransactionResponse(t *billing.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID(),
		UserID:      t.UserID(),
		BillID:      t.BillID(),
		AmountCents: t.Amount().AmountInCents(),
		Amount:      t.Amount().String(),
		Currency:    t.Amount().Currency(),
		PaymentDate: t.PaymentDate(),
		Method:      t.Method().String(),
		Status:      t.Status().String(),
		ProcessedBy: t.ProcessedBy(),
	}
}

func toTransactionResponses(transactions []*billing.Transaction) []TransactionResponse {
	return mapper.MapSlice(transactions, toTransactionResponse)
}
