package billing

import "errors"

var (
	ErrBillNotFound        = errors.New("bill not found")
	ErrBillAlreadyExists   = errors.New("bill already exists for this cycle")
	ErrTransactionNotFound = errors.New("transaction not found")
)
