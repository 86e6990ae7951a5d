package valueobjects

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed
}

func (s TransactionStatus) IsSuccess() bool {
	return s == TransactionStatusSuccess
}

func (s TransactionStatus) String() string {
	return string(s)
}
