package valueobjects

type BillStatus string

const (
	BillStatusUnpaid BillStatus = "unpaid"
	BillStatusPaid   BillStatus = "paid"
)

func (s BillStatus) IsValid() bool {
	return s == BillStatusUnpaid || s == BillStatusPaid
}

func (s BillStatus) IsPaid() bool {
	return s == BillStatusPaid
}

func (s BillStatus) String() string {
	return string(s)
}
