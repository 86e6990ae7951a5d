package valueobjects

import "fmt"

// Origin records which side created a subscription: the admin workspace
// or customer self-service.
type Origin string

const (
	OriginAdmin    Origin = "admin"
	OriginCustomer Origin = "customer"
)

func NewOrigin(origin string) (Origin, error) {
	o := Origin(origin)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid subscription origin: %s", origin)
	}
	return o, nil
}

func (o Origin) IsValid() bool {
	return o == OriginAdmin || o == OriginCustomer
}

func (o Origin) String() string {
	return string(o)
}
