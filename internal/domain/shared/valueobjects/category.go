package valueobjects

import "fmt"

// Category tags bills and subscriptions for reporting.
type Category string

const (
	CategoryElectricity  Category = "electricity"
	CategoryFees         Category = "fees"
	CategorySubscription Category = "subscription"
	CategoryOther        Category = "other"
)

// DefaultCategory is applied when a subscription carries no category tag.
const DefaultCategory = CategorySubscription

func NewCategory(category string) (Category, error) {
	c := Category(category)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", category)
	}
	return c, nil
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryElectricity, CategoryFees, CategorySubscription, CategoryOther:
		return true
	default:
		return false
	}
}

// OrDefault returns the category, falling back to DefaultCategory when unset.
func (c Category) OrDefault() Category {
	if c == "" {
		return DefaultCategory
	}
	return c
}

func (c Category) String() string {
	return string(c)
}
