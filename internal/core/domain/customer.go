package domain

import "github.com/shopspring/decimal"

// CustomerTier classifies a customer for discount purposes. The tier set is
// closed; each tier is just a fixed discount rate, so the classification
// collapses to data rather than behavior.
type CustomerTier string

const (
	TierNew       CustomerTier = "NEW"
	TierReturning CustomerTier = "RETURNING"
	TierVIP       CustomerTier = "VIP"
)

var tierDiscountRates = map[CustomerTier]decimal.Decimal{
	TierNew:       decimal.Zero,
	TierReturning: decimal.NewFromFloat(0.10),
	TierVIP:       decimal.NewFromFloat(0.30),
}

// ParseCustomerTier maps a tier keyword onto the closed tier enum.
// Returns false when the keyword is not a known tier.
func ParseCustomerTier(token string) (CustomerTier, bool) {
	switch CustomerTier(token) {
	case TierNew, TierReturning, TierVIP:
		return CustomerTier(token), true
	}
	return "", false
}

// DiscountRate returns the fixed discount rate for the tier.
// Unknown tiers get no discount.
func (t CustomerTier) DiscountRate() decimal.Decimal {
	if rate, ok := tierDiscountRates[t]; ok {
		return rate
	}
	return decimal.Zero
}

// FinalPrice applies the tier's discount to a pre-discount total:
// total × (1 − rate).
func (t CustomerTier) FinalPrice(total decimal.Decimal) decimal.Decimal {
	return total.Mul(decimal.NewFromInt(1).Sub(t.DiscountRate()))
}

// Customer represents a registered customer. Customers are immutable after
// creation; the id namespace is global and permanent (an id is never reused,
// even if the record were removed elsewhere).
type Customer struct {
	CustomerID string       `json:"customerID"` // 9-digit id, globally unique
	Name       string       `json:"name"`       // Letters and spaces, at least 2 characters
	Phone      string       `json:"phone"`      // 10-digit
	Tier       CustomerTier `json:"tier"`
	AuditFields
}
