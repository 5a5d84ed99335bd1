package usecase

import (
	"fmt"
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// ValidateProposalForSending checks every rule a proposal must satisfy before it is
// sent and reports all violations, not just the first.
func ValidateProposalForSending(p entities.Proposal) entities.ProposalValidation {
	errs := make([]string, 0)

	if len(p.LineItems) == 0 {
		errs = append(errs, "proposal must have at least one line item")
	}

	sum := decimal.Zero
	for i, it := range p.LineItems {
		n := i + 1
		if strings.TrimSpace(it.Description) == "" {
			errs = append(errs, fmt.Sprintf("line item %d: description is required", n))
		}
		if it.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("line item %d: quantity must be greater than zero", n))
		}
		if it.UnitPrice <= 0 {
			errs = append(errs, fmt.Sprintf("line item %d: unit price must be greater than zero", n))
		}
		expected := decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice))
		total := decimal.NewFromFloat(it.Total)
		if !pricing.WithinTolerance(total, expected) {
			errs = append(errs, fmt.Sprintf("line item %d: total does not match quantity x unit price", n))
		}
		sum = sum.Add(total)
	}

	if len(p.LineItems) > 0 && !pricing.WithinTolerance(sum, decimal.NewFromFloat(p.TotalAmount)) {
		errs = append(errs, "total does not match sum of line items")
	}

	return entities.ProposalValidation{Valid: len(errs) == 0, Errors: errs}
}

// ProposalValidationError carries every validation message alongside the sentinel
// that classifies the failure (ErrMissingLineItems, ErrInvalidTotal, ErrInvalidProposal).
type ProposalValidationError struct {
	Reason   error
	Problems []string
}

func (e *ProposalValidationError) Error() string {
	if len(e.Problems) == 0 {
		return e.Reason.Error()
	}
	return e.Reason.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ProposalValidationError) Unwrap() error {
	return e.Reason
}

// normalizeLineItems trims descriptions and fills totals the caller left empty.
func normalizeLineItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		it.Description = strings.TrimSpace(it.Description)
		if it.Total == 0 {
			it.Total = decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice)).Round(2).InexactFloat64()
		}
		out = append(out, it)
	}
	return out
}

func sumLineItems(items []entities.LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Total))
	}
	return sum.Round(2).InexactFloat64()
}
