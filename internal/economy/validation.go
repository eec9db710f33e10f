package economy

import (
	"fmt"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// validateQuantity checks that a purchase quantity is within bounds.
func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", domain.ErrInvalidInput, quantity)
	}
	if quantity > domain.MaxTransactionQuantity {
		return fmt.Errorf("%w: quantity %d exceeds maximum of %d", domain.ErrInvalidInput, quantity, domain.MaxTransactionQuantity)
	}
	return nil
}
