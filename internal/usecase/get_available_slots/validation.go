package get_available_slots

import "fmt"

// validateRequest проверяет обязательные поля запроса
func validateRequest(req Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PackOfferID <= 0 {
		return fmt.Errorf("%w: pack_offer_id must be positive", ErrInvalidInput)
	}

	return nil
}
