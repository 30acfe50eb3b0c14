package usecase

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	domainErrors "github.com/ptanasia/potrack/internal/domain/errors"
	"github.com/ptanasia/potrack/internal/domain/model"
)

const (
	dateLayout = "2006-01-02"

	// Order date must be at least this many calendar days ahead.
	minLeadDays = 7

	maxItemNameLen    = 100
	minItemQuantity   = 1
	maxItemQuantity   = 10000
	minItemPrice      = 1000
	itemPriceStep     = 1000
	minDescriptionLen = 5
	maxDescriptionLen = 500
)

// CreateOrderInput carries the submitted two-step form.
type CreateOrderInput struct {
	OrderNumber string
	OrderDate   string
	Department  string
	Items       []model.LineItem
}

// ValidateHeader checks the first form step: order date and department.
// The minimum date is computed in local calendar time; date strings in
// YYYY-MM-DD form compare lexicographically in calendar order.
func ValidateHeader(orderDate, department string, now time.Time) error {
	if orderDate == "" {
		return domainErrors.NewValidationError("orderDate", "must not be empty")
	}
	if _, err := time.ParseInLocation(dateLayout, orderDate, time.Local); err != nil {
		return domainErrors.NewValidationError("orderDate", "must be a calendar date in YYYY-MM-DD form")
	}

	minDate := now.AddDate(0, 0, minLeadDays).Format(dateLayout)
	if orderDate < minDate {
		return domainErrors.NewValidationError("orderDate", "must be at least 7 days ahead")
	}

	if department == "" {
		return domainErrors.NewValidationError("department", "must be selected")
	}
	if !model.ValidDepartment(department) {
		return domainErrors.NewValidationError("department", "is not a known department")
	}

	return nil
}

// ValidateItems checks the second form step. The first offending item is
// reported by its 1-based position.
func ValidateItems(items []model.LineItem) error {
	if len(items) == 0 {
		return domainErrors.NewValidationError("items", "at least one line item is required")
	}

	for i, item := range items {
		pos := i + 1

		if item.Name == "" {
			return domainErrors.NewItemValidationError(pos, "name", "must not be empty")
		}
		if utf8.RuneCountInString(item.Name) > maxItemNameLen {
			return domainErrors.NewItemValidationError(pos, "name", "must be at most 100 characters")
		}

		if item.Quantity < minItemQuantity || item.Quantity > maxItemQuantity {
			return domainErrors.NewItemValidationError(pos, "quantity", "must be between 1 and 10000")
		}

		if item.Price < minItemPrice {
			return domainErrors.NewItemValidationError(pos, "price", "must be at least 1000")
		}
		if item.Price%itemPriceStep != 0 {
			return domainErrors.NewItemValidationError(pos, "price", "must be a multiple of 1000")
		}

		if item.Unit == "" {
			return domainErrors.NewItemValidationError(pos, "unit", "must be selected")
		}
		if !model.ValidUnit(item.Unit) {
			return domainErrors.NewItemValidationError(pos, "unit", "is not a known unit")
		}

		description := strings.TrimSpace(item.Description)
		if utf8.RuneCountInString(description) < minDescriptionLen {
			return domainErrors.NewItemValidationError(pos, "description", "must be at least 5 characters")
		}
		if utf8.RuneCountInString(description) > maxDescriptionLen {
			return domainErrors.NewItemValidationError(pos, "description", "must be at most 500 characters")
		}
		if onlyDigits(description) {
			return domainErrors.NewItemValidationError(pos, "description", "must not consist solely of digits")
		}
	}

	return nil
}

// ValidateOrder runs the full submission pass: both form steps in order.
func ValidateOrder(in CreateOrderInput, now time.Time) error {
	if err := ValidateHeader(in.OrderDate, in.Department, now); err != nil {
		return err
	}
	return ValidateItems(in.Items)
}

// onlyDigits reports whether the string, ignoring internal whitespace,
// is non-empty and composed solely of decimal digits.
func onlyDigits(s string) bool {
	seen := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
		seen = true
	}
	return seen
}
