package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvcPattern        = regexp.MustCompile(`^\d{3}$`)
	expirationPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

	// A name part: capitalized word, optionally hyphen-composed, accented
	// Latin letters included.
	cardNamePart    = `[A-ZÀ-ÖÙ-ÝÇ][a-zà-öù-ÿç]+(?:-[A-ZÀ-ÖÙ-ÝÇ][a-zà-öù-ÿç]+)*`
	cardNamePattern = regexp.MustCompile(`^` + cardNamePart + `( ` + cardNamePart + `)+$`)
)

type CartItem struct {
	IDEvent *uint `json:"id_event"`
	IDOffer *uint `json:"id_offer"`
}

// PaymentRequest is the card-like payload accepted by the mock payment
// intake. No payment network is ever contacted; this is format validation
// only, the booking ledger does the rest.
type PaymentRequest struct {
	CardNumber     string     `json:"card_number"`
	CardName       string     `json:"card_name"`
	ExpirationDate string     `json:"expiration_date"`
	CVC            string     `json:"cvc"`
	Cart           []CartItem `json:"cart"`
}

// Validate runs every card and cart rule, collecting failures per field.
func (r PaymentRequest) Validate(now time.Time) Errors {
	errs := NewErrors()

	validateCardNumber(r.CardNumber, errs)
	validateCardName(r.CardName, errs)
	validateExpirationDate(r.ExpirationDate, now, errs)
	validateCVC(r.CVC, errs)
	validateCart(r.Cart, errs)

	return errs
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}

func validateCardNumber(value string, errs Errors) {
	if value == "" {
		errs.Add("card_number", "Card number is required.")
		return
	}

	sanitized := strings.ReplaceAll(value, " ", "")
	if !cardNumberPattern.MatchString(sanitized) {
		errs.Add("card_number", "Card number must contain exactly 16 digits.")
		return
	}
	if allSameDigit(sanitized) {
		errs.Add("card_number", "Card number cannot be made of identical digits.")
	}
}

func validateCardName(value string, errs Errors) {
	if value == "" {
		errs.Add("card_name", "Card name is required.")
		return
	}
	if strings.TrimSpace(value) != value {
		errs.Add("card_name", "Card name must not start or end with a space.")
		return
	}

	parts := strings.Split(value, " ")
	if len(parts) < 2 {
		errs.Add("card_name", "Card name must contain a first name and a last name, separated by a space.")
		return
	}
	for _, part := range parts {
		if len([]rune(part)) < 2 {
			errs.Add("card_name", "Each part of the name must contain at least 2 letters.")
			return
		}
	}
	if !cardNamePattern.MatchString(value) {
		errs.Add("card_name", "Card name must be capitalized first and last names, separated by a space.")
	}
}

func validateExpirationDate(value string, now time.Time, errs Errors) {
	if value == "" {
		errs.Add("expiration_date", "Expiration date is required.")
		return
	}
	if !expirationPattern.MatchString(value) {
		errs.Add("expiration_date", "Expiration date format must be YYYY-MM.")
		return
	}

	year, _ := strconv.Atoi(value[:4])
	month, _ := strconv.Atoi(value[5:])
	if month < 1 || month > 12 {
		errs.Add("expiration_date", "Invalid expiration date.")
		return
	}

	currentYear, currentMonth := now.Year(), int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		errs.Add("expiration_date", "Expiration date cannot be in the past.")
		return
	}
	if year > currentYear+6 || (year == currentYear+6 && month > currentMonth) {
		errs.Add("expiration_date", "Expiration date cannot be more than 6 years in the future.")
	}
}

func validateCVC(value string, errs Errors) {
	if value == "" {
		errs.Add("cvc", "CVC is required.")
		return
	}

	sanitized := strings.ReplaceAll(value, " ", "")
	if !cvcPattern.MatchString(sanitized) {
		errs.Add("cvc", "CVC must contain exactly 3 digits.")
		return
	}
	if allSameDigit(sanitized) {
		errs.Add("cvc", "CVC cannot be made of identical digits.")
	}
}

func validateCart(cart []CartItem, errs Errors) {
	if len(cart) == 0 {
		errs.Add("cart", "The cart is empty.")
		return
	}
	for _, item := range cart {
		if item.IDEvent == nil || item.IDOffer == nil {
			errs.Add("cart", "Each cart item must reference an event and an offer.")
			return
		}
	}
}
