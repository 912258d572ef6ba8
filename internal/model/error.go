package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeInvalidBankName   = "INVALID_BANK_NAME"
	ErrCodeInvalidInstrument = "INVALID_PAYMENT_INSTRUMENT"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a machine-readable code alongside the message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingPayload    = NewDomainError(ErrCodeMissingField, "flipkartOfferApiResponse is required")
	ErrInvalidAmount     = NewDomainError(ErrCodeInvalidAmount, "amountToPay must be a number greater than 0")
	ErrInvalidBankName   = NewDomainError(ErrCodeInvalidBankName, "bankName must be at least 2 characters")
	ErrInvalidInstrument = NewDomainError(ErrCodeInvalidInstrument, "paymentInstrument is not a recognised instrument")
)
