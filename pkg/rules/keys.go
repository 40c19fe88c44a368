package rules

// Error-message keys reported by the built-in rules.
const (
	KeyMandatoryField      = "MANDATORY_FIELD"
	KeyMinLengthNotReached = "MIN_LENGTH_NOT_REACHED"
	KeyMaxLengthExceeded   = "MAX_LENGTH_EXCEEDED"
	KeyRegexNotSatisfied   = "REGEX_NOT_SATISFIED"
	KeyValueTooSmall       = "VALUE_TOO_SMALL"
	KeyValueTooLarge       = "VALUE_TOO_LARGE"
	KeyTagNotSatisfied     = "TAG_NOT_SATISFIED"
)

// TextKeys lists the keys a catalog needs to back every text rule.
func TextKeys() []string {
	return []string{KeyMandatoryField, KeyMinLengthNotReached, KeyMaxLengthExceeded, KeyRegexNotSatisfied}
}
