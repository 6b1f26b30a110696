package sisrejection

// Shared printf-style message templates, used both by package code when
// wrapping errors with github.com/pkg/errors and by tests when comparing
// against expected failures.
const (
	InvalidIntParameterError    = "invalid %s %d, %s"
	InvalidFloatParameterError  = "invalid %s %f, %s"
	InvalidStringParameterError = "invalid %s %s, %s"

	UnequalIntParameterError    = "expected %s %d, instead got %d"
	UnequalFloatParameterError  = "expected %s %f, instead got %f"
	UnequalStringParameterError = "expected %s %s, instead got %s"

	FileParsingError = "error parsing line %d: %s"
)
