package cfgloader

// Error codes for configuration loading.
const (
	// CodeInvalidEnvironment is returned when ENVIRONMENT is unset or unknown.
	CodeInvalidEnvironment = "INVALID_ENVIRONMENT"

	// CodeConfigNotFound is returned when ${ENVIRONMENT}.yaml does not exist.
	CodeConfigNotFound = "CONFIG_NOT_FOUND"

	// CodeInvalidConfig is returned when the decoded config fails validation.
	CodeInvalidConfig = "INVALID_CONFIG"
)
