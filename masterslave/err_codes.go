package masterslave

const (
	// CodeInvalidConfig is returned when a master/replica configuration fails validation.
	CodeInvalidConfig = "INVALID_MASTER_SLAVE_CONFIG"
)
