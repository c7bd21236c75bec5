package constants

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

const (
	// Default secret kept for parity with legacy deployments that never set JWT_SECRET.
	DEFAULT_JWT_SECRET = "bioskop-tiket-secret-key"

	UPLOAD_DIR      = "public/uploads/payments"
	UPLOAD_MAX_SIZE = 5 * 1024 * 1024
)

const (
	ERROR_INTERNAL_ERROR = "Internal server error"
)
