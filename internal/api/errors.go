package api

// Status messages returned with gRPC errors. Clients match on these.
const (
	ReasonNoJWT          = "NO_JWT"
	ReasonJWTInvalid     = "JWT_INVALID"
	ReasonJWTExpired     = "JWT_EXPIRED"
	ReasonUserNotFound   = "USER_NOT_FOUND"
	ReasonWrongPassword  = "WRONG_PASSWORD"
	ReasonEmailTaken     = "EMAIL_TAKEN"
	ReasonInvalidRequest = "INVALID_REQUEST"
	ReasonEmailMismatch  = "EMAIL_MISMATCH"
	ReasonInternal       = "INTERNAL"

	ReasonDatasetNotFound = "DATASET_NOT_FOUND"
)
