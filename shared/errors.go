package shared

type ApiErrorType string

const (
	ApiErrorTypeUnauthorized ApiErrorType = "unauthorized"
	ApiErrorTypeValidation   ApiErrorType = "validation"
	ApiErrorTypeNetwork      ApiErrorType = "network"
	ApiErrorTypeOther        ApiErrorType = "other"
)

const (
	UnauthorizedMsg  = "Unauthorized"
	NetworkErrorMsg  = "Network error."
	RequestFailedMsg = "Request failed"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

func IsUnauthorized(err *ApiError) bool {
	return err != nil && err.Type == ApiErrorTypeUnauthorized
}
