package httperror_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-httperror/httperror"
)

var defaultErrorNames = map[int]string{
	http.StatusBadRequest:                    "BadRequestError",
	http.StatusUnauthorized:                  "UnauthorizedError",
	http.StatusPaymentRequired:               "PaymentRequiredError",
	http.StatusForbidden:                     "ForbiddenError",
	http.StatusNotFound:                      "NotFoundError",
	http.StatusMethodNotAllowed:              "MethodNotAllowedError",
	http.StatusNotAcceptable:                 "NotAcceptableError",
	http.StatusProxyAuthRequired:             "ProxyAuthenticationRequiredError",
	http.StatusRequestTimeout:                "RequestTimeoutError",
	http.StatusConflict:                      "ConflictError",
	http.StatusGone:                          "GoneError",
	http.StatusLengthRequired:                "LengthRequiredError",
	http.StatusPreconditionFailed:            "PreconditionFailedError",
	http.StatusRequestEntityTooLarge:         "RequestEntityTooLargeError",
	http.StatusRequestURITooLong:             "RequestURITooLongError",
	http.StatusUnsupportedMediaType:          "UnsupportedMediaTypeError",
	http.StatusRequestedRangeNotSatisfiable:  "RequestedRangeNotSatisfiableError",
	http.StatusExpectationFailed:             "ExpectationFailedError",
	http.StatusTeapot:                        "TeapotError",
	http.StatusMisdirectedRequest:            "MisdirectedRequestError",
	http.StatusUnprocessableEntity:           "UnprocessableEntityError",
	http.StatusLocked:                        "LockedError",
	http.StatusFailedDependency:              "FailedDependencyError",
	http.StatusTooEarly:                      "TooEarlyError",
	http.StatusUpgradeRequired:               "UpgradeRequiredError",
	http.StatusPreconditionRequired:          "PreconditionRequiredError",
	http.StatusTooManyRequests:               "TooManyRequestsError",
	http.StatusRequestHeaderFieldsTooLarge:   "RequestHeaderFieldsTooLargeError",
	http.StatusUnavailableForLegalReasons:    "UnavailableForLegalReasonsError",
	http.StatusInternalServerError:           "InternalServerError",
	http.StatusNotImplemented:                "NotImplementedError",
	http.StatusBadGateway:                    "BadGatewayError",
	http.StatusServiceUnavailable:            "ServiceUnavailableError",
	http.StatusGatewayTimeout:                "GatewayTimeoutError",
	http.StatusHTTPVersionNotSupported:       "HTTPVersionNotSupportedError",
	http.StatusVariantAlsoNegotiates:         "VariantAlsoNegotiatesError",
	http.StatusInsufficientStorage:           "InsufficientStorageError",
	http.StatusLoopDetected:                  "LoopDetectedError",
	http.StatusNotExtended:                   "NotExtendedError",
	http.StatusNetworkAuthenticationRequired: "NetworkAuthenticationRequiredError",
}

func TestStatusName_Table(t *testing.T) {
	t.Parallel()

	for status := 400; status < 600; status++ {
		want, ok := defaultErrorNames[status]
		if !ok {
			want = "UnknownServerError"
			if status < 500 {
				want = "UnknownClientError"
			}
		}

		require.Equal(t, want, httperror.StatusName(status), "status %d", status)
	}
}

func TestStatusName_Spotchecks(t *testing.T) {
	t.Parallel()

	require.Equal(t, "TeapotError", httperror.StatusName(418))
	require.Equal(t, "NotFoundError", httperror.StatusName(404))
	require.Equal(t, "UnknownClientError", httperror.StatusName(499))
	require.Equal(t, "UnknownServerError", httperror.StatusName(599))
	require.Equal(t, "InternalServerError", httperror.StatusName(500))
}
