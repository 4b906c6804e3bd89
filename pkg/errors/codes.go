package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeConflict       ErrorCode = "COMMON_004"
	ErrCodeValidation     ErrorCode = "COMMON_005"
	ErrCodeNotImplemented ErrorCode = "COMMON_006"
	ErrCodeTimeout        ErrorCode = "COMMON_007"
)

// Aliases used throughout the codebase.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeValidation     = ErrCodeValidation
	CodeNotImplemented = ErrCodeNotImplemented
	CodeUnknown        = ErrorCode("UNKNOWN")
	CodeOK             = ErrorCode("OK")

	// Domain specific aliases
	CodeElementNotFound   = ErrCodeElementNotFound
	CodeParameterNotFound = ErrCodeElementParamNotFound
	CodeDegenerateVector  = ErrCodeGeometryDegenerate
)

// Element Table Error Codes
const (
	ErrCodeElementNotFound      ErrorCode = "ELEM_001"
	ErrCodeElementParamNotFound ErrorCode = "ELEM_002"
	ErrCodeElementUnitInvalid   ErrorCode = "ELEM_003"
)

// Geometry Error Codes
const (
	ErrCodeGeometryDegenerate ErrorCode = "GEO_001"
	ErrCodeGeometryIndex      ErrorCode = "GEO_002"
)

// Structure / Bond Graph Error Codes
const (
	ErrCodeStructureEmpty       ErrorCode = "STRUCT_001"
	ErrCodeStructureIndex       ErrorCode = "STRUCT_002"
	ErrCodeBondDetectionFailed  ErrorCode = "STRUCT_003"
	ErrCodeFragmentsNotComputed ErrorCode = "STRUCT_004"
)

// NCI Detection Error Codes
const (
	ErrCodeDetectorNotFound   ErrorCode = "NCI_001"
	ErrCodeDetectorFailed     ErrorCode = "NCI_002"
	ErrCodeDetectorDuplicate  ErrorCode = "NCI_003"
	ErrCodeInteractionInvalid ErrorCode = "NCI_004"
)

// XYZ Parsing Error Codes
const (
	ErrCodeXYZMalformed  ErrorCode = "XYZ_001"
	ErrCodeXYZAtomCount  ErrorCode = "XYZ_002"
	ErrCodeXYZCoordinate ErrorCode = "XYZ_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	ErrCodeValidation:     http.StatusUnprocessableEntity,
	ErrCodeNotImplemented: http.StatusNotImplemented,
	ErrCodeTimeout:        http.StatusGatewayTimeout,

	ErrCodeElementNotFound:      http.StatusBadRequest,
	ErrCodeElementParamNotFound: http.StatusBadRequest,
	ErrCodeElementUnitInvalid:   http.StatusBadRequest,

	ErrCodeGeometryDegenerate: http.StatusUnprocessableEntity,
	ErrCodeGeometryIndex:      http.StatusInternalServerError,

	ErrCodeStructureEmpty:       http.StatusBadRequest,
	ErrCodeStructureIndex:       http.StatusInternalServerError,
	ErrCodeBondDetectionFailed:  http.StatusUnprocessableEntity,
	ErrCodeFragmentsNotComputed: http.StatusConflict,

	ErrCodeDetectorNotFound:   http.StatusNotFound,
	ErrCodeDetectorFailed:     http.StatusUnprocessableEntity,
	ErrCodeDetectorDuplicate:  http.StatusConflict,
	ErrCodeInteractionInvalid: http.StatusInternalServerError,

	ErrCodeXYZMalformed:  http.StatusBadRequest,
	ErrCodeXYZAtomCount:  http.StatusBadRequest,
	ErrCodeXYZCoordinate: http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status code mapped to an ErrorCode, defaulting
// to 500 for unmapped codes.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := ErrorCodeHTTPStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
