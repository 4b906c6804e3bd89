// Package handlers contains the gin request handlers for nciserver.
package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/xtalgeom/nciscan/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeAppError maps an application error to its HTTP status and renders
// the standard error body.
func writeAppError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	resp := ErrorResponse{Code: code.String(), Message: err.Error()}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		resp.Message = appErr.Message
		resp.Detail = appErr.Detail
	}
	c.JSON(code.HTTPStatus(), resp)
}
