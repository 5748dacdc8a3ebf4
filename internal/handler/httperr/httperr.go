package httperr

import (
	"net/http"

	"dinner-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int  `json:"-"`
	Success bool `json:"success"`
	Error   struct {
		Kind    string `json:"kind,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, kind errs.Kind, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Kind = string(kind)
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	kind, _ := errs.KindOf(err)
	AbortResponse(c, err, NewResponse(status, kind, msg, detail))
}

func AbortResponse(c *gin.Context, err error, resp Response) {
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// AbortValidation is for input rejected before it reaches a use case.
func AbortValidation(c *gin.Context, err error, msg string) {
	AbortResponse(c, err, NewResponse(http.StatusBadRequest, errs.KindValidation, msg, nil))
}

// Abort derives status, message and detail from a tagged error. Untagged
// errors become a 500 whose body carries nothing from the error itself.
func Abort(c *gin.Context, err error) {
	kind, ok := errs.KindOf(err)
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err, internalMessage, nil)
		return
	}
	var detail any
	if d := errs.DetailOf(err); len(d) > 0 {
		detail = d
	}
	AbortWithError(c, StatusOf(kind), err, errs.MessageOf(err), detail)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindUnauthorized:
		return http.StatusForbidden
	case errs.KindValidation,
		errs.KindDeadlinePassed,
		errs.KindDuplicateReservation,
		errs.KindAlreadyCancelled,
		errs.KindEventFull,
		errs.KindEventNotBookable,
		errs.KindInvalidToken,
		errs.KindTokenExpired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
