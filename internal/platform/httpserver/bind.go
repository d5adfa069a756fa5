package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ErrEmptyBody = errors.New("request body is empty")

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// BindJSON decodes the request body into obj, rejecting unknown fields and
// trailing data, then runs the binding validator over the struct tags.
func BindJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return binding.Validator.ValidateStruct(obj)
}

// Fail aborts the request with a JSON error body.
func Fail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// FailValidation answers 422, the status used for malformed input.
func FailValidation(c *gin.Context, err error) {
	Fail(c, http.StatusUnprocessableEntity, err.Error())
}
