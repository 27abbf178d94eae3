package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/legalpro/case-management-api/internal/errors"
)

// uintParam parses a path parameter as an unsigned integer id
func uintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// uintQuery parses an optional unsigned integer query parameter. It returns
// nil when the parameter is absent.
func uintQuery(c *gin.Context, name string) (*uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return nil, false
	}
	return &v, true
}

// bindingError maps a ShouldBindJSON failure to the error envelope. Enum
// violations surface as INVALID_ENUM_VALUE, everything else as
// INVALID_INPUT.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "oneof" {
				apierrors.InvalidEnumValue(c, "Invalid value for "+fe.Field())
				return
			}
		}
	}
	apierrors.BadRequest(c, "Invalid request body")
}
