package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"golang-sportplans/helpers"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindRequest decodes the JSON body into req and validates it. Malformed
// bodies and missing fields are ErrValidation; numeric constraints are
// ErrInvalidRange, checked only once every field is present.
func bindRequest(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return helpers.Errorf(helpers.ErrValidation, "Invalid request body: %v", err)
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return helpers.Errorf(helpers.ErrValidation, "Invalid request body: %v", err)
	}

	var missing, outOfRange []string
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "gt":
			outOfRange = append(outOfRange, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		case "gte":
			outOfRange = append(outOfRange, fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param()))
		default:
			missing = append(missing, fe.Field())
		}
	}

	if len(missing) > 0 {
		return helpers.Errorf(helpers.ErrValidation, "Missing required fields: %s", strings.Join(missing, ", "))
	}
	return helpers.Errorf(helpers.ErrInvalidRange, "%s", strings.Join(outOfRange, "; "))
}
