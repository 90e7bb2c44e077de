package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/bizdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// enumValidators back the enum binding tags used by the request DTOs
var enumValidators = map[string]validator.Func{
	"salary_type": func(fl validator.FieldLevel) bool {
		return employee.SalaryType(fl.Field().String()).IsValid()
	},
	"transaction_type": func(fl validator.FieldLevel) bool {
		return finance.TransactionType(fl.Field().String()).IsValid()
	},
	"task_status": func(fl validator.FieldLevel) bool {
		return task.Status(fl.Field().String()).IsValid()
	},
	"task_repeat": func(fl validator.FieldLevel) bool {
		return task.Repeat(fl.Field().String()).IsValid()
	},
	"order_status": func(fl validator.FieldLevel) bool {
		return order.Status(fl.Field().String()).IsValid()
	},
	"bizdate": func(fl validator.FieldLevel) bool {
		_, err := common.ParseDate(fl.Field().String())
		return err == nil
	},
}

// SetupValidator configures gin's validator with JSON field names and the
// custom tags. It must run before the first request is bound.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return RegisterValidators(v)
}

// RegisterValidators installs the tag name function and custom tags on v
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	for tag, fn := range enumValidators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
		return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
	}

	// Malformed JSON or a type mismatch
	return dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, "Malformed request body", requestID)
}

// HandleValidationError returns a validation error response
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "bizdate":
		return "Must be a date in YYYY-MM-DD or RFC 3339 format"
	case "salary_type":
		return "Must be one of: monthly hourly"
	case "transaction_type":
		return "Must be one of: income expense"
	case "task_status":
		return "Must be one of: open closed"
	case "task_repeat":
		return "Must be one of: none daily weekly monthly yearly"
	case "order_status":
		return "Must be one of: pending processing completed"
	default:
		return "Invalid value"
	}
}
