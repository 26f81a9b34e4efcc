package utils

import (
	"Pickup-Order-System/domain"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		Validate = validator.New(validator.WithRequiredStructEnabled())

		// report json field names in validation errors
		Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = Validate.RegisterValidation("order_unit", func(fl validator.FieldLevel) bool {
			return domain.Unit(fl.Field().String()).IsValid()
		})
		_ = Validate.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
			return domain.OrderStatus(fl.Field().String()).IsValid()
		})
	})
}
