package api

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	maxBytes, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return len(str) <= maxBytes
}

// decimalValue приводит decimal.Decimal к строке, чтобы к суммам можно было применять теги валидации.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// validateDecimalGt0 сумма строго больше нуля и не более двух знаков после запятой.
func validateDecimalGt0(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && d.IsPositive() && d.Exponent() >= -2
}

func validateDecimalGte0(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative() && d.Exponent() >= -2
}

// validateDecimalMax сумма не больше значения параметра тега, например decimal_max=9999999999.99.
func validateDecimalMax(fl validator.FieldLevel) bool {
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	d, ok := parseDecimalField(fl)
	return ok && d.LessThanOrEqual(limit)
}

func validateRole(fl validator.FieldLevel) bool {
	return domain.RoleType(fl.Field().String()).Valid()
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range map[string]validator.Func{
		"max_bytes":    validateMaxBytes,
		"decimal_gt0":  validateDecimalGt0,
		"decimal_gte0": validateDecimalGte0,
		"decimal_max":  validateDecimalMax,
		"role":         validateRole,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}

// jsonFieldName имя поля в ошибках валидации берется из json тега.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
