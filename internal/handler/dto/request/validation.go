package request

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("seatnumbers", seatNumbers)
		}
	})
}

// seatNumbers accepts a non-empty list of distinct positive seat numbers.
var seatNumbers validator.Func = func(fl validator.FieldLevel) bool {
	numbers, ok := fl.Field().Interface().([]int)
	if !ok || len(numbers) == 0 {
		return false
	}
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if n <= 0 {
			return false
		}
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}
