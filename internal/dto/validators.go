package dto

import (
	"fmt"
	"sync"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request DTOs to gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("symbolposition", validateSymbolPosition)
	})
	return err
}

func validateSymbolPosition(fl validator.FieldLevel) bool {
	return domain.SymbolPosition(fl.Field().String()).IsValid()
}
