package api

import (
	"slices"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"imsweather.app/internal/core/entry"
	"imsweather.app/internal/core/sensor"
	"imsweather.app/pkg/errors"
)

// RegisterValidators adds the entry field validators to gin's binding engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("unexpected binding validator engine", nil)
	}

	validators := map[string]validator.Func{
		"imslanguage": func(fl validator.FieldLevel) bool {
			return slices.Contains(entry.Languages, fl.Field().String())
		},
		"platform": func(fl validator.FieldLevel) bool {
			return sensor.IsValidPlatform(fl.Field().String())
		},
		"condition": func(fl validator.FieldLevel) bool {
			return sensor.IsKnownCondition(fl.Field().String())
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.NewConfigurationError("failed to register validator "+tag, err)
		}
	}
	return nil
}
