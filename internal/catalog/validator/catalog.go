package validator

import (
	"errors"
	"fmt"

	"convoca/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

// CatalogValidator checks venue and event inputs after normalization.
// Capacity below zero and events referencing venue id 0 are rejected here;
// venue existence is the store's job.
type CatalogValidator struct {
	validate *validator.Validate
}

func NewCatalogValidator() *CatalogValidator {
	return &CatalogValidator{
		validate: validator.New(),
	}
}

func (v *CatalogValidator) ValidateVenue(venue *model.Venue) error {
	return v.check(venue)
}

func (v *CatalogValidator) ValidateEvent(event *model.Event) error {
	return v.check(event)
}

func (v *CatalogValidator) check(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translate(validationErrs)
		}
		return err
	}
	return nil
}

func (v *CatalogValidator) translate(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, err := range errs {
		out = append(out, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("failed %q constraint", err.Tag()),
		})
	}
	return out
}
