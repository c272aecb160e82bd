package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/futig/crop-advisory/internal/entity"
)

const (
	maxLocationLen = 200
	maxFreeTextLen = 2000
)

// Validator checks request payloads before they reach the usecases.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateCrop normalizes crop and checks it against the supported list.
func (v *Validator) ValidateCrop(crop string) (string, error) {
	if strings.TrimSpace(crop) == "" {
		return "", fmt.Errorf("%w: crop", entity.ErrMissingField)
	}
	normalized, ok := entity.NormalizeCrop(crop)
	if !ok {
		return "", fmt.Errorf("%w: %q", entity.ErrUnsupportedCrop, normalized)
	}
	return normalized, nil
}

// ValidateCity trims city and rejects blank input.
func (v *Validator) ValidateCity(city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", fmt.Errorf("%w: please enter a city name", entity.ErrMissingField)
	}
	if len(city) > maxLocationLen {
		return "", fmt.Errorf("%w: city name is too long", entity.ErrInvalidParameter)
	}
	return city, nil
}

func (v *Validator) ValidateFormat(format string) (entity.ResultFormat, error) {
	if format == "" {
		return entity.FormatMarkdown, nil
	}
	f := entity.ResultFormat(strings.ToLower(format))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q (allowed: markdown, pdf)", entity.ErrInvalidFormat, format)
	}
	return f, nil
}

func (v *Validator) ValidateAdvisory(req *entity.AdvisoryRequest) error {
	req.Location = strings.TrimSpace(req.Location)
	if req.Location == "" {
		return fmt.Errorf("%w: location", entity.ErrMissingField)
	}
	if len(req.Location) > maxLocationLen {
		return fmt.Errorf("%w: location is too long", entity.ErrInvalidParameter)
	}

	if err := oneOf("farm_size", string(req.FarmSize),
		entity.FarmSizeSmall, entity.FarmSizeMedium, entity.FarmSizeLarge); err != nil {
		return err
	}
	if err := oneOf("soil_type", string(req.SoilType),
		entity.SoilClay, entity.SoilSandy, entity.SoilLoamy, entity.SoilSilt, entity.SoilMixed); err != nil {
		return err
	}
	if err := oneOf("budget", string(req.Budget),
		entity.BudgetLow, entity.BudgetMedium, entity.BudgetHigh); err != nil {
		return err
	}
	if err := oneOf("farming_experience", string(req.FarmingExperience),
		entity.ExperienceBeginner, entity.ExperienceIntermediate, entity.ExperienceExperienced); err != nil {
		return err
	}

	if req.SoilPH != nil {
		ph := *req.SoilPH
		if math.IsNaN(ph) || ph < 0 || ph > 14 {
			return fmt.Errorf("%w: soil_ph must be between 0 and 14", entity.ErrInvalidParameter)
		}
	}

	if len(req.AdditionalInfo) > maxFreeTextLen {
		return fmt.Errorf("%w: additional_info is too long", entity.ErrInvalidParameter)
	}

	return nil
}

func oneOf[T ~string](field, value string, allowed ...T) error {
	if value == "" {
		return fmt.Errorf("%w: %s", entity.ErrMissingField, field)
	}
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if string(a) == value {
			return nil
		}
		names = append(names, string(a))
	}
	return fmt.Errorf("%w: %s must be one of %s", entity.ErrInvalidParameter, field, strings.Join(names, ", "))
}
