package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"research_connect/internal/models"
)

const (
	minGraduationYear = 1950
	maxGraduationYear = 2100
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup bug.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("academic_role", validateAcademicRole)
	mustRegister("grad_year", validateGraduationYear)
	mustRegister("cgpa", validateCGPA)
}

func validateAcademicRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	return models.UserRole(value).IsValid()
}

func validateGraduationYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year >= minGraduationYear && year <= maxGraduationYear
}

func validateCGPA(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return value >= 0 && value <= 10
}
