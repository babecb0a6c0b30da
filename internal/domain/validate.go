package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateTask checks a task against its field constraints.
func ValidateTask(t Task) error {
	return validate.Struct(t)
}

func ValidateResource(r Resource) error {
	return validate.Struct(r)
}

func ValidateBudgetCategory(c BudgetCategory) error {
	return validate.Struct(c)
}

func ValidateRisk(r Risk) error {
	return validate.Struct(r)
}
