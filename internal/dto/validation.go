package dto

import (
	"strings"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain-specific tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("expense_type", validateExpenseType); err != nil {
		return err
	}
	return v.RegisterValidation("flow_type", validateFlowType)
}

func validateExpenseType(fl validator.FieldLevel) bool {
	switch domain.ExpenseType(strings.ToLower(strings.TrimSpace(fl.Field().String()))) {
	case domain.ExpenseBusiness, domain.ExpensePersonal:
		return true
	}
	return false
}

func validateFlowType(fl validator.FieldLevel) bool {
	switch domain.FlowType(strings.ToLower(strings.TrimSpace(fl.Field().String()))) {
	case domain.FlowIn, domain.FlowOut:
		return true
	}
	return false
}
