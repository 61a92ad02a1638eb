package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"mortgage-planner/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar los campos con su nombre JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateLoanSpec checks a LoanSpec and returns an InvalidLoanSpec error
// naming the first offending field.
func ValidateLoanSpec(spec domain.LoanSpec) error {
	if err := validateStruct(domain.KindInvalidLoanSpec, spec); err != nil {
		return err
	}
	return validateGrowth(spec, "interestRate")
}

// ValidateCombinedLoanSpec checks both sub-loans and the shared term.
func ValidateCombinedLoanSpec(spec domain.CombinedLoanSpec) error {
	if err := validateStruct(domain.KindInvalidLoanSpec, spec); err != nil {
		return err
	}
	if err := validateGrowth(spec.Commercial(), "commercialRate"); err != nil {
		return err
	}
	return validateGrowth(spec.Fund(), "fundRate")
}

// validateGrowth rejects rate and term pairs whose compound factor
// (1+r)^n exceeds MaxCompoundGrowth.
func validateGrowth(spec domain.LoanSpec, field string) error {
	growth := float64(spec.TotalPeriods()) * math.Log1p(spec.MonthlyRate())
	if growth <= math.Log(MaxCompoundGrowth) {
		return nil
	}
	return domain.NewCalculationError(
		domain.KindInvalidLoanSpec,
		field,
		spec.InterestRate,
		fmt.Sprintf("rate too high for a %d-year term", spec.TermYears),
	)
}

// ValidateEvent checks the amount and policy of a repayment event. The month
// is checked against the schedule by ApplyEarlyRepayment.
func ValidateEvent(event domain.EarlyRepaymentEvent) error {
	return validateStruct(domain.KindInvalidRepaymentEvent, event)
}

func validateStruct(kind domain.ErrorKind, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewCalculationError(kind, fe.Field(), fe.Value(), describeRule(fe))
	}
	return fmt.Errorf("validate %T: %w", s, err)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "failed rule " + fe.Tag()
}
