package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidLoanSpec                ErrorKind = "InvalidLoanSpec"
	KindInvalidRepaymentEvent          ErrorKind = "InvalidRepaymentEvent"
	KindRepaymentMonthOutOfRange       ErrorKind = "RepaymentMonthOutOfRange"
	KindSchedulesLengthMismatch        ErrorKind = "SchedulesLengthMismatch"
	KindUnsupportedPolicyForConvention ErrorKind = "UnsupportedPolicyForConvention"
)

var (
	ErrInvalidLoanSpec                = errors.New("invalid loan spec")
	ErrInvalidRepaymentEvent          = errors.New("invalid repayment event")
	ErrRepaymentMonthOutOfRange       = errors.New("repayment month out of range")
	ErrSchedulesLengthMismatch        = errors.New("schedules length mismatch")
	ErrUnsupportedPolicyForConvention = errors.New("unsupported policy for convention")
)

var sentinels = map[ErrorKind]error{
	KindInvalidLoanSpec:                ErrInvalidLoanSpec,
	KindInvalidRepaymentEvent:          ErrInvalidRepaymentEvent,
	KindRepaymentMonthOutOfRange:       ErrRepaymentMonthOutOfRange,
	KindSchedulesLengthMismatch:        ErrSchedulesLengthMismatch,
	KindUnsupportedPolicyForConvention: ErrUnsupportedPolicyForConvention,
}

// CalculationError reports a rejected input together with the field and
// value that caused it.
type CalculationError struct {
	Kind   ErrorKind
	Field  string
	Value  any
	Reason string
}

func NewCalculationError(kind ErrorKind, field string, value any, reason string) *CalculationError {
	return &CalculationError{Kind: kind, Field: field, Value: value, Reason: reason}
}

func (e *CalculationError) Error() string {
	msg := fmt.Sprintf("%s: field=%s value=%v", e.Kind, e.Field, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *CalculationError) Unwrap() error {
	return sentinels[e.Kind]
}
