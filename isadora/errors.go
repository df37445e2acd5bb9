package isadora

import "fmt"

// ConfigurationError is returned when the process-wide unit standard is
// set a second time, or set to an unrecognized value.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func configurationErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// ValidationError is returned for invalid constructor input, for example
// a negative geopotential height.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// RangeError is returned when an altitude resolves outside the supported
// model range (below sea level or above the 47 km stratopause).
type RangeError struct {
	msg string
}

func (e *RangeError) Error() string {
	return e.msg
}

func rangeErrorf(format string, args ...interface{}) error {
	return &RangeError{msg: fmt.Sprintf(format, args...)}
}

// UnitError is returned when a conversion is requested for an unrecognized
// quantity name.
type UnitError struct {
	msg string
}

func (e *UnitError) Error() string {
	return e.msg
}

func unitErrorf(format string, args ...interface{}) error {
	return &UnitError{msg: fmt.Sprintf(format, args...)}
}
