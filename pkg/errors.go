package digits

import "fmt"

// ErrOpenCalibration represents an error when opening a calibration source.
type ErrOpenCalibration struct {
	Ref string
	Err error
}

func (e *ErrOpenCalibration) Error() string {
	return fmt.Sprintf("error opening calibration source %q: %v", e.Ref, e.Err)
}

// ErrMandatoryCalibration is returned by Begin when the deployment requires
// pedestal calibration but no source was loaded.
type ErrMandatoryCalibration struct {
	Ref string
}

func (e *ErrMandatoryCalibration) Error() string {
	return fmt.Sprintf("mandatory pedestal calibration missing (source %q)", e.Ref)
}

// ErrInvalidState reports a lifecycle call made in the wrong interval state.
type ErrInvalidState struct {
	Op    string
	State IntervalState
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("%s called in state %v", e.Op, e.State)
}
