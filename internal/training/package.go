package training

import (
	"errors"
	"fmt"
)

// Sensor package codes for the three training types.
const (
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
	CodeSwimming      = "SWM"
)

var (
	// ErrUnknownTrainingType is returned for a sensor package whose workout
	// code is not one of RUN, WLK or SWM.
	ErrUnknownTrainingType = errors.New("unknown training type")
	// ErrBadPackage is returned when the numeric payload of a sensor package
	// does not match the arity of its workout code.
	ErrBadPackage = errors.New("malformed sensor package")
)

// ReadPackage decodes one sensor package into a training record. The payload
// is positional: RUN carries (action, duration, weight), WLK additionally
// height, SWM additionally pool length and pool count.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	switch workoutType {
	case CodeRunning:
		if len(data) != 3 {
			return nil, fmt.Errorf("%w: %s wants 3 values, got %d", ErrBadPackage, CodeRunning, len(data))
		}
		return NewRunning(int(data[0]), data[1], data[2]), nil
	case CodeSportsWalking:
		if len(data) != 4 {
			return nil, fmt.Errorf("%w: %s wants 4 values, got %d", ErrBadPackage, CodeSportsWalking, len(data))
		}
		return NewSportsWalking(int(data[0]), data[1], data[2], data[3]), nil
	case CodeSwimming:
		if len(data) != 5 {
			return nil, fmt.Errorf("%w: %s wants 5 values, got %d", ErrBadPackage, CodeSwimming, len(data))
		}
		return NewSwimming(int(data[0]), data[1], data[2], data[3], int(data[4])), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrainingType, workoutType)
	}
}
