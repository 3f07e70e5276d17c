package training

import "math"

// User-visible training type labels.
const (
	TypeRunning       = "Running"
	TypeSportsWalking = "SportsWalking"
	TypeSwimming      = "Swimming"
)

// Calorie formula coefficients, fixed per training type.
const (
	runCaloriesMeanSpeedMultiplier = 18
	runCaloriesMeanSpeedShift      = 1.79

	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029
	kmhInMsec                    = 0.278 // km/h → m/s
	cmInM                        = 100   // centimeters in a meter

	swimCaloriesMeanSpeedShift   = 1.1
	swimCaloriesWeightMultiplier = 2
)

var (
	_ Training = Running{}
	_ Training = SportsWalking{}
	_ Training = Swimming{}
)

// Running is a running workout. Distance and speed come from the base
// step-based formulas.
type Running struct {
	Workout
}

// NewRunning builds a running record from a step count, duration in hours
// and weight in kilograms.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Workout{action: action, duration: duration, weight: weight}}
}

// TrainingType returns the running label.
func (r Running) TrainingType() string { return TypeRunning }

// SpentCalories returns the burned calories in kcal.
func (r Running) SpentCalories() (float64, error) {
	return (runCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runCaloriesMeanSpeedShift) *
		r.weight / MInKm * r.duration * MinInHour, nil
}

// SportsWalking is a sports walking workout. It additionally carries the
// athlete's height in centimeters, which feeds the calorie formula.
type SportsWalking struct {
	Workout
	height float64 // centimeters
}

// NewSportsWalking builds a walking record from a step count, duration in
// hours, weight in kilograms and height in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Workout: Workout{action: action, duration: duration, weight: weight},
		height:  height,
	}
}

// TrainingType returns the sports walking label.
func (s SportsWalking) TrainingType() string { return TypeSportsWalking }

// SpentCalories returns the burned calories in kcal. The speed term is
// converted to m/s and squared, then scaled by weight and height.
func (s SportsWalking) SpentCalories() (float64, error) {
	return (walkCaloriesWeightMultiplier*s.weight +
		math.Pow(s.MeanSpeed()*kmhInMsec, 2)/s.height*cmInM*
			walkCaloriesSpeedMultiplier*s.weight) *
		s.duration * MinInHour, nil
}

// Swimming is a pool swimming workout: action counts strokes, and the pool
// length times the number of completed lengths gives the swum distance.
type Swimming struct {
	Workout
	lengthPool float64 // meters
	countPool  int     // pool lengths swum
}

// NewSwimming builds a swimming record from a stroke count, duration in
// hours, weight in kilograms, pool length in meters and the number of pool
// lengths swum.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		Workout:    Workout{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// TrainingType returns the swimming label.
func (s Swimming) TrainingType() string { return TypeSwimming }

// Distance returns the stroke-based distance in kilometers. This is the
// reported distance; MeanSpeed intentionally uses the lap-based model
// instead, an asymmetry inherited from the sensor protocol.
func (s Swimming) Distance() float64 {
	return float64(s.action) * SwimLenStep / MInKm
}

// MeanSpeed returns the lap-based mean speed in km/h, independent of the
// stroke count.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm / s.duration
}

// SpentCalories returns the burned calories in kcal, driven by the
// lap-based mean speed.
func (s Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimCaloriesMeanSpeedShift) *
		swimCaloriesWeightMultiplier * s.weight * s.duration, nil
}
