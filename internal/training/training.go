package training

import (
	"errors"
	"fmt"
)

// Unit conversion constants shared by every training type.
const (
	MInKm     = 1000 // meters in a kilometer
	MinInHour = 60   // minutes in an hour
)

// Movement-unit lengths in meters.
const (
	LenStep     = 0.65 // one step, running and walking
	SwimLenStep = 1.38 // one swimming stroke
)

// ErrCaloriesNotImplemented is returned when SpentCalories is called on the
// base Workout record instead of a concrete training type. It marks a
// programming-contract violation, not bad input: every record produced by
// ReadPackage carries its own calorie formula.
var ErrCaloriesNotImplemented = errors.New("calorie formula not implemented for base workout record")

// Training is the closed set of workout record variants. Distance and speed
// are always derived from the raw sensor fields, never stored.
type Training interface {
	// TrainingType returns the user-visible label of the concrete variant.
	TrainingType() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned calories in kcal.
	SpentCalories() (float64, error)
}

// Workout is the base training record: a raw movement-unit count (steps or
// strokes), the duration in hours, and the athlete's weight in kilograms.
// The fields are not validated; a zero duration yields Inf/NaN metrics
// rather than an error.
type Workout struct {
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kilograms
}

// Duration returns the workout duration in hours.
func (w Workout) Duration() float64 { return w.duration }

// Weight returns the athlete's weight in kilograms.
func (w Workout) Weight() float64 { return w.weight }

// Action returns the raw movement-unit count.
func (w Workout) Action() int { return w.action }

// Distance returns the step-based distance in kilometers.
func (w Workout) Distance() float64 {
	return float64(w.action) * LenStep / MInKm
}

// MeanSpeed returns the mean speed in km/h.
func (w Workout) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// SpentCalories on the base record always fails: concrete training types
// supply their own formulas.
func (w Workout) SpentCalories() (float64, error) {
	return 0, ErrCaloriesNotImplemented
}

// TrainingType returns the base record label.
func (w Workout) TrainingType() string { return "Workout" }

// InfoMessage is a disposable snapshot of one computed training session. It
// is assembled once, after all metrics are computed, and exists only to be
// rendered.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// messageTemplate is a fixed external contract: wording, field order,
// punctuation and the three-digit precision must not change.
const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message renders the session summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// ShowTrainingInfo computes all four metrics of a training record and
// assembles them into an InfoMessage.
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("building training info: %w", err)
	}
	return InfoMessage{
		TrainingType: t.TrainingType(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     calories,
	}, nil
}
