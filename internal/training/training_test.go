package training

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// TestDistanceZeroAction verifies distance is zero at action = 0 for every
// training type.
func TestDistanceZeroAction(t *testing.T) {
	trainings := []Training{
		NewRunning(0, 1, 75),
		NewSportsWalking(0, 1, 75, 180),
		NewSwimming(0, 1, 80, 25, 0),
	}
	for _, tr := range trainings {
		assert.Zero(t, tr.Distance(), "distance for %s with action=0", tr.TrainingType())
	}
}

// TestDistanceMonotone verifies distance grows with the action count.
func TestDistanceMonotone(t *testing.T) {
	prevRun, prevSwim := -1.0, -1.0
	for action := 0; action <= 20000; action += 500 {
		run := NewRunning(action, 1, 75).Distance()
		swim := NewSwimming(action, 1, 80, 25, 40).Distance()
		assert.Greater(t, run, prevRun, "running distance at action=%d", action)
		assert.Greater(t, swim, prevSwim, "swimming distance at action=%d", action)
		prevRun, prevSwim = run, swim
	}
}

// TestMeanSpeedIdentity verifies that running and walking speed equal
// distance over duration, while swimming speed follows the lap-based model
// and ignores the stroke count.
func TestMeanSpeedIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < 50; i++ {
		action := int(rnd.Int63n(20000-1000) + 1000)
		duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.1
		weight := float64(rnd.Int63n(140-50) + 50)
		height := float64(rnd.Int63n(220-150) + 150)
		lengthPool := float64(rnd.Int63n(50-10) + 10)
		countPool := int(rnd.Int63n(40-1) + 1)

		run := NewRunning(action, duration, weight)
		assert.InDelta(t, run.Distance()/duration, run.MeanSpeed(), delta)

		walk := NewSportsWalking(action, duration, weight, height)
		assert.InDelta(t, walk.Distance()/duration, walk.MeanSpeed(), delta)

		swim := NewSwimming(action, duration, weight, lengthPool, countPool)
		want := lengthPool * float64(countPool) / MInKm / duration
		assert.InDelta(t, want, swim.MeanSpeed(), delta)

		// Stroke count must not influence swimming speed.
		other := NewSwimming(action*2+1, duration, weight, lengthPool, countPool)
		assert.InDelta(t, swim.MeanSpeed(), other.MeanSpeed(), delta)
	}
}

// TestRunningSpentCalories cross-checks the running calorie formula against
// an independently written expression.
func TestRunningSpentCalories(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	action := int(rnd.Int63n(10000-1000) + 1000)
	duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.1
	weight := float64(rnd.Int63n(140-80) + 80)

	run := NewRunning(action, duration, weight)
	speed := run.MeanSpeed()
	want := (18*speed + 1.79) * weight / MInKm * duration * MinInHour

	got, err := run.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, want, got, delta)
}

// TestWalkingSpentCalories cross-checks the walking calorie formula,
// including the km/h → m/s and m → cm conversions.
func TestWalkingSpentCalories(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	action := int(rnd.Int63n(10000-1000) + 1000)
	duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.1
	weight := float64(rnd.Int63n(140-80) + 80)
	height := float64(rnd.Int63n(220-150) + 150)

	walk := NewSportsWalking(action, duration, weight, height)
	speed := walk.MeanSpeed()
	want := (0.035*weight + math.Pow(speed*0.278, 2)/height*100*0.029*weight) * duration * MinInHour

	got, err := walk.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, want, got, delta)
}

// TestSwimmingSpentCalories cross-checks the swimming calorie formula, which
// is driven by the lap-based speed.
func TestSwimmingSpentCalories(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	lengthPool := float64(rnd.Int63n(50-10) + 10)
	countPool := int(rnd.Int63n(40-1) + 1)
	duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.1
	weight := float64(rnd.Int63n(140-80) + 80)

	swim := NewSwimming(5000, duration, weight, lengthPool, countPool)
	speed := lengthPool * float64(countPool) / MInKm / duration
	want := (speed + 1.1) * 2 * weight * duration

	got, err := swim.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, want, got, delta)
}

// TestSpentCaloriesDeterministic verifies identical inputs produce identical
// calorie values.
func TestSpentCaloriesDeterministic(t *testing.T) {
	a, err := NewRunning(15000, 1.5, 75).SpentCalories()
	require.NoError(t, err)
	b, err := NewRunning(15000, 1.5, 75).SpentCalories()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestBaseWorkoutCalories verifies that the base record has no calorie
// formula and fails with the dedicated contract error.
func TestBaseWorkoutCalories(t *testing.T) {
	var base Training = Workout{action: 1000, duration: 1, weight: 70}

	_, err := base.SpentCalories()
	assert.ErrorIs(t, err, ErrCaloriesNotImplemented)

	_, err = ShowTrainingInfo(base)
	assert.ErrorIs(t, err, ErrCaloriesNotImplemented)
}

// TestDegenerateDuration verifies that a zero duration is not guarded: speed
// comes out as +Inf, and the calorie formula multiplies that Inf term by the
// zero duration, giving NaN rather than an error.
func TestDegenerateDuration(t *testing.T) {
	run := NewRunning(15000, 0, 75)
	assert.True(t, math.IsInf(run.MeanSpeed(), 1))

	got, err := run.SpentCalories()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

// TestShowTrainingInfoLabels verifies the user-visible labels of the three
// concrete training types.
func TestShowTrainingInfoLabels(t *testing.T) {
	cases := []struct {
		tr   Training
		want string
	}{
		{NewRunning(15000, 1, 75), TypeRunning},
		{NewSportsWalking(9000, 1, 75, 180), TypeSportsWalking},
		{NewSwimming(720, 1, 80, 25, 40), TypeSwimming},
	}
	for _, tc := range cases {
		info, err := ShowTrainingInfo(tc.tr)
		require.NoError(t, err)
		assert.Equal(t, tc.want, info.TrainingType)
		assert.InDelta(t, tc.tr.Distance(), info.Distance, delta)
		assert.InDelta(t, tc.tr.MeanSpeed(), info.Speed, delta)
	}
}
