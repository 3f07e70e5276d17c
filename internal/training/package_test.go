package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadPackageGoldenMessages runs the three reference sensor packages
// through the dispatcher and pins the exact rendered messages as regression
// values derived from the calorie formulas.
func TestReadPackageGoldenMessages(t *testing.T) {
	cases := []struct {
		code string
		data []float64
		want string
	}{
		{
			code: CodeSwimming,
			data: []float64{720, 1, 80, 25, 40},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			code: CodeRunning,
			data: []float64{15000, 1, 75},
			want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		},
		{
			code: CodeSportsWalking,
			data: []float64{9000, 1, 75, 180},
			want: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			tr, err := ReadPackage(tc.code, tc.data)
			require.NoError(t, err)

			info, err := ShowTrainingInfo(tr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, info.Message())
		})
	}
}

// TestReadPackageVariants verifies the dispatcher picks the right concrete
// type for each code.
func TestReadPackageVariants(t *testing.T) {
	tr, err := ReadPackage(CodeRunning, []float64{15000, 1, 75})
	require.NoError(t, err)
	assert.IsType(t, Running{}, tr)

	tr, err = ReadPackage(CodeSportsWalking, []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	assert.IsType(t, SportsWalking{}, tr)

	tr, err = ReadPackage(CodeSwimming, []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	assert.IsType(t, Swimming{}, tr)
}

// TestReadPackageUnknownType verifies an unrecognized code never constructs a
// record and fails with the invalid-input error.
func TestReadPackageUnknownType(t *testing.T) {
	tr, err := ReadPackage("XYZ", []float64{1, 2, 3})
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, ErrUnknownTrainingType)
	assert.Contains(t, err.Error(), "XYZ")
}

// TestReadPackageArity verifies a payload of the wrong length is rejected
// before construction.
func TestReadPackageArity(t *testing.T) {
	cases := []struct {
		code string
		data []float64
	}{
		{CodeRunning, []float64{15000, 1}},
		{CodeRunning, []float64{15000, 1, 75, 180}},
		{CodeSportsWalking, []float64{9000, 1, 75}},
		{CodeSwimming, []float64{720, 1, 80, 25}},
		{CodeSwimming, nil},
	}
	for _, tc := range cases {
		tr, err := ReadPackage(tc.code, tc.data)
		assert.Nil(t, tr, "%s with %d values", tc.code, len(tc.data))
		assert.ErrorIs(t, err, ErrBadPackage, "%s with %d values", tc.code, len(tc.data))
	}
}
