package isadora

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ConstantsValues(t *testing.T) {
	assert.True(t, math.Abs(CONSTANTS.MSL_TEMPERATURE.SI()-288.15) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.MSL_PRESSURE.SI()-101325.0) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.MSL_DENSITY.SI()-1.2250122659907) < 1e-12)
	assert.True(t, math.Abs(CONSTANTS.G.SI()-9.80665) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.R.SI()-287.052874) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.Runiv.SI()-8.314462618) < 1e-9)
	assert.True(t, math.Abs(CONSTANTS.Re.SI()-6371.0) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.M.SI()-0.0289644) < 1e-9)
	assert.Equal(t, 1.4, CONSTANTS.Gamma)
	assert.True(t, math.Abs(CONSTANTS.Cp.SI()-1005.0) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.Cv.SI()-718.0) < 1e-6)
	assert.True(t, math.Abs(CONSTANTS.S.SI()-110.4) < 1e-6)
}

func Test_DerivedConstants(t *testing.T) {
	// nu_0 = mu_0 / rho_0
	assert.True(t, math.Abs(CONSTANTS.MSL_KINEMATIC_VISCOSITY.SI()-1.7894e-5/1.2250122659907) < 1e-12)

	// a_0 = sqrt(gamma*R*T_0) ≈ 340.294 m/s
	assert.True(t, math.Abs(CONSTANTS.A0.SI()-340.294) < 1e-2)
}

func Test_ConstantsImmutability(t *testing.T) {
	var confErr *ConfigurationError

	err := CONSTANTS.G.Set(10.0)
	assert.NotNil(t, err)
	assert.True(t, errors.As(err, &confErr))
	assert.True(t, math.Abs(CONSTANTS.G.SI()-9.80665) < 1e-6)

	err = CONSTANTS.MSL_TEMPERATURE.Set(300)
	assert.True(t, errors.As(err, &confErr))
}

func Test_ConstantsUnitTagged(t *testing.T) {
	resetUnitStandard()
	t.Cleanup(resetUnitStandard)

	v := CONSTANTS.MSL_TEMPERATURE.Value()
	assert.Equal(t, 288.15, v.Val)
	assert.Equal(t, "K", v.Symbol)
	assert.Equal(t, "288.15 K", CONSTANTS.MSL_TEMPERATURE.String())
}
