package isadora

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// to_si(to_user_unit(x, q), q) == x for every quantity and every standard.
func Test_UnitRoundTrip(t *testing.T) {
	for _, table := range []QuantityTable{SI, USCS, IMPERIAL} {
		for _, q := range quantities {
			x := 123.456

			si, err := table.ToSI(x, q)
			assert.Nil(t, err)
			back, err := table.FromSI(si, q)
			assert.Nil(t, err)

			assert.True(t, math.Abs(back.Val-x) < 1e-9,
				"%s round trip broken for %s", table.UNIT_NAME, q)
		}
	}
}

func Test_TemperatureConversions(t *testing.T) {
	si, _ := USCS.ToSI(32, TEMPERATURE)
	assert.True(t, math.Abs(si-273.15) < 1e-9) // 32 °F

	si, _ = USCS.ToSI(59, TEMPERATURE)
	assert.True(t, math.Abs(si-288.15) < 1e-9) // 59 °F, standard day

	si, _ = IMPERIAL.ToSI(0, TEMPERATURE)
	assert.True(t, math.Abs(si-273.15) < 1e-9) // 0 °C

	si, _ = IMPERIAL.ToSI(15, TEMPERATURE)
	assert.True(t, math.Abs(si-288.15) < 1e-9)
}

func Test_ScaleConversions(t *testing.T) {
	si, _ := USCS.ToSI(1, PRESSURE)
	assert.True(t, math.Abs(si-3386.389) < 1e-6) // 1 inHg

	si, _ = USCS.ToSI(1, DISTANCE)
	assert.True(t, math.Abs(si-0.0003048) < 1e-12) // 1 ft in km

	si, _ = IMPERIAL.ToSI(1, SPEED)
	assert.True(t, math.Abs(si-0.514444444) < 1e-6) // 1 kn

	si, _ = USCS.ToSI(1, SPEED)
	assert.True(t, math.Abs(si-0.3048) < 1e-12) // 1 ft/s

	si, _ = IMPERIAL.ToSI(1, PRESSURE)
	assert.True(t, math.Abs(si-47.880259) < 1e-4) // 1 lb/ft²
}

// Lapse rate is a temperature difference per length: no affine offset.
func Test_LapseRateConversion(t *testing.T) {
	si, _ := USCS.ToSI(0, LAPSE_RATE)
	assert.Equal(t, 0.0, si)

	// ISA tropospheric lapse, −0.0065 K/m ≈ −0.00356616 °F/ft
	v, _ := USCS.FromSI(-0.0065, LAPSE_RATE)
	assert.True(t, math.Abs(v.Val-(-0.00356616)) < 1e-7)
}

func Test_GasConstantsStaySI(t *testing.T) {
	for _, table := range []QuantityTable{USCS, IMPERIAL} {
		for _, q := range []Quantity{UNIV_GAS_CONSTANT, EARTH_MOLAR_MASS, SPEC_HEAT_CONSTANT} {
			si, _ := table.ToSI(8.314, q)
			assert.Equal(t, 8.314, si)
		}
	}
}

func Test_UnknownQuantity(t *testing.T) {
	var unitErr *UnitError

	_, err := ToSI(1.0, "BANANA")
	assert.NotNil(t, err)
	assert.True(t, errors.As(err, &unitErr))

	_, err = ToUserUnit(1.0, "HUMIDITY")
	assert.True(t, errors.As(err, &unitErr))
}

func Test_SetUnitStandard_Once(t *testing.T) {
	resetUnitStandard()
	t.Cleanup(resetUnitStandard)

	assert.Nil(t, SetUnitStandard("USCS"))
	assert.Equal(t, "USCS", GetUnits().UNIT_NAME)

	var confErr *ConfigurationError
	err := SetUnitStandard("SI")
	assert.NotNil(t, err)
	assert.True(t, errors.As(err, &confErr))

	// still locked for the same standard too
	err = SetUnitStandard("USCS")
	assert.True(t, errors.As(err, &confErr))
}

func Test_SetUnitStandard_Invalid(t *testing.T) {
	resetUnitStandard()
	t.Cleanup(resetUnitStandard)

	var confErr *ConfigurationError

	err := SetUnitStandard("METRIC")
	assert.True(t, errors.As(err, &confErr))

	// match is case-sensitive
	err = SetUnitStandard("uscs")
	assert.True(t, errors.As(err, &confErr))

	// a failed set must not lock the registry
	assert.Nil(t, SetUnitStandard("IMPERIAL"))
}

func Test_DefaultStandardIsSI(t *testing.T) {
	resetUnitStandard()
	t.Cleanup(resetUnitStandard)

	assert.Equal(t, "SI", GetUnits().UNIT_NAME)
	defs := GetUnitStandard()
	assert.Equal(t, "K", defs[TEMPERATURE].Symbol)
	assert.Equal(t, "km", defs[DISTANCE].Symbol)
}

// End-to-end under USCS: inputs in feet, outputs in Fahrenheit/inHg.
func Test_ISA_UnderUSCS(t *testing.T) {
	resetUnitStandard()
	t.Cleanup(resetUnitStandard)
	assert.Nil(t, SetUnitStandard("USCS"))

	sea, err := NewISA(0, 0)
	assert.Nil(t, err)
	assert.True(t, math.Abs(sea.Temperature().Val-59.0) < 1e-6) // 288.15 K
	assert.Equal(t, "°F", sea.Temperature().Symbol)
	assert.True(t, math.Abs(sea.Pressure().Val-29.9213) < 1e-3) // 101325 Pa
	assert.Equal(t, "inHg", sea.Pressure().Symbol)

	// 36089.24 ft = 11 km: first meter of the tropopause
	atm, err := NewISA(0, 36089.24)
	assert.Nil(t, err)
	assert.Equal(t, "Tropopause", atm.Atmosphere().Name())
}

func Test_ToUserUnit_Tagged(t *testing.T) {
	resetUnitStandard()
	t.Cleanup(resetUnitStandard)

	v, err := ToUserUnit(288.15, TEMPERATURE)
	assert.Nil(t, err)
	assert.Equal(t, 288.15, v.Val)
	assert.Equal(t, "K", v.Symbol)
	assert.Equal(t, TEMPERATURE, v.Quantity)
	assert.Equal(t, "288.15 K", v.String())
}

func Test_UnitParam_WriteOnce(t *testing.T) {
	p := NewUnitParam("test_param", PRESSURE)
	assert.Nil(t, p.Set(101325))
	assert.Equal(t, 101325.0, p.SI())

	var confErr *ConfigurationError
	err := p.Set(2000)
	assert.NotNil(t, err)
	assert.True(t, errors.As(err, &confErr))
	assert.Equal(t, 101325.0, p.SI())

	resetUnitStandard()
	t.Cleanup(resetUnitStandard)
	assert.Equal(t, "Pa", p.Value().Symbol)
}
