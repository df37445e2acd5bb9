package isadora

import "math"

// Physical and atmospheric constants used throughout the package.
//
// All constants are stored in SI units and wrapped as write-once unit-aware
// parameters. The table is instantiated once at process start and exposed
// through CONSTANTS; it is read-only after initialization.

// g0 is the standard acceleration due to gravity in m/s². Duplicated as a
// plain const because the unit tables need it before CONSTANTS exists.
const g0 = 9.80665

// Constants is the read-only table of named physical constants.
type Constants struct {
	MSL_TEMPERATURE         *UnitParam // sea-level standard temperature, K
	MSL_PRESSURE            *UnitParam // sea-level standard pressure, Pa
	MSL_DENSITY             *UnitParam // sea-level standard air density, kg/m³
	MSL_DYNAMIC_VISCOSITY   *UnitParam // sea-level dynamic viscosity of air, kg/(m·s)
	MSL_KINEMATIC_VISCOSITY *UnitParam // sea-level kinematic viscosity, m²/s

	G     *UnitParam // g: standard acceleration due to gravity, m/s²
	R     *UnitParam // R: specific gas constant for dry air, J/(kg·K)
	Runiv *UnitParam // R_: universal gas constant, J/(mol·K)
	Re    *UnitParam // r: mean radius of the Earth, km
	M     *UnitParam // M: molar mass of dry air, kg/mol
	A0    *UnitParam // a_o: speed of sound at sea level, m/s

	Gamma float64 // y: ratio of specific heats, dimensionless

	Cp *UnitParam // c_p: specific heat at constant pressure, J/(kg·K)
	Cv *UnitParam // c_v: specific heat at constant volume, J/(kg·K)
	S  *UnitParam // S: Sutherland's constant, K
}

func newConstants() *Constants {
	c := &Constants{
		MSL_TEMPERATURE:         NewUnitParam("MSL_TEMPERATURE", TEMPERATURE),
		MSL_PRESSURE:            NewUnitParam("MSL_PRESSURE", PRESSURE),
		MSL_DENSITY:             NewUnitParam("MSL_DENSITY", DENSITY),
		MSL_DYNAMIC_VISCOSITY:   NewUnitParam("MSL_DYNAMIC_VISCOSITY", DYNAMIC_VISCOSITY),
		MSL_KINEMATIC_VISCOSITY: NewUnitParam("MSL_KINEMATIC_VISCOSITY", KINEMATIC_VISCOSITY),
		G:                       NewUnitParam("g", SPEED),
		R:                       NewUnitParam("R", SPEC_HEAT_CONSTANT),
		Runiv:                   NewUnitParam("R_", UNIV_GAS_CONSTANT),
		Re:                      NewUnitParam("r", DISTANCE),
		M:                       NewUnitParam("M", EARTH_MOLAR_MASS),
		A0:                      NewUnitParam("a_o", SPEED),
		Gamma:                   1.4,
		Cp:                      NewUnitParam("c_p", SPEC_HEAT_CONSTANT),
		Cv:                      NewUnitParam("c_v", SPEC_HEAT_CONSTANT),
		S:                       NewUnitParam("S", TEMPERATURE),
	}

	c.MSL_TEMPERATURE.Set(288.15)
	c.MSL_PRESSURE.Set(101325.0)
	c.MSL_DENSITY.Set(1.2250122659907)
	c.MSL_DYNAMIC_VISCOSITY.Set(1.7894e-5)
	c.G.Set(g0)
	c.R.Set(287.052874)
	c.Runiv.Set(8.314462618)
	c.Re.Set(6371.0) // geopotential altitude conversions, km
	c.M.Set(0.0289644)
	c.Cp.Set(1005.0)
	c.Cv.Set(718.0)
	c.S.Set(110.4)

	// Derived sea-level values.
	c.MSL_KINEMATIC_VISCOSITY.Set(c.MSL_DYNAMIC_VISCOSITY.SI() / c.MSL_DENSITY.SI())
	c.A0.Set(math.Sqrt(c.Gamma * c.R.SI() * c.MSL_TEMPERATURE.SI()))

	return c
}

// CONSTANTS is the singleton table of physical and atmospheric constants.
var CONSTANTS = newConstants()
