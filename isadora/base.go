package isadora

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

// Base atmospheric models.
//
// Implements the International Standard Atmosphere (ICAO 1983) from sea level
// up to the stratopause (47 km geopotential). Atmospheric layers expose
// temperature and pressure as closed-form functions of altitude; the ISA
// type composes the selected layer with the physical constants into derived
// properties (density, viscosities, speed of sound, Mach number, dynamic
// pressure).
//
// All internal computation is in SI units (altitude in meters); user-facing
// values are converted to the active unit standard at the read boundary.

// Layer boundaries, geopotential meters.
const (
	tropopause_base  = 11000.0
	lower_strat_base = 20000.0
	upper_strat_base = 32000.0
	stratopause      = 47000.0
)

// AtmosphericLayer is the capability contract implemented by each of the four
// layer variants. Altitude arguments are geopotential heights in SI meters;
// offset is the additive off-standard-day temperature deviation in Kelvin.
type AtmosphericLayer interface {
	Name() string
	LapseRate() float64       // K/m, 0 for isothermal layers
	BaseHeight() float64      // m
	BaseTemperature() float64 // K, standard (offset excluded)
	BasePressure() float64    // Pa
	BaseDensity() float64     // kg/m³

	// Temperature at altitude, including the offset.
	Temperature(altitude, offset float64) float64 // K
	// Pressure at altitude. The offset does not perturb pressure: per the
	// ICAO off-standard-day convention the barometric exponent is taken
	// over the standard temperature profile.
	Pressure(altitude float64) float64 // Pa
}

// layer_base carries the shared base state of a layer.
type layer_base struct {
	name             string
	lapse_rate       float64 // K/m
	base_height      float64 // m
	base_temperature float64 // K
	base_pressure    float64 // Pa
	base_density     float64 // kg/m³
}

func (l layer_base) Name() string             { return l.name }
func (l layer_base) LapseRate() float64       { return l.lapse_rate }
func (l layer_base) BaseHeight() float64      { return l.base_height }
func (l layer_base) BaseTemperature() float64 { return l.base_temperature }
func (l layer_base) BasePressure() float64    { return l.base_pressure }
func (l layer_base) BaseDensity() float64     { return l.base_density }

// gradient_layer is a layer with a nonzero temperature lapse rate.
type gradient_layer struct {
	layer_base
}

func (l gradient_layer) Temperature(altitude, offset float64) float64 {
	return l.base_temperature + l.lapse_rate*(altitude-l.base_height) + offset
}

// Standard barometric formula, P = P_b·(T/T_b)^(−g/(L·R)), evaluated over
// the standard temperature profile.
func (l gradient_layer) Pressure(altitude float64) float64 {
	t_std := l.base_temperature + l.lapse_rate*(altitude-l.base_height)
	exp := -CONSTANTS.G.SI() / (l.lapse_rate * CONSTANTS.R.SI())
	return l.base_pressure * math.Pow(t_std/l.base_temperature, exp)
}

// isothermal_layer is a layer where temperature does not vary with altitude.
type isothermal_layer struct {
	layer_base
}

func (l isothermal_layer) Temperature(altitude, offset float64) float64 {
	return l.base_temperature + offset
}

func (l isothermal_layer) Pressure(altitude float64) float64 {
	num := -CONSTANTS.G.SI() * (altitude - l.base_height)
	return l.base_pressure * math.Exp(num/(CONSTANTS.R.SI()*l.base_temperature))
}

// The four layer variants.
type (
	// Troposphere: 0–11 km, lapse rate −6.5 K/km.
	Troposphere struct{ gradient_layer }
	// Tropopause: 11–20 km, isothermal at 216.65 K.
	Tropopause struct{ isothermal_layer }
	// LowerStratosphere: 20–32 km, lapse rate +1.0 K/km.
	LowerStratosphere struct{ gradient_layer }
	// UpperStratosphere: 32–47 km, lapse rate +2.8 K/km.
	UpperStratosphere struct{ gradient_layer }
)

var (
	troposphere        Troposphere
	tropopause         Tropopause
	lower_stratosphere LowerStratosphere
	upper_stratosphere UpperStratosphere
)

// The base state of each layer above the troposphere is obtained by
// evaluating the layer below at the shared boundary, so that temperature and
// pressure are exactly continuous across 11 km, 20 km and 32 km.
func init() {
	R := CONSTANTS.R.SI()

	troposphere = Troposphere{gradient_layer{layer_base{
		name:             "Troposphere",
		lapse_rate:       -0.0065,
		base_height:      0,
		base_temperature: CONSTANTS.MSL_TEMPERATURE.SI(),
		base_pressure:    CONSTANTS.MSL_PRESSURE.SI(),
	}}}
	troposphere.base_density = troposphere.base_pressure / (R * troposphere.base_temperature)

	tropopause = Tropopause{isothermal_layer{layer_base{
		name:             "Tropopause",
		lapse_rate:       0,
		base_height:      tropopause_base,
		base_temperature: troposphere.Temperature(tropopause_base, 0),
		base_pressure:    troposphere.Pressure(tropopause_base),
	}}}
	tropopause.base_density = tropopause.base_pressure / (R * tropopause.base_temperature)

	lower_stratosphere = LowerStratosphere{gradient_layer{layer_base{
		name:             "Lower Stratosphere",
		lapse_rate:       0.0010,
		base_height:      lower_strat_base,
		base_temperature: tropopause.Temperature(lower_strat_base, 0),
		base_pressure:    tropopause.Pressure(lower_strat_base),
	}}}
	lower_stratosphere.base_density = lower_stratosphere.base_pressure / (R * lower_stratosphere.base_temperature)

	upper_stratosphere = UpperStratosphere{gradient_layer{layer_base{
		name:             "Upper Stratosphere",
		lapse_rate:       0.0028,
		base_height:      upper_strat_base,
		base_temperature: lower_stratosphere.Temperature(upper_strat_base, 0),
		base_pressure:    lower_stratosphere.Pressure(upper_strat_base),
	}}}
	upper_stratosphere.base_density = upper_stratosphere.base_pressure / (R * upper_stratosphere.base_temperature)
}

// _choose_atmosphere maps a geopotential altitude (SI meters) to the layer
// variant covering it.
func _choose_atmosphere(altitude float64) (AtmosphericLayer, error) {
	switch {
	case altitude < 0 || altitude > stratopause:
		return nil, rangeErrorf(
			"altitude %g m is out of the supported range: the model is only valid within or below the stratosphere", altitude)
	case altitude < tropopause_base:
		return troposphere, nil
	case altitude < lower_strat_base:
		return tropopause, nil
	case altitude < upper_strat_base:
		return lower_stratosphere, nil
	default:
		return upper_stratosphere, nil
	}
}

// ISA is the International Standard Atmosphere model at one altitude.
//
// Instances are immutable once constructed; offset arithmetic (Add/Sub)
// returns a new instance.
type ISA struct {
	offset     float64 // additive temperature deviation, K
	altitude   float64 // geopotential height, m
	atmosphere AtmosphericLayer
}

// NewISA builds the atmosphere model at the given geopotential height,
// expressed in the active standard's distance unit (km under SI, ft under
// USCS/IMPERIAL). offset is the off-standard-day temperature deviation in
// Kelvin.
func NewISA(offset float64, geopotential_height float64) (*ISA, error) {
	if math.IsNaN(geopotential_height) || math.IsInf(geopotential_height, 0) {
		return nil, validationErrorf("geopotential height must be a finite number")
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, validationErrorf("temperature offset must be a finite number")
	}

	h_km, err := ToSI(geopotential_height, DISTANCE)
	if err != nil {
		return nil, err
	}
	if h_km < 0 {
		return nil, validationErrorf("geopotential height must not be negative, got %g km", h_km)
	}
	return newISAFromKm(offset, h_km)
}

func newISAFromKm(offset float64, h_km float64) (*ISA, error) {
	altitude := h_km * 1000.0
	layer, err := _choose_atmosphere(altitude)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("isadora")
	logger.Debugf("selected %s for geopotential height %.3f km", layer.Name(), h_km)

	return &ISA{offset: offset, altitude: altitude, atmosphere: layer}, nil
}

// FromGeometricHeight builds the model from a geometric height (in the
// active standard's distance unit), converted to geopotential height via
// h_p = R_e·h_g/(R_e + h_g).
func FromGeometricHeight(offset float64, geometric_height float64) (*ISA, error) {
	if math.IsNaN(geometric_height) || math.IsInf(geometric_height, 0) {
		return nil, validationErrorf("geometric height must be a finite number")
	}
	hg_km, err := ToSI(geometric_height, DISTANCE)
	if err != nil {
		return nil, err
	}
	if hg_km < 0 {
		return nil, validationErrorf("geometric height must not be negative, got %g km", hg_km)
	}
	re := CONSTANTS.Re.SI()
	return newISAFromKm(offset, re*hg_km/(re+hg_km))
}

// GeopotentialHeight converts a geometric height (active distance unit) to
// geopotential height, returned in the active distance unit.
func GeopotentialHeight(geometric_height float64) (Value, error) {
	hg_km, err := ToSI(geometric_height, DISTANCE)
	if err != nil {
		return Value{}, err
	}
	re := CONSTANTS.Re.SI()
	return ToUserUnit(re*hg_km/(re+hg_km), DISTANCE)
}

func (a *ISA) String() string {
	return fmt.Sprintf("ISA(%g, %s)", a.offset, a.Altitude())
}

// Offset returns the temperature deviation in Kelvin.
func (a *ISA) Offset() float64 {
	return a.offset
}

// Add returns a new instance at the same altitude with the temperature
// offset increased by n Kelvin.
func (a *ISA) Add(n float64) *ISA {
	atm, _ := newISAFromKm(a.offset+n, a.altitude/1000.0)
	return atm
}

// Sub returns a new instance at the same altitude with the temperature
// offset decreased by n Kelvin.
func (a *ISA) Sub(n float64) *ISA {
	return a.Add(-n)
}

// Atmosphere returns the active layer variant.
func (a *ISA) Atmosphere() AtmosphericLayer {
	return a.atmosphere
}

// Altitude returns the geopotential height in the active distance unit.
func (a *ISA) Altitude() Value {
	return to_user_unit(a.altitude/1000.0, DISTANCE)
}

// GeometricHeight returns the geometric height, the inverse transform
// h_g = R_e·h_p/(R_e − h_p), in the active distance unit.
func (a *ISA) GeometricHeight() Value {
	re := CONSTANTS.Re.SI()
	hp := a.altitude / 1000.0
	return to_user_unit(re*hp/(re-hp), DISTANCE)
}

// LapseRate returns the active layer's lapse rate in the active unit.
func (a *ISA) LapseRate() Value {
	return to_user_unit(a.atmosphere.LapseRate(), LAPSE_RATE)
}

// temperature_si returns the local temperature in Kelvin, offset included.
func (a *ISA) temperature_si() float64 {
	return a.atmosphere.Temperature(a.altitude, a.offset)
}

// density_si returns the local density in kg/m³ via the ideal-gas relation
// rho = P/(R·T).
func (a *ISA) density_si() float64 {
	return a.atmosphere.Pressure(a.altitude) / (CONSTANTS.R.SI() * a.temperature_si())
}

// Temperature at the current altitude.
func (a *ISA) Temperature() Value {
	return to_user_unit(a.temperature_si(), TEMPERATURE)
}

// Pressure at the current altitude.
func (a *ISA) Pressure() Value {
	return to_user_unit(a.atmosphere.Pressure(a.altitude), PRESSURE)
}

// Density at the current altitude.
func (a *ISA) Density() Value {
	return to_user_unit(a.density_si(), DENSITY)
}

// TemperatureRatio is the local temperature divided by the sea-level
// standard temperature. Dimensionless.
func (a *ISA) TemperatureRatio() float64 {
	return a.temperature_si() / CONSTANTS.MSL_TEMPERATURE.SI()
}

// PressureRatio is the local pressure divided by the sea-level standard
// pressure. Dimensionless.
func (a *ISA) PressureRatio() float64 {
	return a.atmosphere.Pressure(a.altitude) / CONSTANTS.MSL_PRESSURE.SI()
}

// DensityRatio is the local density divided by the sea-level standard
// density. Dimensionless.
func (a *ISA) DensityRatio() float64 {
	return a.density_si() / CONSTANTS.MSL_DENSITY.SI()
}

// DynamicViscosity of air at the local temperature, by Sutherland's law:
//
//	mu(T) = mu_0·(T/T_0)^(3/2)·(T_0+S)/(T+S)
func (a *ISA) DynamicViscosity() Value {
	t := a.temperature_si()
	t0 := CONSTANTS.MSL_TEMPERATURE.SI()
	s := CONSTANTS.S.SI()
	mu := CONSTANTS.MSL_DYNAMIC_VISCOSITY.SI() * math.Pow(t/t0, 1.5) * (t0 + s) / (t + s)
	return to_user_unit(mu, DYNAMIC_VISCOSITY)
}

// KinematicViscosity of air at the current altitude, mu/rho.
func (a *ISA) KinematicViscosity() Value {
	t := a.temperature_si()
	t0 := CONSTANTS.MSL_TEMPERATURE.SI()
	s := CONSTANTS.S.SI()
	mu := CONSTANTS.MSL_DYNAMIC_VISCOSITY.SI() * math.Pow(t/t0, 1.5) * (t0 + s) / (t + s)
	return to_user_unit(mu/a.density_si(), KINEMATIC_VISCOSITY)
}

// SpeedOfSound at the current altitude, a = sqrt(gamma·R·T).
func (a *ISA) SpeedOfSound() Value {
	res := math.Sqrt(CONSTANTS.Gamma * CONSTANTS.R.SI() * a.temperature_si())
	return to_user_unit(res, SPEED)
}

// speed_of_sound_si in m/s.
func (a *ISA) speed_of_sound_si() float64 {
	return math.Sqrt(CONSTANTS.Gamma * CONSTANTS.R.SI() * a.temperature_si())
}

// MachNumber for a velocity given in the active speed unit. Dimensionless.
func (a *ISA) MachNumber(velocity float64) (float64, error) {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0, validationErrorf("velocity must be a finite number")
	}
	v, err := ToSI(velocity, SPEED)
	if err != nil {
		return 0, err
	}
	return v / a.speed_of_sound_si(), nil
}

// DynamicPressure q = 0.5·rho·V² for a velocity given in the active speed
// unit, returned in the active pressure unit.
func (a *ISA) DynamicPressure(velocity float64) (Value, error) {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return Value{}, validationErrorf("velocity must be a finite number")
	}
	v, err := ToSI(velocity, SPEED)
	if err != nil {
		return Value{}, err
	}
	return to_user_unit(0.5*a.density_si()*v*v, PRESSURE), nil
}
