package isadora

import (
	"fmt"
	"sync"
)

// Unit standards and unit-conversion utilities.
//
// All numerical calculations within isadora are performed in SI units.
// This file provides transparent conversion to and from the user-selected
// unit standard (SI, USCS or IMPERIAL). The unit standard can be set only
// once per process.

// Physical quantity names recognized by the conversion functions.
type Quantity string

const (
	TEMPERATURE         Quantity = "TEMPERATURE"
	PRESSURE            Quantity = "PRESSURE"
	DENSITY             Quantity = "DENSITY"
	DISTANCE            Quantity = "DISTANCE"
	DYNAMIC_VISCOSITY   Quantity = "DYNAMIC_VISCOSITY"
	KINEMATIC_VISCOSITY Quantity = "KINEMATIC_VISCOSITY"
	SPEED               Quantity = "SPEED"
	LAPSE_RATE          Quantity = "LAPSE_RATE"
	UNIV_GAS_CONSTANT   Quantity = "UNIV_GAS_CONSTANT"
	EARTH_MOLAR_MASS    Quantity = "EARTH_MOLAR_MASS"
	SPEC_HEAT_CONSTANT  Quantity = "SPEC_HEAT_CONSTANT"
)

// quantities lists every recognized quantity name (iteration order for tests
// and table construction).
var quantities = []Quantity{
	TEMPERATURE, PRESSURE, DENSITY, DISTANCE, DYNAMIC_VISCOSITY,
	KINEMATIC_VISCOSITY, SPEED, LAPSE_RATE, UNIV_GAS_CONSTANT,
	EARTH_MOLAR_MASS, SPEC_HEAT_CONSTANT,
}

// UnitDef defines one unit of a quantity as an affine map to its SI
// equivalent:
//
//	si = x*Scale + Offset
//
// Pure scale factors have Offset == 0. Temperature is the only quantity with
// a nonzero offset (Fahrenheit/Celsius).
type UnitDef struct {
	Name   string
	Symbol string
	Scale  float64
	Offset float64
}

// Value is a unit-tagged scalar returned at the read boundary of the public
// API: the magnitude expressed in the active unit standard plus its unit
// label.
type Value struct {
	Val      float64
	Symbol   string
	Quantity Quantity
}

func (v Value) String() string {
	return fmt.Sprintf("%g %s", v.Val, v.Symbol)
}

// ============================================================================
// UNIT STANDARD DEFINITIONS
// ============================================================================

// Conversion factors to SI base units.
const (
	_foot     = 0.3048          // m
	_pound    = 0.45359237      // kg
	_slug     = 14.593902937    // kg
	_cubicFt  = 0.028316846592  // m³
	_inHg     = 3386.389        // Pa
	_knot     = 1852.0 / 3600.0 // m/s
	_rankineF = 5.0 / 9.0       // K per °F (difference)
)

// The SI distance unit is the kilometer: geopotential height is the model's
// native vertical coordinate and is carried in km, as in the reference
// implementation. Layer formulas convert to meters internally.
var si_units = map[Quantity]UnitDef{
	TEMPERATURE:         {"kelvin", "K", 1, 0},
	PRESSURE:            {"pascal", "Pa", 1, 0},
	DENSITY:             {"kilogram per cubic meter", "kg/m³", 1, 0},
	DISTANCE:            {"kilometer", "km", 1, 0},
	DYNAMIC_VISCOSITY:   {"kilogram per meter second", "kg/(m·s)", 1, 0},
	KINEMATIC_VISCOSITY: {"square meter per second", "m²/s", 1, 0},
	SPEED:               {"meter per second", "m/s", 1, 0},
	LAPSE_RATE:          {"kelvin per meter", "K/m", 1, 0},
	UNIV_GAS_CONSTANT:   {"joule per mole kelvin", "J/(mol·K)", 1, 0},
	EARTH_MOLAR_MASS:    {"kilogram per mole", "kg/mol", 1, 0},
	SPEC_HEAT_CONSTANT:  {"joule per kilogram kelvin", "J/(kg·K)", 1, 0},
}

var uscs_units = map[Quantity]UnitDef{
	TEMPERATURE:         {"fahrenheit", "°F", _rankineF, 459.67 * _rankineF},
	PRESSURE:            {"inch of mercury", "inHg", _inHg, 0},
	DENSITY:             {"slug per cubic foot", "slug/ft³", _slug / _cubicFt, 0},
	DISTANCE:            {"foot", "ft", _foot / 1000.0, 0},
	DYNAMIC_VISCOSITY:   {"slug per foot second", "slug/(ft·s)", _slug / _foot, 0},
	KINEMATIC_VISCOSITY: {"square foot per second", "ft²/s", _foot * _foot, 0},
	SPEED:               {"foot per second", "ft/s", _foot, 0},
	LAPSE_RATE:          {"fahrenheit per foot", "°F/ft", _rankineF / _foot, 0},
	UNIV_GAS_CONSTANT:   {"joule per mole kelvin", "J/(mol·K)", 1, 0},
	EARTH_MOLAR_MASS:    {"kilogram per mole", "kg/mol", 1, 0},
	SPEC_HEAT_CONSTANT:  {"joule per kilogram kelvin", "J/(kg·K)", 1, 0},
}

var imperial_units = map[Quantity]UnitDef{
	TEMPERATURE:         {"celsius", "°C", 1, 273.15},
	PRESSURE:            {"pound per square foot", "lb/ft²", _pound * g0 / (_foot * _foot), 0},
	DENSITY:             {"pound per cubic foot", "lb/ft³", _pound / _cubicFt, 0},
	DISTANCE:            {"foot", "ft", _foot / 1000.0, 0},
	DYNAMIC_VISCOSITY:   {"pound per foot second", "lb/(ft·s)", _pound / _foot, 0},
	KINEMATIC_VISCOSITY: {"square foot per second", "ft²/s", _foot * _foot, 0},
	SPEED:               {"knot", "kn", _knot, 0},
	LAPSE_RATE:          {"celsius per foot", "°C/ft", 1.0 / _foot, 0},
	UNIV_GAS_CONSTANT:   {"joule per mole kelvin", "J/(mol·K)", 1, 0},
	EARTH_MOLAR_MASS:    {"kilogram per mole", "kg/mol", 1, 0},
	SPEC_HEAT_CONSTANT:  {"joule per kilogram kelvin", "J/(kg·K)", 1, 0},
}

// QuantityTable groups the unit definitions of every physical quantity under
// one unit standard. One table per standard, built eagerly below.
type QuantityTable struct {
	UNIT_NAME string
	units     map[Quantity]UnitDef
}

var (
	SI       = QuantityTable{UNIT_NAME: "SI", units: si_units}
	USCS     = QuantityTable{UNIT_NAME: "USCS", units: uscs_units}
	IMPERIAL = QuantityTable{UNIT_NAME: "IMPERIAL", units: imperial_units}
)

// Unit returns the unit definition for the given quantity.
func (t QuantityTable) Unit(quantity Quantity) (UnitDef, error) {
	u, ok := t.units[quantity]
	if !ok {
		return UnitDef{}, unitErrorf("%s is not a recognized quantity", quantity)
	}
	return u, nil
}

// ToSI converts x, expressed in this table's unit for the quantity, into its
// SI equivalent.
func (t QuantityTable) ToSI(x float64, quantity Quantity) (float64, error) {
	u, err := t.Unit(quantity)
	if err != nil {
		return 0, err
	}
	return x*u.Scale + u.Offset, nil
}

// FromSI converts an SI scalar into this table's unit for the quantity,
// returning a unit-tagged value.
func (t QuantityTable) FromSI(x float64, quantity Quantity) (Value, error) {
	u, err := t.Unit(quantity)
	if err != nil {
		return Value{}, err
	}
	return Value{Val: (x - u.Offset) / u.Scale, Symbol: u.Symbol, Quantity: quantity}, nil
}

// ============================================================================
// UNIT REGISTRY
// ============================================================================

// STANDARDS lists the supported unit standards.
var STANDARDS = [...]string{"SI", "USCS", "IMPERIAL"}

// UnitRegistry holds the process-wide active unit standard. The standard can
// be set exactly once; reads default to SI until then.
type UnitRegistry struct {
	mu       sync.Mutex
	standard string
	locked   bool
}

var registry = UnitRegistry{standard: "SI"}

var unit_tables = map[string]QuantityTable{
	"SI":       SI,
	"USCS":     USCS,
	"IMPERIAL": IMPERIAL,
}

// SetUnitStandard freezes the process-wide unit standard. standard must be
// exactly one of "SI", "USCS" or "IMPERIAL" (case-sensitive). A second call
// fails, as does an unrecognized value.
func SetUnitStandard(standard string) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if registry.locked {
		return configurationErrorf("unit standard has already been set to %s", registry.standard)
	}
	if _, ok := unit_tables[standard]; !ok {
		return configurationErrorf("%s is not an available unit standard", standard)
	}

	registry.standard = standard
	registry.locked = true
	return nil
}

// GetUnits returns the QuantityTable for the active standard.
func GetUnits() QuantityTable {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return unit_tables[registry.standard]
}

// GetUnitStandard returns the raw unit-definition mapping for the active
// standard, keyed by quantity name.
func GetUnitStandard() map[Quantity]UnitDef {
	return GetUnits().units
}

// resetUnitStandard unlocks the registry and restores the SI default.
// Test hook only.
func resetUnitStandard() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.standard = "SI"
	registry.locked = false
}

// ============================================================================
// CONVERSION FUNCTIONS
// ============================================================================

// ToSI converts a scalar expressed in the active standard's unit for the
// quantity into its SI equivalent.
func ToSI(x float64, quantity Quantity) (float64, error) {
	return GetUnits().ToSI(x, quantity)
}

// ToUserUnit converts an SI scalar into the active standard's unit for the
// quantity, returning a unit-tagged value.
func ToUserUnit(x float64, quantity Quantity) (Value, error) {
	return GetUnits().FromSI(x, quantity)
}

// to_user_unit converts an SI scalar for a quantity known to be valid.
// Internal read-boundary helper for the ISA properties.
func to_user_unit(x float64, quantity Quantity) Value {
	v, err := ToUserUnit(x, quantity)
	if err != nil {
		panic(err)
	}
	return v
}

// ============================================================================
// UNIT-AWARE PARAMETERS
// ============================================================================

// UnitParam is a write-once unit-aware parameter: an SI magnitude tagged with
// its quantity kind. Assigning a second time fails; reads convert to the
// active unit standard at the access boundary.
type UnitParam struct {
	name     string
	quantity Quantity
	assigned bool
	si       float64
}

func NewUnitParam(name string, quantity Quantity) *UnitParam {
	return &UnitParam{name: name, quantity: quantity}
}

// Set assigns the parameter's magnitude, given in SI units.
func (p *UnitParam) Set(value float64) error {
	if p.assigned {
		return configurationErrorf("%s is a constant and cannot be changed", p.name)
	}
	p.si = value
	p.assigned = true
	return nil
}

// SI returns the magnitude in SI units.
func (p *UnitParam) SI() float64 {
	return p.si
}

// Value returns the magnitude converted to the active unit standard.
func (p *UnitParam) Value() Value {
	return to_user_unit(p.si, p.quantity)
}

func (p *UnitParam) String() string {
	return p.Value().String()
}
