package isadora

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

// Altitude-profile tables.
//
// A Profile samples the atmosphere over a range of geopotential heights and
// holds one column per property, in the active unit standard. It backs the
// CLI's --profile mode and replaces the reference implementation's plotted
// altitude sweeps with their underlying data.

// Profile is a sampled table of atmospheric properties.
type Profile struct {
	Height             []float64 // geopotential height, active distance unit
	Temperature        []float64
	Pressure           []float64
	Density            []float64
	SpeedOfSound       []float64
	DynamicViscosity   []float64
	KinematicViscosity []float64
	Layer              []string // layer name per sample

	units QuantityTable // table active at sampling time, for header symbols
}

// AtmosphereProfile samples n evenly spaced altitudes between start and end
// geopotential heights (active distance unit), with the given temperature
// offset. Fails if any altitude falls outside the supported range.
func AtmosphereProfile(offset float64, start, end float64, n int) (*Profile, error) {
	if n < 2 {
		return nil, validationErrorf("a profile needs at least 2 samples, got %d", n)
	}
	if end < start {
		return nil, validationErrorf("profile end height %g is below start height %g", end, start)
	}

	logger := logging.GetLogger("isadora")
	logger.Debugf("sampling atmosphere profile: %g..%g in %d steps", start, end, n)

	p := &Profile{
		Height:             make([]float64, n),
		Temperature:        make([]float64, n),
		Pressure:           make([]float64, n),
		Density:            make([]float64, n),
		SpeedOfSound:       make([]float64, n),
		DynamicViscosity:   make([]float64, n),
		KinematicViscosity: make([]float64, n),
		Layer:              make([]string, n),
		units:              GetUnits(),
	}
	floats.Span(p.Height, start, end)

	for i, h := range p.Height {
		atm, err := NewISA(offset, h)
		if err != nil {
			return nil, err
		}
		p.Temperature[i] = atm.Temperature().Val
		p.Pressure[i] = atm.Pressure().Val
		p.Density[i] = atm.Density().Val
		p.SpeedOfSound[i] = atm.SpeedOfSound().Val
		p.DynamicViscosity[i] = atm.DynamicViscosity().Val
		p.KinematicViscosity[i] = atm.KinematicViscosity().Val
		p.Layer[i] = atm.Atmosphere().Name()
	}
	return p, nil
}

// Len returns the number of samples.
func (p *Profile) Len() int {
	return len(p.Height)
}

func (p *Profile) symbol(q Quantity) string {
	u, _ := p.units.Unit(q)
	return u.Symbol
}

// ToCSV writes the profile as CSV with unit-annotated headers.
func (p *Profile) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("height [" + p.symbol(DISTANCE) + "]")
	buf.WriteString(",temperature [" + p.symbol(TEMPERATURE) + "]")
	buf.WriteString(",pressure [" + p.symbol(PRESSURE) + "]")
	buf.WriteString(",density [" + p.symbol(DENSITY) + "]")
	buf.WriteString(",speed_of_sound [" + p.symbol(SPEED) + "]")
	buf.WriteString(",dynamic_viscosity [" + p.symbol(DYNAMIC_VISCOSITY) + "]")
	buf.WriteString(",kinematic_viscosity [" + p.symbol(KINEMATIC_VISCOSITY) + "]")
	buf.WriteString(",layer")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < p.Len(); i++ {
		buf.WriteString(strconv.FormatFloat(p.Height[i], 'f', -1, 64))
		writeFloat(p.Temperature[i])
		writeFloat(p.Pressure[i])
		writeFloat(p.Density[i])
		writeFloat(p.SpeedOfSound[i])
		writeFloat(p.DynamicViscosity[i])
		writeFloat(p.KinematicViscosity[i])
		buf.WriteString(",")
		buf.WriteString(p.Layer[i])
		buf.WriteString("\n")
	}
}

// ToText writes the profile as an aligned plain-text table.
func (p *Profile) ToText(buf *bytes.Buffer) {
	buf.WriteString(fmt.Sprintf("%12s %12s %14s %12s %10s %14s %14s  %s\n",
		"height "+p.symbol(DISTANCE),
		"T "+p.symbol(TEMPERATURE),
		"P "+p.symbol(PRESSURE),
		"rho "+p.symbol(DENSITY),
		"a "+p.symbol(SPEED),
		"mu "+p.symbol(DYNAMIC_VISCOSITY),
		"nu "+p.symbol(KINEMATIC_VISCOSITY),
		"layer"))
	for i := 0; i < p.Len(); i++ {
		buf.WriteString(fmt.Sprintf("%12.3f %12.3f %14.3f %12.6f %10.3f %14.6e %14.6e  %s\n",
			p.Height[i],
			p.Temperature[i],
			p.Pressure[i],
			p.Density[i],
			p.SpeedOfSound[i],
			p.DynamicViscosity[i],
			p.KinematicViscosity[i],
			p.Layer[i]))
	}
}
