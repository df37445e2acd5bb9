// isadora - ICAO 1983 International Standard Atmosphere calculator
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/techkaduna/isadora/isadora"
)

func main() {
	parser := argparse.NewParser("isadora", "Computes ICAO 1983 standard-atmosphere properties at a given altitude")

	height := parser.FloatPositional(&argparse.Options{
		Default: 0.0,
		Help:    "Geopotential height (km under SI, ft under USCS/IMPERIAL)"})

	offset := parser.Float("", "offset", &argparse.Options{
		Default: 0.0,
		Help:    "Off-standard-day temperature offset in Kelvin"})

	units := parser.Selector("u", "units", []string{"SI", "USCS", "IMPERIAL"}, &argparse.Options{
		Default: "SI",
		Help:    "Unit standard for inputs and outputs"})

	geometric := parser.Flag("g", "geometric", &argparse.Options{
		Help: "Treat the altitude as geometric height instead of geopotential"})

	velocity := parser.Float("v", "velocity", &argparse.Options{
		Default: 0.0,
		Help:    "Velocity (active speed unit) for Mach number and dynamic pressure"})

	profile := parser.Flag("p", "profile", &argparse.Options{
		Help: "Output a profile table from sea level up to the given altitude"})

	steps := parser.Int("n", "steps", &argparse.Options{
		Default: 48,
		Help:    "Number of samples in profile mode"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (stdout when empty)"})

	format := parser.Selector("f", "file", []string{"CSV", "TEXT"}, &argparse.Options{
		Default: "TEXT",
		Help:    "Output format CSV or TEXT"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("isadora")
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// The unit standard is frozen before any atmosphere is constructed.
	if err := isadora.SetUnitStandard(*units); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *profile {
		prof, err := isadora.AtmosphereProfile(*offset, 0, *height, *steps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		if *format == "CSV" {
			prof.ToCSV(buf)
		} else {
			prof.ToText(buf)
		}
	} else {
		var atm *isadora.ISA
		var err error
		if *geometric {
			atm, err = isadora.FromGeometricHeight(*offset, *height)
		} else {
			atm, err = isadora.NewISA(*offset, *height)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		report(buf, atm, *velocity)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("writing %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
	}
}

// report prints all atmospheric properties at one altitude.
func report(buf *bytes.Buffer, atm *isadora.ISA, velocity float64) {
	fmt.Fprintf(buf, "Atmospheric layer:   %s\n", atm.Atmosphere().Name())
	fmt.Fprintf(buf, "Geopotential height: %s\n", atm.Altitude())
	fmt.Fprintf(buf, "Geometric height:    %s\n", atm.GeometricHeight())
	fmt.Fprintf(buf, "Temperature:         %s\n", atm.Temperature())
	fmt.Fprintf(buf, "Pressure:            %s\n", atm.Pressure())
	fmt.Fprintf(buf, "Density:             %s\n", atm.Density())
	fmt.Fprintf(buf, "Speed of sound:      %s\n", atm.SpeedOfSound())
	fmt.Fprintf(buf, "Dynamic viscosity:   %s\n", atm.DynamicViscosity())
	fmt.Fprintf(buf, "Kinematic viscosity: %s\n", atm.KinematicViscosity())
	fmt.Fprintf(buf, "Lapse rate:          %s\n", atm.LapseRate())
	fmt.Fprintf(buf, "Temperature ratio:   %.6f\n", atm.TemperatureRatio())
	fmt.Fprintf(buf, "Pressure ratio:      %.6f\n", atm.PressureRatio())
	fmt.Fprintf(buf, "Density ratio:       %.6f\n", atm.DensityRatio())

	if velocity != 0 {
		mach, err := atm.MachNumber(velocity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		q, err := atm.DynamicPressure(velocity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(buf, "Mach number:         %.3f\n", mach)
		fmt.Fprintf(buf, "Dynamic pressure:    %s\n", q)
	}
}
