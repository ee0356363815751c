package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Column identifies one of the recognized automobile dataset fields.
type Column string

const (
	Symboling        Column = "symboling"
	Make             Column = "make"
	FuelType         Column = "fuel-type"
	Aspiration       Column = "aspiration"
	NumOfDoors       Column = "num-of-doors"
	BodyStyle        Column = "body-style"
	DriveWheels      Column = "drive-wheels"
	EngineLocation   Column = "engine-location"
	WheelBase        Column = "wheel-base"
	Length           Column = "length"
	Width            Column = "width"
	Height           Column = "height"
	CurbWeight       Column = "curb-weight"
	EngineType       Column = "engine-type"
	NumOfCylinders   Column = "num-of-cylinders"
	EngineSize       Column = "engine-size"
	FuelSystem       Column = "fuel-system"
	Bore             Column = "bore"
	Stroke           Column = "stroke"
	CompressionRatio Column = "compression-ratio"
	Horsepower       Column = "horsepower"
	PeakRPM          Column = "peak-rpm"
	CityMPG          Column = "city-mpg"
	HighwayMPG       Column = "highway-mpg"
	Price            Column = "price"
)

var columns = []Column{
	Symboling, Make, FuelType, Aspiration, NumOfDoors, BodyStyle, DriveWheels,
	EngineLocation, WheelBase, Length, Width, Height, CurbWeight, EngineType,
	NumOfCylinders, EngineSize, FuelSystem, Bore, Stroke, CompressionRatio,
	Horsepower, PeakRPM, CityMPG, HighwayMPG, Price,
}

var columnSet = func() map[Column]struct{} {
	m := make(map[Column]struct{}, len(columns))
	for _, c := range columns {
		m[c] = struct{}{}
	}
	return m
}()

// ErrUnknownColumn is returned when a column name is not recognized or not present in a dataset.
var ErrUnknownColumn = errors.New("unknown column")

// ErrUnknownKind is returned when a chart kind name is not recognized.
var ErrUnknownKind = errors.New("unknown chart kind")

// Columns returns every recognized column in declaration order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// IsColumn reports whether name is a recognized column identifier.
func IsColumn(name string) bool {
	_, ok := columnSet[Column(name)]
	return ok
}

// ParseColumn validates name against the registry.
func ParseColumn(name string) (Column, error) {
	n := strings.TrimSpace(name)
	if !IsColumn(n) {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return Column(n), nil
}

// ParseColumns parses every name, failing on the first unrecognized one.
func ParseColumns(names []string) ([]Column, error) {
	out := make([]Column, 0, len(names))
	for _, n := range names {
		c, err := ParseColumn(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (c Column) String() string { return string(c) }
