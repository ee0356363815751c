package chart

import (
	"errors"

	"github.com/KaramelBytes/autoplot-cli/internal/schema"
)

var (
	// ErrInvalidArgument indicates a chart kind was requested with arguments it cannot use,
	// e.g. a histogram with comparison columns or a scatter chart without them.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownColumn indicates a referenced column is absent from the dataset.
	ErrUnknownColumn = schema.ErrUnknownColumn
	// ErrUnsupportedFormat indicates a figure cannot be exported in the requested format.
	ErrUnsupportedFormat = errors.New("unsupported figure format")
)
