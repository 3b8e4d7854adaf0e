package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format selects which artifacts a run writes.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatBoth Format = "both"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatBoth:
		return f, nil
	case "":
		return FormatBoth, nil
	default:
		return "", fmt.Errorf("%w: %q (want json, csv or both)", ErrUnknownFormat, s)
	}
}

func (f Format) WantsJSON() bool { return f == FormatJSON || f == FormatBoth }
func (f Format) WantsCSV() bool  { return f == FormatCSV || f == FormatBoth }
