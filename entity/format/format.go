package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Csv
	Xlsx
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	case "xlsx":
		return Xlsx, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) Ext() string {
	switch f {
	case Csv:
		return ".csv"
	case Xlsx:
		return ".xlsx"
	default:
		return ".html"
	}
}
