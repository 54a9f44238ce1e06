package mode

import "fmt"

type Mode uint8

const (
	Thickness Mode = iota
	Multibeam
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "thickness", "t":
		return Thickness, nil
	case "multibeam", "m":
		return Multibeam, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Thickness:
		return "thickness"
	case Multibeam:
		return "multibeam"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}
