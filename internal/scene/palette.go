package scene

import "walkthrough3d/internal/geom"

// Palette is the fixed color table of the walkthrough. It is passed by
// value so no emitter can change the colors another one sees.
type Palette struct {
	Wall         geom.Color
	DoorWindow   geom.Color
	Molding      geom.Color
	BalconyGrill geom.Color
	Roof         geom.Color
	Ground       geom.Color
	Sky          geom.Color

	WoodDark    geom.Color
	WoodLight   geom.Color
	Plant       geom.Color
	PlantPot    geom.Color
	Chair       geom.Color
	TableGray   geom.Color
	TableGrayD  geom.Color
	Interior    geom.Color
	FloorBase   geom.Color
	FloorSeam   geom.Color
	Ramp        geom.Color
	Handrail    geom.Color
	Black       geom.Color
	White       geom.Color
	Frame       geom.Color
	ClockBezel  geom.Color
	BookPalette [6]geom.Color

	// beach scene inside the painting
	SkyTop     geom.Color
	SkyHorizon geom.Color
	SeaTop     geom.Color
	SeaBottom  geom.Color
	Sand       geom.Color
	Sun        geom.Color
}

// DefaultPalette returns the library colors.
func DefaultPalette() Palette {
	doorWindow := geom.RGB(0.01, 0.22, 0.45)
	return Palette{
		Wall:         geom.RGB(0.98, 0.82, 0.76),
		DoorWindow:   doorWindow,
		Molding:      geom.RGB(0.95, 0.94, 0.90),
		BalconyGrill: geom.RGB(0.45, 0.65, 0.85),
		Roof:         geom.RGB(0.7, 0.45, 0.3),
		Ground:       geom.RGB(0.6, 0.6, 0.6),
		Sky:          geom.RGB(0.5, 0.8, 1.0),

		WoodDark:   geom.RGB(0.30, 0.15, 0.05),
		WoodLight:  geom.RGB(0.60, 0.40, 0.20),
		Plant:      geom.RGB(0.10, 0.50, 0.10),
		PlantPot:   geom.RGB(0.5, 0.2, 0.1),
		Chair:      doorWindow,
		TableGray:  geom.RGB(0.75, 0.75, 0.75),
		TableGrayD: geom.RGB(0.50, 0.50, 0.50),
		Interior:   geom.RGB(0.92, 0.88, 0.82),
		FloorBase:  geom.RGB(0.32, 0.22, 0.12),
		FloorSeam:  geom.RGB(0.16, 0.11, 0.07),
		Ramp:       geom.RGB(0.7, 0.7, 0.7),
		Handrail:   geom.RGB(0.4, 0.4, 0.4),
		Black:      geom.RGB(0, 0, 0),
		White:      geom.RGB(0.97, 0.97, 0.97),
		Frame:      geom.RGB(0.40, 0.26, 0.12),
		ClockBezel: geom.RGB(0.15, 0.15, 0.15),
		BookPalette: [6]geom.Color{
			geom.RGB(0.84, 0.15, 0.16),
			geom.RGB(0.1, 0.48, 0.74),
			geom.RGB(0.2, 0.63, 0.17),
			geom.RGB(0.98, 0.75, 0.18),
			geom.RGB(0.56, 0.27, 0.68),
			geom.RGB(0.9, 0.49, 0.13),
		},

		SkyTop:     geom.RGB(0.66, 0.82, 0.95),
		SkyHorizon: geom.RGB(0.86, 0.92, 0.98),
		SeaTop:     geom.RGB(0.07, 0.4, 0.65),
		SeaBottom:  geom.RGB(0.12, 0.6, 0.7),
		Sand:       geom.RGB(0.93, 0.86, 0.65),
		Sun:        geom.RGB(1, 0.93, 0.55),
	}
}
