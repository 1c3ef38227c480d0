package scene

// Layout carries the facade constants that differ between revisions of
// the building model. The zero value is not useful; start from
// DefaultLayout and override fields.
type Layout struct {
	HalfWidth float32 `json:"half_width"`
	HalfDepth float32 `json:"half_depth"`
	// Lift raises the building and its interior above the street.
	Lift float32 `json:"lift"`

	BaySpacing  float32 `json:"bay_spacing"`
	UpperBays   int     `json:"upper_bays"`
	GroundBays  []int   `json:"ground_bays"`
	Floors      int     `json:"floors"`
	FloorHeight float32 `json:"floor_height"`

	BalconyRail  float32 `json:"balcony_rail"`
	BalconyPosts int     `json:"balcony_posts"`

	DoorWidth     float32 `json:"door_width"`
	DoorHeight    float32 `json:"door_height"`
	DoorThickness float32 `json:"door_thickness"`
	DoorHinge     float32 `json:"door_hinge"`
}

// DefaultLayout is the canonical library facade.
func DefaultLayout() Layout {
	return Layout{
		HalfWidth: 10,
		HalfDepth: 4,
		Lift:      0.5,

		BaySpacing:  2.2,
		UpperBays:   4,
		GroundBays:  []int{-4, -3, -2, 2, 3, 4},
		Floors:      2,
		FloorHeight: 3.0,

		BalconyRail:  1.0,
		BalconyPosts: 13,

		DoorWidth:     1.1,
		DoorHeight:    2.8,
		DoorThickness: 0.1,
		DoorHinge:     1.1,
	}
}
