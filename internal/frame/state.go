// Package frame compiles the complete visual snapshot for a single
// query time: element visibility, animation outputs, layout positions,
// active narration, and theme properties.
//
// The snapshot structs are the wire contract with the external painter
// process and serialize with lowerCamelCase JSON keys.
package frame

// ItemState is the per-item transform of a staggered group element.
type ItemState struct {
	Index      int     `json:"index"`
	Opacity    float64 `json:"opacity"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
	Scale      float64 `json:"scale"`
	Rotation   float64 `json:"rotation"`
}

// ElementState is the visual state of a single element at a point in
// time.
type ElementState struct {
	ID         uint64      `json:"id"`
	Kind       string      `json:"kind"`
	Direction  string      `json:"direction,omitempty"`
	Content    string      `json:"content"`
	Items      []string    `json:"items,omitempty"`
	ItemStates []ItemState `json:"itemStates,omitempty"`

	Visible    bool    `json:"visible"`
	Opacity    float64 `json:"opacity"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
	Scale      float64 `json:"scale"`
	Rotation   float64 `json:"rotation"`

	// Position is the vertical layout fraction (0=top, 1=bottom) for
	// visible elements.
	Position float64 `json:"position"`
}

// ThemeState is the active theme flattened for the painter.
type ThemeState struct {
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties"`
}

// FrameState is the complete visual state at a query time.
type FrameState struct {
	Time            float64        `json:"time"`
	Frame           int            `json:"frame"`
	TotalDuration   float64        `json:"totalDuration"`
	FPS             int            `json:"fps"`
	Elements        []ElementState `json:"elements"`
	ActiveNarration *string        `json:"activeNarration"`
	Theme           ThemeState     `json:"theme"`
}
