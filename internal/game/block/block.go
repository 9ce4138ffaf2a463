package block

import "image/color"

// Kind identifies a block type. The zero value is Air.
type Kind uint8

const (
	Air Kind = iota
	Stone
	Dirt
	Grass
	Sand
	Water
	Wood
	Leaves
	Ore

	kindCount
)

// Props holds the immutable properties of a block kind. Top and Side are
// display colors; they are carried here because physics and rendering both
// resolve blocks through this one table.
type Props struct {
	Name        string
	Solid       bool
	Transparent bool
	Glow        bool
	Top         color.RGBA
	Side        color.RGBA
}

// catalog is built once at init and never mutated.
var catalog = [kindCount]Props{
	Air:    {Name: "air", Solid: false, Transparent: true},
	Stone:  {Name: "stone", Solid: true, Top: rgb(130, 130, 135), Side: rgb(115, 115, 120)},
	Dirt:   {Name: "dirt", Solid: true, Top: rgb(134, 96, 67), Side: rgb(121, 85, 58)},
	Grass:  {Name: "grass", Solid: true, Top: rgb(95, 159, 53), Side: rgb(121, 85, 58)},
	Sand:   {Name: "sand", Solid: true, Top: rgb(219, 207, 163), Side: rgb(205, 193, 149)},
	Water:  {Name: "water", Solid: false, Transparent: true, Top: rgb(52, 108, 202), Side: rgb(46, 96, 184)},
	Wood:   {Name: "wood", Solid: true, Top: rgb(102, 81, 50), Side: rgb(110, 88, 55)},
	Leaves: {Name: "leaves", Solid: true, Transparent: true, Top: rgb(58, 121, 41), Side: rgb(52, 110, 37)},
	Ore:    {Name: "ore", Solid: true, Glow: true, Top: rgb(160, 145, 180), Side: rgb(150, 135, 170)},
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Get returns the properties for a kind. Unknown kinds resolve to Air.
func Get(k Kind) Props {
	if k >= kindCount {
		return catalog[Air]
	}
	return catalog[k]
}

// IsSolid reports whether the kind blocks movement and ray targeting.
func IsSolid(k Kind) bool {
	return Get(k).Solid
}

// IsSeeThrough reports whether the kind can be seen through (air, water,
// leaves).
func IsSeeThrough(k Kind) bool {
	return Get(k).Transparent
}

// Count returns the number of known kinds.
func Count() int {
	return int(kindCount)
}
