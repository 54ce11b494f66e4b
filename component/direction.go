package component

import "github.com/lixenwraith/paintball/vmath"

// Direction is a discrete fire command along one horizontal axis
// UP is toward -Z, LEFT is toward -X
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit fire vector, zero for DirNone
func (d Direction) Vector() vmath.Vec3F {
	switch d {
	case DirUp:
		return vmath.Vec3F{Z: -1}
	case DirDown:
		return vmath.Vec3F{Z: 1}
	case DirLeft:
		return vmath.Vec3F{X: -1}
	case DirRight:
		return vmath.Vec3F{X: 1}
	default:
		return vmath.Vec3F{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
