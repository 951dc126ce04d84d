package fab

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendMask                    // clip destination to source alpha
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMask:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// ButtonState is the touch state of a Button.
type ButtonState uint8

const (
	StateNormal  ButtonState = iota // not touched
	StatePressed                    // pressed inside the circle
)

func (s ButtonState) String() string {
	if s == StatePressed {
		return "PRESSED"
	}
	return "NORMAL"
}

// ButtonType selects one of the predefined button sizes.
type ButtonType uint8

const (
	TypeDefault ButtonType = iota // 56dp
	TypeMini                      // 40dp
	TypeBig                       // 72dp
)

// Size returns the diameter of the type in dp.
func (t ButtonType) Size() float64 {
	switch t {
	case TypeMini:
		return 40
	case TypeBig:
		return 72
	default:
		return 56
	}
}

func (t ButtonType) String() string {
	switch t {
	case TypeMini:
		return "MINI"
	case TypeBig:
		return "BIG"
	default:
		return "DEFAULT"
	}
}

// ButtonTypeForID maps a numeric type id to a ButtonType. Unknown ids fall
// back to TypeDefault.
func ButtonTypeForID(id int) ButtonType {
	switch id {
	case 1:
		return TypeMini
	case 2:
		return TypeBig
	default:
		return TypeDefault
	}
}

// Visibility mirrors the three platform visibility states of a view.
type Visibility uint8

const (
	Visible   Visibility = iota // drawn and interactive
	Invisible                   // keeps its place, not drawn
	Gone                        // removed from the host
)

// TouchAction identifies the kind of a touch event delivered to a Button.
type TouchAction uint8

const (
	ActionDown   TouchAction = iota // pointer pressed
	ActionUp                        // pointer released
	ActionMove                      // pointer moved while pressed
	ActionCancel                    // gesture aborted by the host
)

func (a TouchAction) String() string {
	switch a {
	case ActionDown:
		return "DOWN"
	case ActionUp:
		return "UP"
	case ActionMove:
		return "MOVE"
	default:
		return "CANCEL"
	}
}

// EventType identifies a kind of interaction event forwarded to an EventSink.
type EventType uint8

const (
	EventPressed  EventType = iota // button entered the PRESSED state
	EventReleased                  // button returned to NORMAL
	EventClick                     // press then release over the same button
)
