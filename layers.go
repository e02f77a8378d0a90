package layertext

// LayerRole identifies one of the three painted copies of a glyph.
type LayerRole int

const (
	// LayerBack is the farthest copy, painted first.
	LayerBack LayerRole = iota
	// LayerMiddle sits between Back and Front.
	LayerMiddle
	// LayerFront is the glyph in the text color, painted last.
	LayerFront
)

// String returns the name of the role.
func (r LayerRole) String() string {
	switch r {
	case LayerBack:
		return "Back"
	case LayerMiddle:
		return "Middle"
	case LayerFront:
		return "Front"
	default:
		return "Unknown"
	}
}

// Offsets and padding as fractions of the point size.
const (
	firstOffsetX  = 0.067
	firstOffsetY  = 0.084
	secondOffset  = 0.189
	canvasPadding = 0.3
)

// Per-layer shadow parameters in points.
const (
	shadowOffset     = 2
	backShadowBlur   = 4
	middleShadowBlur = 2
	frontShadowBlur  = 2
)

// LayerSpec describes one paint pass of a glyph.
type LayerSpec struct {
	Role LayerRole

	// Offset is the translation from the glyph position in points, in the
	// Y-up text coordinate system.
	Offset Point

	// Fill is the fill color. The shadow uses the same color.
	Fill RGBA

	Shadow Shadow

	// Connect routes the outline through ConnectOutline before filling.
	Connect bool
}

// Layers returns the three paint passes for a face of pointSize points in
// paint order: Back, Middle, Front. The Y offsets stack so that each layer
// sits above the previous one.
func Layers(pointSize float64, textColor, back, middle RGBA) [3]LayerSpec {
	first := Pt(firstOffsetX, firstOffsetY).Mul(pointSize)
	second := Pt(secondOffset, secondOffset).Mul(pointSize)

	shadow := func(blur float64, c RGBA) Shadow {
		return Shadow{OffsetX: shadowOffset, OffsetY: shadowOffset, Blur: blur, Color: c}
	}

	return [3]LayerSpec{
		{
			Role:   LayerBack,
			Offset: second,
			Fill:   back,
			Shadow: shadow(backShadowBlur, back),
		},
		{
			Role:    LayerMiddle,
			Offset:  Pt(first.X, second.Y+first.Y),
			Fill:    middle,
			Shadow:  shadow(middleShadowBlur, middle),
			Connect: true,
		},
		{
			Role:   LayerFront,
			Offset: Pt(0, second.Y+2*first.Y),
			Fill:   textColor,
			Shadow: shadow(frontShadowBlur, textColor),
		},
	}
}

// canvasSize returns the canvas size in points for a line measuring
// width x height set at pointSize.
func canvasSize(width, height, pointSize float64) Point {
	pad := pointSize * canvasPadding
	return Pt(width+pad, height+pad)
}
