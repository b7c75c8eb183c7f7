package pinecone

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"honnef.co/go/kite"
)

// MinHeight is the smallest outer kite height a [RandomFactory] accepts.
// Below it the integer ranges derived from the height collapse.
const MinHeight = 30

// Option configures a [RandomFactory].
type Option func(*randomOptions)

type randomOptions struct {
	heightLo, heightHi     int
	rotationLo, rotationHi int
	seed                   *uint64
	src                    rand.Source
}

func defaultRandomOptions() randomOptions {
	return randomOptions{
		heightLo:   50,
		heightHi:   70,
		rotationLo: 0,
		rotationHi: 360,
	}
}

// WithSeed seeds the factory's PCG source, making its pine cone
// reproducible.
func WithSeed(seed uint64) Option {
	return func(o *randomOptions) {
		o.seed = &seed
	}
}

// WithSource draws from src instead of a PCG source. It takes precedence
// over [WithSeed].
func WithSource(src rand.Source) Option {
	return func(o *randomOptions) {
		o.src = src
	}
}

// WithHeightRange sets the inclusive range of the outer kite height.
// The default is 50 to 70.
func WithHeightRange(lo, hi int) Option {
	return func(o *randomOptions) {
		o.heightLo, o.heightHi = lo, hi
	}
}

// WithRotationRange sets the inclusive range of the rotation in degrees.
// The default is 0 to 360.
func WithRotationRange(lo, hi int) Option {
	return func(o *randomOptions) {
		o.rotationLo, o.rotationHi = lo, hi
	}
}

// OuterParams are the derived parameters of the body.
type OuterParams struct {
	Rotation             int
	Height               int
	Width                int
	DiagonalIntersection float64
	// Offsets of the four edges, bottom-left first, at their midpoints.
	Offsets   [4]int
	LineWidth int
}

// InnerParams are the derived parameters of the scales.
type InnerParams struct {
	Rotation             int
	DiagonalIntersection float64
	HorizontalOffset     int
	VerticalOffset       int
	Offset               int
	Height               int
	Width                int
}

// ArmParams place the arms relative to the unrotated body. Offsets are
// horizontal distances of the shoulders from the centre line and reaches
// how much further out the hands are.
type ArmParams struct {
	LeftOffset, LeftReach   int
	RightOffset, RightReach int
	StartHeight, EndHeight  int
	Wiggles                 int
	LeftOffLine             kite.OffsetFromLine
	RightOffLine            kite.OffsetFromLine
}

// LegParams place the legs relative to the unrotated body.
type LegParams struct {
	Offset                int
	LeftReach, RightReach int
	StartHeight           float64
	EndHeight             int
	LeftOffLine           kite.OffsetFromLine
	RightOffLine          kite.OffsetFromLine
}

// EyeParams place the eyes relative to the unrotated body.
type EyeParams struct {
	Height, Offset      int
	LeftSize, RightSize int
}

// MouthParams describe the mouth. Round mouths use Offset, Height and
// Size; the other kinds use everything else.
type MouthParams struct {
	Kind          MouthKind
	Offset        int
	Height        int
	ControlOffset float64
	LineWidth     float64
	Proportion    float64
	Size          int
}

// Params holds every value a [RandomFactory] drew.
type Params struct {
	Origin    kite.Point
	Outer     OuterParams
	Inner     InnerParams
	LimbWidth int
	Arms      ArmParams
	Legs      LegParams
	Eyes      EyeParams
	Mouth     MouthParams
}

// RandomFactory creates a randomised pine cone. All values are drawn when
// the factory is constructed so that Create always returns the same pine
// cone.
type RandomFactory struct {
	rng    *rand.Rand
	params Params
}

// NewRandomFactory draws the parameters of a pine cone standing at origin.
func NewRandomFactory(origin kite.Point, opts ...Option) (*RandomFactory, error) {
	o := defaultRandomOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.heightLo < MinHeight {
		return nil, fmt.Errorf("height range starts at %d, below minimum %d: %w", o.heightLo, MinHeight, kite.ErrInvalidArgument)
	}
	if o.heightHi < o.heightLo {
		return nil, fmt.Errorf("empty height range [%d, %d]: %w", o.heightLo, o.heightHi, kite.ErrInvalidArgument)
	}
	if o.rotationHi < o.rotationLo {
		return nil, fmt.Errorf("empty rotation range [%d, %d]: %w", o.rotationLo, o.rotationHi, kite.ErrInvalidArgument)
	}

	src := o.src
	if src == nil {
		if o.seed != nil {
			src = rand.NewPCG(*o.seed, 0)
		} else {
			src = rand.NewPCG(rand.Uint64(), rand.Uint64())
		}
	}

	f := &RandomFactory{rng: rand.New(src)}
	f.params.Origin = origin
	f.drawOuter(o)
	f.drawInner()
	f.drawArms()
	f.drawLegs()
	f.drawEyes()
	f.drawLimbCurves()
	f.drawMouth()
	return f, nil
}

// Params returns the drawn parameters.
func (f *RandomFactory) Params() Params { return f.params }

// randint returns a random integer in [lo, hi]. Every call consumes one
// draw, so a collapsed range yields lo without shifting later draws.
func (f *RandomFactory) randint(lo, hi int) int {
	return lo + f.rng.IntN(max(hi-lo, 0)+1)
}

func (f *RandomFactory) uniform(a, b float64) float64 {
	return a + (b-a)*f.rng.Float64()
}

// choice returns an index picked with probability proportional to its
// weight.
func (f *RandomFactory) choice(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := f.rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if x < cum {
			return i
		}
	}
	return len(weights) - 1
}

func (f *RandomFactory) drawOuter(o randomOptions) {
	p := &f.params.Outer
	p.Rotation = f.randint(o.rotationLo, o.rotationHi)
	p.Height = f.randint(o.heightLo, o.heightHi)
	p.Width = f.randint(p.Height/3, p.Height)
	p.DiagonalIntersection = float64(f.randint(2, 7)) / 10

	w := float64(p.Width)
	p.Offsets[0] = int(w/4 + float64(f.randint(-20, 20)))
	p.Offsets[1] = int(w/10 + float64(f.randint(-5, 5)))
	p.Offsets[2] = int(w/10 + float64(f.randint(-5, 5)))
	p.Offsets[3] = int(w/4 + float64(f.randint(-20, 20)))
	p.LineWidth = max(1, int(5.0/300*float64(p.Height)))

	kite.Logger().Debug("outer kite",
		"rotation", p.Rotation,
		"height", p.Height,
		"width", p.Width,
		"diagonal_intersection", p.DiagonalIntersection,
		"offsets", p.Offsets,
		"line_width", p.LineWidth)
}

func (f *RandomFactory) drawInner() {
	outer := f.params.Outer
	p := &f.params.Inner
	p.Rotation = outer.Rotation + f.randint(-5, 5)
	p.DiagonalIntersection = f.uniform(0.4, 0.6)
	p.HorizontalOffset = max(1, int(5.0/300*float64(outer.Height)))
	p.VerticalOffset = max(1, int(5.0/200*float64(outer.Width)))
	p.Offset = f.randint(2, 4)
	p.Height = f.randint(outer.Height/10, outer.Height/5)
	p.Width = f.randint(int(0.66*float64(p.Height)), 2*p.Height)

	kite.Logger().Debug("inner kites",
		"rotation", p.Rotation,
		"diagonal_intersection", p.DiagonalIntersection,
		"horizontal_offset", p.HorizontalOffset,
		"vertical_offset", p.VerticalOffset,
		"offset", p.Offset,
		"height", p.Height,
		"width", p.Width)
}

func (f *RandomFactory) drawArms() {
	outer := f.params.Outer
	h, w := float64(outer.Height), float64(outer.Width)
	f.params.LimbWidth = outer.LineWidth + f.randint(0, 3)

	p := &f.params.Arms
	p.LeftOffset = f.randint(int(0.7*w/2), int(0.9*w/2))
	p.LeftReach = f.randint(1, 15)
	p.StartHeight = f.randint(int(0.55*h), int(0.7*h))
	p.EndHeight = p.StartHeight + f.randint(int(0.1*h), int(0.35*h))
	p.RightOffset = f.randint(int(0.7*w/2), int(0.9*w/2))
	p.RightReach = f.randint(1, 15)
	p.Wiggles = f.randint(1, 5)

	kite.Logger().Debug("arms",
		"limb_width", f.params.LimbWidth,
		"left_offset", p.LeftOffset,
		"left_reach", p.LeftReach,
		"right_offset", p.RightOffset,
		"right_reach", p.RightReach,
		"start_height", p.StartHeight,
		"end_height", p.EndHeight,
		"wiggles", p.Wiggles)
}

func (f *RandomFactory) drawLegs() {
	outer := f.params.Outer
	h, w := float64(outer.Height), float64(outer.Width)

	p := &f.params.Legs
	p.Offset = f.randint(int(0.1*w/2), int(0.2*w/2))
	p.RightReach = f.randint(1, 6)
	p.LeftReach = f.randint(1, 6)
	p.StartHeight = 0.1 * h
	p.EndHeight = -f.randint(int(0.3*h), int(0.5*h))

	kite.Logger().Debug("legs",
		"offset", p.Offset,
		"left_reach", p.LeftReach,
		"right_reach", p.RightReach,
		"start_height", p.StartHeight,
		"end_height", p.EndHeight)
}

func (f *RandomFactory) drawEyes() {
	outer := f.params.Outer
	h, w := float64(outer.Height), float64(outer.Width)

	p := &f.params.Eyes
	p.Height = f.randint(int(0.7*h), int(0.85*h))
	p.Offset = f.randint(int(0.1*w/2), int(0.2*w/2))
	size := float64(f.randint(2*outer.LineWidth, 4*outer.LineWidth))
	sizes := [2]float64{size, size}
	// Most pine cones have matching eyes.
	if i := f.choice([]float64{0.1, 0.1, 0.8}); i < 2 {
		sizes[i] *= f.uniform(0.75, 1.3)
	}
	p.LeftSize, p.RightSize = int(sizes[0]), int(sizes[1])

	kite.Logger().Debug("eyes",
		"height", p.Height,
		"offset", p.Offset,
		"left_size", p.LeftSize,
		"right_size", p.RightSize)
}

// drawLimbCurves draws the bends of the legs and arms. Left limbs bend
// inwards, right limbs outwards.
func (f *RandomFactory) drawLimbCurves() {
	legs, arms := &f.params.Legs, &f.params.Arms
	legs.LeftOffLine = kite.OffsetFromLine{Proportion: f.uniform(0.2, 0.8), Offset: float64(-f.randint(3, 100))}
	legs.RightOffLine = kite.OffsetFromLine{Proportion: f.uniform(0.2, 0.8), Offset: float64(f.randint(3, 100))}
	arms.LeftOffLine = kite.OffsetFromLine{Proportion: f.uniform(0.2, 0.8), Offset: float64(-f.randint(3, 20))}
	arms.RightOffLine = kite.OffsetFromLine{Proportion: f.uniform(0.2, 0.8), Offset: float64(f.randint(3, 20))}
}

func (f *RandomFactory) drawMouth() {
	outer := f.params.Outer
	h, w := float64(outer.Height), float64(outer.Width)
	eyes := f.params.Eyes

	p := &f.params.Mouth
	p.Kind = MouthKind(f.choice([]float64{0.33, 0.33, 0.33}))
	switch p.Kind {
	case MouthRound:
		p.Offset = f.randint(0, int(0.05*w/2))
		p.Size = f.randint(int(0.05*h), int(0.15*h))
		p.Height = f.randint(int(0.6*h), eyes.Height)
	default:
		p.Offset = max(1, f.randint(eyes.Offset, int(0.35*w/2)))
		p.Height = f.randint(int(0.6*h), eyes.Height)
		off := float64(p.Offset)
		p.ControlOffset = f.uniform(0.5*off, 1.66*off)
		p.LineWidth = float64(outer.LineWidth) * f.uniform(1.5, 3)
		p.Proportion = f.uniform(0.2, 0.8)
	}

	kite.Logger().Debug("mouth",
		"kind", p.Kind,
		"offset", p.Offset,
		"height", p.Height,
		slog.Group("curve",
			"control_offset", p.ControlOffset,
			"line_width", p.LineWidth,
			"proportion", p.Proportion),
		"size", p.Size)
}

// at returns the point (dx, dy) from the origin of the upright body,
// rotated with the body.
func (p Params) at(dx, dy float64) kite.Point {
	return p.Origin.Translate(kite.Vec(dx, dy)).Rotate(float64(p.Outer.Rotation), p.Origin)
}

// Create builds the pine cone described by the factory's parameters.
func (f *RandomFactory) Create() (*PineCone, error) {
	p := f.params

	offLines := make([]kite.OffsetFromLine, 4)
	for i, o := range p.Outer.Offsets {
		offLines[i] = kite.OffsetFromLine{Proportion: 0.5, Offset: float64(o)}
	}
	outer := OuterKite{
		Dimensions: kite.KiteDimensions{
			Origin:               p.Origin,
			Height:               float64(p.Outer.Height),
			Width:                float64(p.Outer.Width),
			DiagonalIntersection: p.Outer.DiagonalIntersection,
		},
		OffLines: offLines,
		Rotation: float64(p.Outer.Rotation),
	}

	in := p.Inner
	edge := float64(in.Offset)
	innerH, innerW := float64(in.Height), float64(in.Width)
	inner := &kite.CurvedKiteFactory{
		Rotation: float64(in.Rotation),
		KiteParams: kite.KiteParams{
			Height:               &innerH,
			Width:                &innerW,
			DiagonalIntersection: &in.DiagonalIntersection,
			OffLines: []kite.OffsetFromLine{
				{Proportion: 0.5, Offset: edge},
				{Proportion: 0.5, Offset: -edge},
				{Proportion: 0.5, Offset: -edge},
				{Proportion: 0.5, Offset: edge},
			},
		},
	}

	limbW := float64(p.LimbWidth)
	legs := p.Legs
	legOff := float64(legs.Offset)
	legEnd := float64(legs.EndHeight)
	leftLeg := Limb{
		Start:   p.at(-legOff, legs.StartHeight),
		End:     p.at(-(legOff + float64(legs.LeftReach)), legEnd),
		OffLine: legs.LeftOffLine,
		Size:    limbW,
	}
	rightLeg := Limb{
		Start:   p.at(legOff, legs.StartHeight),
		End:     p.at(legOff+float64(legs.RightReach), legEnd),
		OffLine: legs.RightOffLine,
		Size:    limbW,
	}

	arms := p.Arms
	armStart, armEnd := float64(arms.StartHeight), float64(arms.EndHeight)
	leftArm := Limb{
		Start:   p.at(-float64(arms.LeftOffset), armStart),
		End:     p.at(-float64(arms.LeftOffset+arms.LeftReach), armEnd),
		OffLine: arms.LeftOffLine,
		Size:    limbW,
		Wiggles: arms.Wiggles,
	}
	rightArm := Limb{
		Start:   p.at(float64(arms.RightOffset), armStart),
		End:     p.at(float64(arms.RightOffset+arms.RightReach), armEnd),
		OffLine: arms.RightOffLine,
		Size:    limbW,
		Wiggles: arms.Wiggles,
	}

	eyeOff, eyeH := float64(p.Eyes.Offset), float64(p.Eyes.Height)
	eyes := Eyes{
		Left:      p.at(-eyeOff, eyeH),
		Right:     p.at(eyeOff, eyeH),
		LeftSize:  float64(p.Eyes.LeftSize),
		RightSize: float64(p.Eyes.RightSize),
	}

	m := p.Mouth
	mouthOff, mouthH := float64(m.Offset), float64(m.Height)
	var mouth Mouth
	switch m.Kind {
	case MouthRound:
		mouth = Mouth{Kind: MouthRound, Start: p.at(mouthOff, mouthH), Size: float64(m.Size)}
	case MouthCurved, MouthTriangle:
		mouth = Mouth{
			Kind:    m.Kind,
			Start:   p.at(-mouthOff, mouthH),
			End:     p.at(mouthOff, mouthH),
			OffLine: kite.OffsetFromLine{Proportion: m.Proportion, Offset: -m.ControlOffset},
			Size:    m.LineWidth,
			Outline: m.Kind == MouthCurved,
		}
	default:
		return nil, fmt.Errorf("mouth kind %s: %w", m.Kind, kite.ErrInvalidArgument)
	}

	pc := New(outer, inner)
	pc.OuterLineWidth = float64(p.Outer.LineWidth)
	pc.HorizontalOffset = float64(in.HorizontalOffset)
	pc.VerticalOffset = float64(in.VerticalOffset)
	pc.Initial = []Part{leftLeg, rightLeg}
	pc.Final = []Part{eyes, mouth, leftArm, rightArm}
	return pc, nil
}
