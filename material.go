package boxen

// Tolerances, per spec §3.
const (
	// EpsPoint is the minimum distance between consecutive path points;
	// closer points are considered duplicates.
	EpsPoint = 0.001
	// EpsWall is the minimum clearance required between independent wall
	// features (slot margins, hole-inside-outline margins).
	EpsWall = 0.01
	// EpsAlign is the maximum world-space disagreement allowed between two
	// mating joint anchors before a JointAlignmentError is recorded.
	EpsAlign = 0.01
)

// FaceId identifies one of the six faces of an assembly.
type FaceId uint8

// Face values.
const (
	FaceFront FaceId = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

var faceNames = [...]string{"front", "back", "left", "right", "top", "bottom"}

func (f FaceId) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "unknown"
}

// AllFaces lists the six faces in a stable order.
var AllFaces = [6]FaceId{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}

// wallPriority implements §4.2's wall-priority table: lower value wins the
// shared corner and is male against higher-priority neighbours.
var wallPriority = map[FaceId]int{
	FaceFront:  1,
	FaceBack:   2,
	FaceLeft:   3,
	FaceRight:  4,
	FaceTop:    5,
	FaceBottom: 6,
}

// WallPriority returns the face's priority for corner-ownership and
// wall-to-wall gender resolution (lower wins).
func (f FaceId) WallPriority() int { return wallPriority[f] }

// NormalAxis returns the axis a face's outward normal points along.
// Front/Back run along Z, Left/Right along X, Top/Bottom along Y — so that
// AssemblyConfig.AssemblyAxis == Y (as in spec scenario S5) makes Top/Bottom
// the lid pair, matching "lid = pair of faces perpendicular to
// assemblyAxis" in the glossary.
func (f FaceId) NormalAxis() Axis {
	switch f {
	case FaceLeft, FaceRight:
		return AxisX
	case FaceTop, FaceBottom:
		return AxisY
	default:
		return AxisZ
	}
}

// IsPositiveSide reports whether the face sits at the maximum-coordinate
// end of its normal axis (Right, Top, Back) rather than the minimum end
// (Left, Bottom, Front).
func (f FaceId) IsPositiveSide() bool {
	switch f {
	case FaceRight, FaceTop, FaceBack:
		return true
	default:
		return false
	}
}

// widthAxis/heightAxis give the two axes a face panel spans, in its own
// local 2D frame (local-X, local-Y).
func (f FaceId) widthAxis() Axis {
	switch f {
	case FaceFront, FaceBack:
		return AxisX
	case FaceTop, FaceBottom:
		return AxisX
	default: // Left, Right
		return AxisZ
	}
}

func (f FaceId) heightAxis() Axis {
	switch f {
	case FaceFront, FaceBack:
		return AxisY
	case FaceLeft, FaceRight:
		return AxisY
	default: // Top, Bottom
		return AxisZ
	}
}

// EdgePosition identifies one of a panel's four local edges.
type EdgePosition uint8

const (
	EdgeTop EdgePosition = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e EdgePosition) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "?"
	}
}

// axisFor returns the world axis that edge's finger pattern runs along: top
// and bottom edges run along the panel's width axis, left and right along
// its height axis (§4.3).
func (e EdgePosition) axisFor(f FaceId) Axis {
	if e == EdgeTop || e == EdgeBottom {
		return f.widthAxis()
	}
	return f.heightAxis()
}

// faceAdjacency maps (face, edge) -> the neighbouring face sharing that
// physical 3D edge. This is a fixed convention (not specified verbatim by
// the distilled spec — see DESIGN.md "Open Questions") chosen so that each
// face's local frame maps directly onto world axes with no mirroring: two
// faces sharing a physical edge always name each other as neighbours.
var faceAdjacency = map[FaceId]map[EdgePosition]FaceId{
	FaceFront: {EdgeTop: FaceTop, EdgeBottom: FaceBottom, EdgeLeft: FaceLeft, EdgeRight: FaceRight},
	FaceBack:  {EdgeTop: FaceTop, EdgeBottom: FaceBottom, EdgeLeft: FaceLeft, EdgeRight: FaceRight},
	FaceLeft:  {EdgeTop: FaceTop, EdgeBottom: FaceBottom, EdgeLeft: FaceFront, EdgeRight: FaceBack},
	FaceRight: {EdgeTop: FaceTop, EdgeBottom: FaceBottom, EdgeLeft: FaceFront, EdgeRight: FaceBack},
	FaceTop:   {EdgeTop: FaceBack, EdgeBottom: FaceFront, EdgeLeft: FaceLeft, EdgeRight: FaceRight},
	FaceBottom: {EdgeTop: FaceBack, EdgeBottom: FaceFront, EdgeLeft: FaceLeft, EdgeRight: FaceRight},
}

// Gender is the male/female/open state of a joint edge.
type Gender uint8

const (
	GenderNone Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "none"
	}
}

// LidSide identifies which of the two faces along the assembly axis is
// being configured.
type LidSide uint8

const (
	LidPositive LidSide = iota
	LidNegative
)

// TabDirection controls whether a lid's own edges protrude (tabs-out) or
// recede (tabs-in).
type TabDirection uint8

const (
	TabsOut TabDirection = iota
	TabsIn
)

// MaterialConfig holds the sheet thickness and finger-joint parameters
// shared by every panel in an assembly.
type MaterialConfig struct {
	Thickness   float64 // MT
	FingerWidth float64 // FW
	FingerGap   float64 // FG, expressed as a gap-to-finger-width ratio
}

// Validate checks that every field is positive.
func (m MaterialConfig) Validate() error {
	if m.Thickness <= 0 || m.FingerWidth <= 0 || m.FingerGap <= 0 {
		return &MaterialInfeasibleError{Reason: "thickness, finger width, and finger gap ratio must all be positive"}
	}
	return nil
}

// LidConfig configures one lid face's tab direction and inset.
type LidConfig struct {
	TabDirection TabDirection
	Inset        float64
}

// FeetConfig configures the feet emitted on wall panels (§4.3 "Feet").
type FeetConfig struct {
	Enabled bool
	Height  float64
	Width   float64
	Inset   float64
	Gap     float64
}

// AssemblyConfig holds assembly-wide, non-dimensional configuration.
type AssemblyConfig struct {
	AssemblyAxis Axis
	Lids         map[LidSide]LidConfig
	Feet         FeetConfig
}
