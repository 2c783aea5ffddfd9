package fixnum

// Bounds of the most common widths, for callers that would rather not spell
// out the generic constructors.
var (
	MaxI64  = IntMax[W64]()
	MinI64  = IntMin[W64]()
	MaxI128 = IntMax[W128]()
	MinI128 = IntMin[W128]()
	MaxI256 = IntMax[W256]()
	MinI256 = IntMin[W256]()

	MaxU128 = UintMax[W128]()
	MaxU256 = UintMax[W256]()
)
