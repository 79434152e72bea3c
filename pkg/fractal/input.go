package fractal

// Key is a keyboard key the explorer reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyMinus  // zoom out
	KeyEquals // zoom in
	KeyE      // raise iteration ceiling
	KeyQ      // lower iteration ceiling
	KeyR      // reset viewport
	keyCount
)

var keyNames = [keyCount]string{
	"Left", "Right", "Up", "Down",
	"A", "D", "W", "S",
	"Minus", "Equals", "E", "Q", "R",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// InputState reports which keys are held during the current frame.
type InputState interface {
	IsPressed(k Key) bool
}

// KeySet is an InputState backed by a set of held keys.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = struct{}{}
	}
	return ks
}

func (ks KeySet) IsPressed(k Key) bool {
	_, ok := ks[k]
	return ok
}
