package animation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownSpeed is returned by ParseSpeed for an unrecognized value.
var ErrUnknownSpeed = errors.New("animation: unknown speed")

// Speed is a playback rate multiplier.
type Speed int

const (
	Slow    Speed = iota // 0.5x
	Normal               // 1x
	Fast                 // 2x
	Fastest              // 4x

	numSpeeds
)

var speedNames = [numSpeeds]string{"slow", "normal", "fast", "fastest"}
var speedLabels = [numSpeeds]string{"0.5x", "1x", "2x", "4x"}
var speedFactors = [numSpeeds]float64{0.5, 1, 2, 4}

// Speeds returns every speed from slowest to fastest.
func Speeds() []Speed {
	return []Speed{Slow, Normal, Fast, Fastest}
}

// Valid reports whether s is enumerated.
func (s Speed) Valid() bool { return s >= 0 && s < numSpeeds }

// Multiplier returns the rate relative to Normal.
func (s Speed) Multiplier() float64 {
	if !s.Valid() {
		return 1
	}
	return speedFactors[s]
}

// String returns the multiplier label, e.g. "2x".
func (s Speed) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Speed(%d)", int(s))
	}
	return speedLabels[s]
}

// Faster returns the next speed up, saturating at Fastest.
func (s Speed) Faster() Speed {
	if s >= Fastest {
		return Fastest
	}
	return s + 1
}

// Slower returns the next speed down, saturating at Slow.
func (s Speed) Slower() Speed {
	if s <= Slow {
		return Slow
	}
	return s - 1
}

// ParseSpeed accepts a label ("0.5x", "1x", "2x", "4x") or a name
// ("slow", "normal", "fast", "fastest").
func ParseSpeed(v string) (Speed, error) {
	key := strings.ToLower(strings.TrimSpace(v))
	for s := Speed(0); s < numSpeeds; s++ {
		if key == speedLabels[s] || key == speedNames[s] {
			return s, nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownSpeed, v)
}

// MarshalText implements encoding.TextMarshaler.
func (s Speed) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpeed, int(s))
	}
	return []byte(speedLabels[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Speed) UnmarshalText(text []byte) error {
	v, err := ParseSpeed(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Delay is the pause before revealing a step of each kind.
type Delay struct {
	Visited time.Duration
	Path    time.Duration
}

// For returns the delay for a step of kind k.
func (d Delay) For(k Kind) time.Duration {
	if k == OnShortestPath {
		return d.Path
	}
	return d.Visited
}

// DelayTable maps each speed to its per-step delays.
type DelayTable map[Speed]Delay

const (
	// BaseVisitedDelay is the Normal-speed delay between visited reveals.
	BaseVisitedDelay = 10 * time.Millisecond
	// BasePathDelay is the Normal-speed delay between path reveals.
	BasePathDelay = 50 * time.Millisecond
)

// NewDelayTable scales base by every speed's multiplier.
func NewDelayTable(base Delay) DelayTable {
	t := make(DelayTable, numSpeeds)
	for _, s := range Speeds() {
		m := s.Multiplier()
		t[s] = Delay{
			Visited: time.Duration(float64(base.Visited) / m),
			Path:    time.Duration(float64(base.Path) / m),
		}
	}
	return t
}

// DefaultDelays returns 10ms/50ms at Normal, scaled for the other speeds.
func DefaultDelays() DelayTable {
	return NewDelayTable(Delay{Visited: BaseVisitedDelay, Path: BasePathDelay})
}

// Lookup returns the delay for s, falling back to the default table.
func (t DelayTable) Lookup(s Speed) Delay {
	if d, ok := t[s]; ok {
		return d
	}
	return DefaultDelays()[s]
}
