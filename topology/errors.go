package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roomtopo/compass"
)

// Sentinel errors for extraction and lookups.
var (
	// ErrGridNil indicates a nil grid was passed to Extract.
	ErrGridNil = errors.New("topology: grid is nil")
	// ErrRegistryNil indicates a nil template registry was passed to Extract.
	ErrRegistryNil = errors.New("topology: registry is nil")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("topology: invalid option supplied")

	// ErrOpenBorder indicates a non-blocked cell in the grid's outer ring.
	ErrOpenBorder = errors.New("topology: outer ring must be blocked")
	// ErrEmptyWallSet indicates a room without boundary cells.
	ErrEmptyWallSet = errors.New("topology: room has an empty wall set")
	// ErrBadMarker indicates a boundary cell that is not exactly one of wall or gateway.
	ErrBadMarker = errors.New("topology: boundary cell must be exactly one of wall or gateway")
	// ErrWalkStuck indicates the boundary walk could not advance or did not close.
	ErrWalkStuck = errors.New("topology: boundary walk cannot advance")
	// ErrDanglingGateway indicates a doorway that does not join exactly two rooms.
	ErrDanglingGateway = errors.New("topology: gateway does not join two rooms")

	// ErrRoomNotFound indicates an unknown room id.
	ErrRoomNotFound = errors.New("topology: room not found")
	// ErrGatewayNotFound indicates an unknown gateway id.
	ErrGatewayNotFound = errors.New("topology: gateway not found")
	// ErrBarrierNotFound indicates an unknown barrier id.
	ErrBarrierNotFound = errors.New("topology: barrier not found")
)

// MapFault reports an ill-formed input grid at a specific cell.
// Err is one of the map-validity sentinels above.
type MapFault struct {
	Op  string
	At  compass.Point
	Err error
}

func (f *MapFault) Error() string {
	return fmt.Sprintf("topology: %s at %v: %v", f.Op, f.At, f.Err)
}

func (f *MapFault) Unwrap() error {
	return f.Err
}

func fault(op string, at compass.Point, err error) error {
	return &MapFault{Op: op, At: at, Err: err}
}
