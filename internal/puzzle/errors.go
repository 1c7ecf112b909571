package puzzle

import "fmt"

// LevelError reports inconsistent level data at board construction:
// unknown topology, bad dimensions, wrong cell count, or a shape outside
// the catalog. The failed construction leaves no partial board; the caller
// may retry with corrected data.
type LevelError struct {
	Code    string
	Message string
}

func (e LevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func levelErrorf(code, format string, args ...any) LevelError {
	return LevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// OutOfBoundsError reports a rotate or query call referencing a coordinate
// outside the board. Board state is never affected by the failed call.
type OutOfBoundsError struct {
	Coord Coord
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %s is off the board", e.Coord)
}
