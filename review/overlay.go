package review

import "github.com/tsawler/screentext/hocr"

// Overlay pairs an arbitrary host object with a recognition result so that
// text navigation can run against the recognized text while the host object
// itself stays untouched. The host needs no particular capabilities; it is
// carried along so callers can route other commands (activation, focus) back
// to the thing the text was recognized from.
type Overlay[T any] struct {
	host T
	res  *hocr.Result
}

// Attach wraps a host object with a recognition result.
func Attach[T any](host T, res *hocr.Result) *Overlay[T] {
	return &Overlay[T]{host: host, res: res}
}

// Host returns the wrapped host object.
func (o *Overlay[T]) Host() T {
	return o.host
}

// Result returns the attached recognition result.
func (o *Overlay[T]) Result() *hocr.Result {
	return o.res
}

// MakeNavigator creates a navigator over the attached result at the given
// position. Each call returns an independent navigator; none of them affect
// the host or each other.
func (o *Overlay[T]) MakeNavigator(pos int) *Navigator {
	return NewAt(o.res, pos)
}
