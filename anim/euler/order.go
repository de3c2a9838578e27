package euler

import (
	"errors"
	"strings"
)

// Errors returned by rotation-order parsing and the filter.
var (
	ErrInvalidOrder  = errors.New("euler: invalid rotation order")
	ErrEmptySequence = errors.New("euler: rotation sequence is empty")
)

// Order identifies one of the six Euler rotation orders. The name lists the
// axes in application order: OrderZXY rotates about Z first, then X, then Y,
// so the composed matrix is Ry*Rx*Rz in the column-vector convention.
type Order int

const (
	OrderXYZ Order = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

var orderNames = [...]string{"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

var orderAxes = [...][3]int{
	{0, 1, 2}, // XYZ
	{0, 2, 1}, // XZY
	{1, 0, 2}, // YXZ
	{1, 2, 0}, // YZX
	{2, 0, 1}, // ZXY
	{2, 1, 0}, // ZYX
}

// ParseOrder converts a rotation-order token such as "ZXY" into an Order.
// Matching is case-insensitive. Anything outside the six axis permutations
// is rejected with [ErrInvalidOrder]; there is no fallback order.
func ParseOrder(s string) (Order, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range orderNames {
		if token == name {
			return Order(i), nil
		}
	}

	return 0, ErrInvalidOrder
}

// Valid reports whether o is one of the six defined orders.
func (o Order) Valid() bool {
	return o >= OrderXYZ && o <= OrderZYX
}

// String returns the axis token, e.g. "ZXY", or "invalid" for an
// out-of-range value.
func (o Order) String() string {
	if !o.Valid() {
		return "invalid"
	}

	return orderNames[o]
}

// Axes returns the axis indices (0=X, 1=Y, 2=Z) in application order.
// For an invalid order it returns {0, 1, 2}.
func (o Order) Axes() [3]int {
	if !o.Valid() {
		return [3]int{0, 1, 2}
	}

	return orderAxes[o]
}
