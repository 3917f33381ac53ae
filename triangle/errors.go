package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContext is returned by New when no gl.Context is supplied.
	ErrNoContext = errors.New("triangle: no GL context")

	// ErrNoVariant is returned by New when no Variant is supplied.
	ErrNoVariant = errors.New("triangle: no transform variant")

	// ErrBufferAllocation is returned when the context cannot allocate the
	// vertex buffer.
	ErrBufferAllocation = errors.New("triangle: failed to create buffer object")

	// ErrNoTransform is returned by Draw when ApplyTransform has not run.
	ErrNoTransform = errors.New("triangle: draw before transform applied")

	// ErrTransformApplied is returned when ApplyTransform runs twice.
	ErrTransformApplied = errors.New("triangle: transform already applied")
)

// AttributeNotFoundError is returned when the linked program has no active
// attribute called Name.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("triangle: failed to get the storage location of attribute %s", e.Name)
}

// UniformNotFoundError is returned when the linked program has no active
// uniform called Name.  Drawing with the uniform unset would render an
// untransformed (or degenerate) triangle, so this stops the render.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("triangle: failed to get the storage location of uniform %s", e.Name)
}

// StateError is returned when a step runs out of order.
type StateError struct {
	Op   string
	Have State
	Want State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("triangle: %s requires state %v, renderer is %v", e.Op, e.Want, e.Have)
}
