package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImages is returned when a controller is created without images.
	ErrNoImages = errors.New("carousel: image list is empty")

	// ErrDuplicateImage is returned when the same identifier appears twice.
	// Each indicator dot must map to exactly one image.
	ErrDuplicateImage = errors.New("carousel: duplicate image identifier")

	// ErrInvalidReference is matched by every error returned for a selection
	// that does not name an image in the carousel.
	ErrInvalidReference = errors.New("carousel: invalid image reference")

	// ErrUnknownColor is returned by [ParseColor] for unrecognized input.
	ErrUnknownColor = errors.New("carousel: unknown color")
)

// InvalidReferenceError reports a selection that names no image in the
// carousel. It matches [ErrInvalidReference] with errors.Is.
type InvalidReferenceError struct {
	// Image is the identifier that was requested when ByImage is set.
	Image string
	// Index is the requested position when ByImage is not set.
	Index int
	// ByImage is true when the selection was by identifier.
	ByImage bool
	// Len is the number of images in the carousel.
	Len int
}

func (e *InvalidReferenceError) Error() string {
	if e.ByImage {
		return fmt.Sprintf("carousel: image %q is not in the carousel", e.Image)
	}
	return fmt.Sprintf("carousel: index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is [ErrInvalidReference].
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

type duplicateError struct {
	image string
}

func (e *duplicateError) Error() string {
	return fmt.Sprintf("carousel: duplicate image identifier %q", e.image)
}

func (e *duplicateError) Is(target error) bool {
	return target == ErrDuplicateImage
}
