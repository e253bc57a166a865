package shape

import "errors"

var (
	// ErrInvalidArgument is returned when a resolution or size parameter is
	// out of range for the requested primitive.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented is returned for primitives, layouts or topologies
	// that a collaborator cannot handle.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUpload wraps any failure reported by an Uploader. Upload failures
	// are not retried.
	ErrUpload = errors.New("upload failed")

	// ErrIndexOutOfRange is returned by Validate when an index refers past
	// the last vertex.
	ErrIndexOutOfRange = errors.New("index out of range")
)
