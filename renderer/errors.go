package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInvalidDimensions = errors.New("renderer: frame dimensions must be non-zero")
	ErrUnsupportedFormat = errors.New("renderer: unsupported output image format")
	ErrFrameNotRendered  = errors.New("renderer: no frame rendered yet")
)
