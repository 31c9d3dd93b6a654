package sink

import "errors"

var (
	// ErrCreateDir indicates the output directory could not be created.
	ErrCreateDir = errors.New("sink: failed to create output directory")

	// ErrOpenTemp indicates the ".new" staging file could not be opened.
	ErrOpenTemp = errors.New("sink: failed to open staging file")

	// ErrPublish indicates flush, sync, close or rename of the staging
	// file onto its target path failed.
	ErrPublish = errors.New("sink: failed to publish output file")
)
