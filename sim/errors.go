package sim

import "errors"

// Load-time failure taxonomy. Every one of these is unrecoverable for the
// current run: callers print a single diagnostic and abort. Parsers wrap them
// with fmt.Errorf("%w: ...") so tests can match with errors.Is.
var (
	// ErrConfigFormat reports a structurally invalid configuration file:
	// bad header, version mismatch, unknown scheduling code, missing End line.
	ErrConfigFormat = errors.New("incorrect config file format")

	// ErrConfigIO reports an unreadable configuration file.
	ErrConfigIO = errors.New("unable to open config file")

	// ErrMetaDataFormat reports a structurally invalid meta-data file:
	// missing start/end flags, malformed operation token, bad cycle count.
	ErrMetaDataFormat = errors.New("incorrect meta-data file format")

	// ErrMetaDataIO reports an unreadable meta-data file.
	ErrMetaDataIO = errors.New("unable to open meta-data file")

	// ErrUnrecognizedOperation reports an operation kind/description pair the
	// timing resolver cannot map to a cycle time.
	ErrUnrecognizedOperation = errors.New("unrecognized operation")

	// ErrUnknownScheduler reports a scheduling code outside {FIFO, SJF, SRTF-N}.
	ErrUnknownScheduler = errors.New("unrecognized scheduling code")
)
