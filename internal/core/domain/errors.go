package domain

import "errors"

// Domain errors represent the failure taxonomy of the sync loop.
// Configuration errors are fatal and stop the process at startup;
// per-file errors are terminal for a single file and leave the watch
// loop running. None of them are retried.
var (
	// Configuration Errors.

	// ErrNoTargets indicates the resolved watch target set is empty.
	ErrNoTargets = errors.New("no watch targets configured")

	// ErrMissingToken indicates the integration token is not set.
	ErrMissingToken = errors.New("notion token not configured")

	// ErrMissingDatabase indicates the target database id is not set.
	ErrMissingDatabase = errors.New("notion database id not configured")

	// ErrInvalidConfig indicates a configuration file or value is
	// malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Per-file Errors.

	// ErrFileRead indicates a detected file could not be read.
	ErrFileRead = errors.New("file read failed")

	// ErrRemoteCreate indicates the remote page creation failed.
	// The local file is left in place.
	ErrRemoteCreate = errors.New("remote page creation failed")

	// ErrDisposal indicates the post-sync disposal of a local file
	// failed. The remote page already exists at this point.
	ErrDisposal = errors.New("file disposal failed")
)
