// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Vault errors
	ErrVaultNotFound = "VAULT_NOT_FOUND"
	ErrVaultExists   = "VAULT_EXISTS"
	ErrConfigInvalid = "CONFIG_INVALID"

	// Note errors
	ErrNoteNotFound = "NOTE_NOT_FOUND"
	ErrNoteExists   = "NOTE_EXISTS"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Collaborator errors
	ErrEditorFailed = "EDITOR_FAILED"
	ErrRenderFailed = "RENDER_FAILED"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
