package usecase

import (
	"errors"
	"fmt"

	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/pkg/sheet"
	"insekta-dashboard/pkg/storage"
	"insekta-dashboard/pkg/utils"
)

// Sentinel errors. Services wrap them with fmt.Errorf("...: %w", ErrX) and
// the HTTP layer maps them to status codes with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("already exists")
	ErrDeactivated      = errors.New("account is deactivated")
	ErrProtectedAccount = errors.New("admin account cannot be deleted")
	ErrSheetURL         = errors.New("invalid sheet url")
	ErrSheetFetch       = errors.New("failed to fetch sheet, make sure the link is shared as \"Anyone with the link\"")
	ErrSheetParse       = errors.New("failed to parse sheet")
	ErrSheetEmpty       = errors.New("sheet has no data rows")
	ErrUnsupportedImage = errors.New("unsupported image")
)

// ValidationError carries per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validate runs struct tags and returns a *ValidationError, or nil.
func validate(v any) error {
	if errs := utils.ValidateStruct(v); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func fieldError(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// writeError wraps a failed Update/Delete. A row that vanished after the
// lookup is reported as not found.
func writeError(op string, err error) error {
	if errors.Is(err, repository.ErrNotAffected) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// sheetError translates pipeline failures into service sentinels.
func sheetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sheet.ErrEmptyURL):
		return fmt.Errorf("%w: url is required", ErrSheetURL)
	case errors.Is(err, sheet.ErrFetch):
		return ErrSheetFetch
	case errors.Is(err, sheet.ErrEmpty):
		return ErrSheetEmpty
	case errors.Is(err, sheet.ErrParse):
		return fmt.Errorf("%w: %v", ErrSheetParse, err)
	default:
		return err
	}
}

// imageError translates upload processing failures.
func imageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrUnsupportedImage):
		return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	case errors.Is(err, storage.ErrImageTooLarge):
		return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	default:
		return err
	}
}
