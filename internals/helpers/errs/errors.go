// file: internals/helpers/errs/errors.go
package errs

import (
	"errors"
	"fmt"
)

/* ===============================
   Error kinds (stabil, dipakai FE)
=================================*/

const (
	KindInvalidResponse        = "InvalidResponseError"
	KindInvalidTransition      = "InvalidTransitionError"
	KindConcurrentModification = "ConcurrentModificationError"
	KindInsightGeneration      = "InsightGenerationError"
)

/* ===============================
   InvalidResponseError
=================================*/

// InvalidResponseError: data response tidak valid / di luar domain
// (misal option bukan milik question-nya). Ditolak, tidak pernah dikoreksi diam-diam.
type InvalidResponseError struct {
	Message string
}

func (e *InvalidResponseError) Error() string { return e.Message }

func NewInvalidResponse(format string, args ...interface{}) *InvalidResponseError {
	return &InvalidResponseError{Message: fmt.Sprintf(format, args...)}
}

/* ===============================
   InvalidTransitionError
=================================*/

// InvalidTransitionError: guard workflow dilanggar. Selalu bawa status saat ini
// supaya caller bisa resync UI.
type InvalidTransitionError struct {
	Current   string
	Requested string
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("transition %q not allowed from status %q: %s", e.Requested, e.Current, e.Reason)
	}
	return fmt.Sprintf("transition %q not allowed from status %q", e.Requested, e.Current)
}

func NewInvalidTransition(current, requested, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested, Reason: reason}
}

/* ===============================
   ConcurrentModificationError
=================================*/

// ConcurrentModificationError: kalah race saat write (optimistic lock gagal).
// Caller wajib re-fetch lalu retry sendiri; tidak pernah di-merge otomatis.
type ConcurrentModificationError struct {
	Entity string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s was modified by another request, please re-fetch and retry", e.Entity)
}

func NewConcurrentModification(entity string) *ConcurrentModificationError {
	return &ConcurrentModificationError{Entity: entity}
}

/* ===============================
   InsightGenerationError
=================================*/

// InsightGenerationError: dependency AI eksternal gagal (timeout / response rusak).
// Insight lama dibiarkan utuh; generation itu all-or-nothing.
type InsightGenerationError struct {
	Err error
}

func (e *InsightGenerationError) Error() string {
	return fmt.Sprintf("insight generation failed: %v", e.Err)
}

func (e *InsightGenerationError) Unwrap() error { return e.Err }

func NewInsightGeneration(err error) *InsightGenerationError {
	return &InsightGenerationError{Err: err}
}

/* ===============================
   Kind helper
=================================*/

// KindOf mengembalikan error_kind + current_status (kalau ada) untuk envelope JSON.
// ok=false artinya bukan domain error (fallback ke mapping generik).
func KindOf(err error) (kind string, currentStatus string, ok bool) {
	var (
		ir *InvalidResponseError
		it *InvalidTransitionError
		cm *ConcurrentModificationError
		ig *InsightGenerationError
	)
	switch {
	case errors.As(err, &ir):
		return KindInvalidResponse, "", true
	case errors.As(err, &it):
		return KindInvalidTransition, it.Current, true
	case errors.As(err, &cm):
		return KindConcurrentModification, "", true
	case errors.As(err, &ig):
		return KindInsightGeneration, "", true
	}
	return "", "", false
}
