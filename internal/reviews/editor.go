// Package reviews holds the server side of the review editor opened from
// a product page: the initial mode reported to the client (view when the
// visitor's review exists, create otherwise) and the rating check shared
// by create and edit submissions. The view-to-edit switch itself happens
// client-side; the server's guarantee is that updates go through the
// reviews service under the session's own user id.
package reviews

import "errors"

// Mode of the review editor for one (product, user) pair.
type Mode string

const (
	ModeView   Mode = "view"
	ModeCreate Mode = "create"
)

// ErrInvalidRating rejects ratings outside 1..5 before any request.
var ErrInvalidRating = errors.New("la calificación debe estar entre 1 y 5")

// OpenMode decides the initial mode when the editor opens: an existing
// review lands on view, its absence on create.
func OpenMode(hasReview bool) Mode {
	if hasReview {
		return ModeView
	}
	return ModeCreate
}

// ValidateRating runs the rating check shared by create and edit
// submissions.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
