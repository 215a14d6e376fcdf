// Package recovery models the three-step password-recovery wizard:
// collect the email, answer the security question, set a new password.
// The wizard only moves forward, except for one explicit back step from
// the question back to the email form.
package recovery

import (
	"errors"
	"unicode/utf8"
)

// Step identifies where the visitor is in the wizard.
type Step string

const (
	StepEmail    Step = "email"
	StepQuestion Step = "question"
	StepReset    Step = "reset"
)

var (
	// ErrWrongStep means a transition was attempted out of order, e.g.
	// submitting an answer before a question was ever fetched.
	ErrWrongStep = errors.New("wizard is not on the right step")

	// ErrPasswordMismatch and ErrPasswordTooShort are the local checks
	// run before the reset request goes anywhere near the network.
	ErrPasswordMismatch = errors.New("las contraseñas no coinciden")
	ErrPasswordTooShort = errors.New("la contraseña debe tener al menos 8 caracteres")
)

// MinPasswordLength applies to the new password on the final step.
const MinPasswordLength = 8

// Wizard holds the state of one recovery attempt.
type Wizard struct {
	Step     Step
	Email    string
	Question string
}

// NewWizard starts at the email step.
func NewWizard() *Wizard {
	return &Wizard{Step: StepEmail}
}

// AdvanceToQuestion records the fetched security question and moves to the
// question step. Only valid from the email step.
func (w *Wizard) AdvanceToQuestion(email, question string) error {
	if w.Step != StepEmail {
		return ErrWrongStep
	}
	w.Email = email
	w.Question = question
	w.Step = StepQuestion
	return nil
}

// Back returns from the question step to the email step, clearing what was
// collected. This is the wizard's only backward transition.
func (w *Wizard) Back() error {
	if w.Step != StepQuestion {
		return ErrWrongStep
	}
	w.Email = ""
	w.Question = ""
	w.Step = StepEmail
	return nil
}

// AdvanceToReset moves to the final step once the answer was verified.
func (w *Wizard) AdvanceToReset() error {
	if w.Step != StepQuestion {
		return ErrWrongStep
	}
	w.Step = StepReset
	return nil
}

// ValidateNewPassword runs the local checks for the final step: both
// fields must match and meet the minimum length.
func (w *Wizard) ValidateNewPassword(newPassword, confirmPassword string) error {
	if w.Step != StepReset {
		return ErrWrongStep
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
