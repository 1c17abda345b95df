// Package cmsforms is a form and widget toolkit for content-management
// applications: signup/login forms, rich-text and ordering widgets, dynamic
// inline admin forms, and in-place single-field edit forms. The root package
// re-exports the primary entry points; see the pkg subpackages for the full
// surface.
package cmsforms

import (
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/goliatone/go-cms-forms/pkg/auth"
	"github.com/goliatone/go-cms-forms/pkg/editable"
	"github.com/goliatone/go-cms-forms/pkg/forms"
	"github.com/goliatone/go-cms-forms/pkg/model"
)

// Form aliases the core form type for convenience.
type Form = forms.Form

// EditTarget identifies the record and fields an in-line edit mutates.
type EditTarget = editable.EditTarget

// GetEditForm returns the in-line editing form for changing the named fields
// of a single registered object.
func GetEditForm(obj model.Object, fieldNames string, data url.Values, files *multipart.Form) (*forms.Form, error) {
	return editable.GetEditForm(obj, fieldNames, data, files)
}

// DecodeEditTarget reconstructs the edit target from a submission.
func DecodeEditTarget(data url.Values) (EditTarget, error) {
	return editable.DecodeTarget(data)
}

// NewSignupForm builds the account-creation form.
func NewSignupForm(r *http.Request, store auth.UserStore, authenticator auth.Authenticator, sessions auth.SessionManager) *auth.SignupForm {
	return auth.NewSignupForm(r, store, authenticator, sessions)
}

// NewLoginForm builds the credential-check form.
func NewLoginForm(r *http.Request, authenticator auth.Authenticator, sessions auth.SessionManager) *auth.LoginForm {
	return auth.NewLoginForm(r, authenticator, sessions)
}

// RegisterModel adds model metadata to the default registry used by the edit
// form factory.
func RegisterModel(m model.Model) error {
	return model.Register(m)
}
