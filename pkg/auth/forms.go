package auth

import (
	"context"
	"errors"
	"net/http"
	"net/mail"

	"github.com/goliatone/go-cms-forms/pkg/forms"
	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/settings"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

// Field names shared by the signup and login forms.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Validation messages surfaced to end users.
const (
	MsgDuplicateEmail     = "This email is already registered"
	MsgInvalidCredentials = "Invalid email/password"
	MsgInactiveAccount    = "Your account is inactive"
)

// UserForm carries the email and password fields shared by signup and login.
// Construction scans the request's cookies and pre-fills the email field with
// the first value that parses as an email address.
type UserForm struct {
	*forms.Form
	authenticator Authenticator
	sessions      SessionManager
	user          *User
}

// NewUserForm builds the base credential form. The request may be nil when
// no cookie prefill is wanted.
func NewUserForm(r *http.Request, authenticator Authenticator, sessions SessionManager) *UserForm {
	f := forms.New()

	email := &forms.Field{
		Name:       FieldEmail,
		Label:      "Email Address",
		Type:       model.FieldTypeEmail,
		Required:   true,
		Widget:     widgets.EmailInput{},
		Attrs:      widgets.Attrs{},
		Validators: []forms.Validator{forms.ValidateEmail},
	}
	if r != nil {
		for _, cookie := range r.Cookies() {
			if _, err := mail.ParseAddress(cookie.Value); err == nil {
				email.Initial = cookie.Value
				break
			}
		}
	}
	f.AddField(email)

	f.AddField(&forms.Field{
		Name:     FieldPassword,
		Label:    "Password",
		Type:     model.FieldTypeText,
		Required: true,
		Widget:   widgets.PasswordInput{},
		Attrs:    widgets.Attrs{},
	})

	return &UserForm{Form: f, authenticator: authenticator, sessions: sessions}
}

// Authenticate resolves the cleaned credentials to a user, storing the result
// (user or nil). It never fails; a lookup problem leaves the user unset.
func (f *UserForm) Authenticate(ctx context.Context) {
	if f.authenticator == nil {
		f.user = nil
		return
	}
	user, err := f.authenticator.Authenticate(ctx, f.CleanedString(FieldEmail), f.CleanedString(FieldPassword))
	if err != nil {
		f.user = nil
		return
	}
	f.user = user
}

// Login establishes the session for the previously authenticated user. Only
// call after a successful Authenticate.
func (f *UserForm) Login(w http.ResponseWriter) error {
	if f.sessions == nil {
		return errors.New("auth: no session manager configured")
	}
	return f.sessions.Login(w, f.user)
}

// User returns the result of the last Authenticate call.
func (f *UserForm) User() *User { return f.user }

// SignupForm registers a new account keyed by email-as-username.
type SignupForm struct {
	*UserForm
	store UserStore
}

// NewSignupForm builds the signup variant.
func NewSignupForm(r *http.Request, store UserStore, authenticator Authenticator, sessions SessionManager) *SignupForm {
	return &SignupForm{
		UserForm: NewUserForm(r, authenticator, sessions),
		store:    store,
	}
}

// IsValid runs field validation, then rejects an email that is already
// registered.
func (f *SignupForm) IsValid(ctx context.Context) bool {
	if !f.Form.IsValid() {
		return false
	}
	email := f.CleanedString(FieldEmail)
	_, err := f.store.Get(ctx, email)
	switch {
	case err == nil:
		f.AddFieldError(FieldEmail, MsgDuplicateEmail)
		return false
	case errors.Is(err, ErrUserNotFound):
		return true
	default:
		f.AddError("Unable to verify email availability")
		return false
	}
}

// Save creates the new user. When verification is required the account is
// created inactive and no session state is touched; otherwise the new user is
// authenticated in memory, leaving the explicit Login step to the caller.
func (f *SignupForm) Save(ctx context.Context) (*User, error) {
	email := f.CleanedString(FieldEmail)
	password := f.CleanedString(FieldPassword)

	user, err := f.store.Create(ctx, email, email, password)
	if err != nil {
		return nil, err
	}

	if settings.Current().VerificationRequired {
		if err := f.store.SetActive(ctx, user.Username, false); err != nil {
			return nil, err
		}
		user.Active = false
		return user, nil
	}

	f.Authenticate(ctx)
	return user, nil
}

// LoginForm authenticates an existing account.
type LoginForm struct {
	*UserForm
}

// NewLoginForm builds the login variant.
func NewLoginForm(r *http.Request, authenticator Authenticator, sessions SessionManager) *LoginForm {
	return &LoginForm{UserForm: NewUserForm(r, authenticator, sessions)}
}

// IsValid runs field validation, then authenticates. Credentials matching no
// user fail with MsgInvalidCredentials; a disabled account fails with
// MsgInactiveAccount.
func (f *LoginForm) IsValid(ctx context.Context) bool {
	if !f.Form.IsValid() {
		return false
	}
	f.Authenticate(ctx)
	if f.user == nil {
		f.AddError(MsgInvalidCredentials)
		return false
	}
	if !f.user.Active {
		f.AddError(MsgInactiveAccount)
		return false
	}
	return true
}
