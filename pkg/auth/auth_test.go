package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cms-forms/pkg/settings"
)

func credentials(email, password string) url.Values {
	return url.Values{
		FieldEmail:    {email},
		FieldPassword: {password},
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	user, err := store.Create(ctx, "Reader@Example.com", "reader@example.com", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Username)
	assert.True(t, user.Active)

	// Usernames are case-insensitive.
	got, err := store.Get(ctx, "READER@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = store.Create(ctx, "reader@example.com", "reader@example.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = store.Get(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, store.SetActive(ctx, "reader@example.com", false))
	got, err = store.Get(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestMemoryStoreAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, "reader@example.com", "reader@example.com", "hunter2!")
	require.NoError(t, err)

	user, err := store.Authenticate(ctx, "reader@example.com", "hunter2!")
	require.NoError(t, err)
	require.NotNil(t, user)

	// A mismatch is not an error, just no user.
	user, err = store.Authenticate(ctx, "reader@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = store.Authenticate(ctx, "nobody@example.com", "hunter2!")
	require.NoError(t, err)
	assert.Nil(t, user)

	// Inactive accounts still authenticate; callers report the state.
	require.NoError(t, store.SetActive(ctx, "reader@example.com", false))
	user, err = store.Authenticate(ctx, "reader@example.com", "hunter2!")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.Active)
}

func TestCookieSession(t *testing.T) {
	sessions, err := NewCookieSession([]byte("secret"), WithTTL(time.Hour), WithCookieName("demo_session"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Login(rec, &User{Username: "reader@example.com"}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "demo_session", cookie.Name)
	assert.True(t, cookie.HttpOnly)

	subject, err := sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", subject)

	// Tokens signed with another secret are rejected.
	other, err := NewCookieSession([]byte("different"))
	require.NoError(t, err)
	_, err = other.Verify(cookie.Value)
	assert.Error(t, err)

	require.Error(t, sessions.Login(httptest.NewRecorder(), nil))
}

func TestNewCookieSessionRequiresSecret(t *testing.T) {
	_, err := NewCookieSession(nil)
	assert.Error(t, err)
}

func TestUserFormCookiePrefill(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/signup/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "opaque-token"})
	r.AddCookie(&http.Cookie{Name: "remembered", Value: "reader@example.com"})
	r.AddCookie(&http.Cookie{Name: "other", Value: "second@example.com"})

	form := NewUserForm(r, nil, nil)
	email, ok := form.Field(FieldEmail)
	require.True(t, ok)
	// The first cookie value that parses as an address wins.
	assert.Equal(t, "reader@example.com", email.Initial)
}

func TestUserFormNoPrefill(t *testing.T) {
	form := NewUserForm(nil, nil, nil)
	email, ok := form.Field(FieldEmail)
	require.True(t, ok)
	assert.Nil(t, email.Initial)
}

func TestSignupForm(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	form := NewSignupForm(nil, store, store, nil)
	form.Bind(credentials("reader@example.com", "hunter2!"))
	require.True(t, form.IsValid(ctx), "errors: %v", form.Errors())

	user, err := form.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Username)
	assert.Equal(t, "reader@example.com", user.Email)
	assert.True(t, user.Active)

	// Save authenticates in memory without establishing a session.
	require.NotNil(t, form.User())
}

func TestSignupFormDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, "reader@example.com", "reader@example.com", "hunter2!")
	require.NoError(t, err)

	form := NewSignupForm(nil, store, store, nil)
	form.Bind(credentials("reader@example.com", "hunter2!"))
	require.False(t, form.IsValid(ctx))
	assert.Equal(t, []string{MsgDuplicateEmail}, form.Errors().Field(FieldEmail))
}

func TestSignupFormFieldValidation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	form := NewSignupForm(nil, store, store, nil)
	form.Bind(credentials("not-an-address", ""))
	require.False(t, form.IsValid(ctx))
	assert.NotEmpty(t, form.Errors().Field(FieldEmail))
	assert.NotEmpty(t, form.Errors().Field(FieldPassword))
}

func TestSignupFormVerificationRequired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	conf := settings.Defaults()
	conf.VerificationRequired = true
	settings.Apply(conf)
	t.Cleanup(func() { settings.Apply(settings.Defaults()) })

	form := NewSignupForm(nil, store, store, nil)
	form.Bind(credentials("reader@example.com", "hunter2!"))
	require.True(t, form.IsValid(ctx), "errors: %v", form.Errors())

	user, err := form.Save(ctx)
	require.NoError(t, err)
	assert.False(t, user.Active)

	// No authentication happened; the caller must not log the user in.
	assert.Nil(t, form.User())

	stored, err := store.Get(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestLoginForm(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, "reader@example.com", "reader@example.com", "hunter2!")
	require.NoError(t, err)

	sessions, err := NewCookieSession([]byte("secret"))
	require.NoError(t, err)

	form := NewLoginForm(nil, store, sessions)
	form.Bind(credentials("reader@example.com", "hunter2!"))
	require.True(t, form.IsValid(ctx), "errors: %v", form.Errors())
	require.NotNil(t, form.User())

	rec := httptest.NewRecorder()
	require.NoError(t, form.Login(rec))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, DefaultSessionCookie, rec.Result().Cookies()[0].Name)
}

func TestLoginFormInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, "reader@example.com", "reader@example.com", "hunter2!")
	require.NoError(t, err)

	form := NewLoginForm(nil, store, nil)
	form.Bind(credentials("reader@example.com", "wrong"))
	require.False(t, form.IsValid(ctx))
	assert.Equal(t, []string{MsgInvalidCredentials}, form.Errors().Form)
}

func TestLoginFormInactiveAccount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, "reader@example.com", "reader@example.com", "hunter2!")
	require.NoError(t, err)
	require.NoError(t, store.SetActive(ctx, "reader@example.com", false))

	form := NewLoginForm(nil, store, nil)
	form.Bind(credentials("reader@example.com", "hunter2!"))
	require.False(t, form.IsValid(ctx))
	assert.Equal(t, []string{MsgInactiveAccount}, form.Errors().Form)
}
