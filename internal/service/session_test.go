package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmatveev/swarm-console/internal/adapter"
	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/mock"
	"github.com/dmatveev/swarm-console/internal/store"
	"github.com/dmatveev/swarm-console/models"
)

// ── Helpers ──────────────────────────────────────────────────────────

type sessionFixture struct {
	svc     SessionService
	gateway *mock.MockServerGateway
	prefs   *mock.MockPreferenceRepository
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mock.NewMockServerGateway(ctrl)
	prefs := mock.NewMockPreferenceRepository(ctrl)

	svc := NewSessionService(gateway, store.NewTokenStore(prefs), &i18n.EN, logger.Nop())

	return &sessionFixture{svc: svc, gateway: gateway, prefs: prefs}
}

func testUser() models.PublicUser {
	return models.PublicUser{
		ID:        "3f1a0c1e-9d4b-4a8e-b8c6-0a9e7d2f5b11",
		Nickname:  "queen-bee",
		Email:     "queen@hive.dev",
		IsAdmin:   false,
		CreatedAt: "2026-08-01T10:00:00Z",
	}
}

// ── Register ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	f := newSessionFixture(t)
	user := testUser()

	f.svc.SetRegisterForm(models.RegisterForm{
		Nickname: "  queen-bee  ",
		Email:    "  queen@hive.dev ",
		Password: " hunter2secret ", // passwords are never trimmed
	})

	f.gateway.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{
			Nickname: "queen-bee",
			Email:    "queen@hive.dev",
			Password: " hunter2secret ",
		}).
		Return(models.AuthResponse{Token: "tok-1", User: user}, nil)
	f.prefs.EXPECT().Set(gomock.Any(), store.PrefSessionToken, "tok-1").Return(nil)
	f.gateway.EXPECT().Me(gomock.Any(), "tok-1").Return(user, nil)

	require.NoError(t, f.svc.Register(context.Background()))

	snap := f.svc.Snapshot()
	assert.True(t, snap.Authenticated())
	assert.Equal(t, "tok-1", snap.Token)
	assert.Equal(t, user, *snap.User)
	assert.False(t, snap.Submitting)
	assert.False(t, snap.Refreshing)

	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneSuccess, snap.Notice.Tone)
	assert.Equal(t, i18n.EN.Notices.Registered, snap.Notice.Text)

	// The login form is pre-filled for the next sign-in, the register
	// form keeps its values.
	assert.Equal(t, models.LoginForm{Email: "queen@hive.dev"}, snap.LoginForm)
	assert.Equal(t, "  queen-bee  ", snap.RegisterForm.Nickname)
}

func TestRegister_ServerError(t *testing.T) {
	f := newSessionFixture(t)

	f.svc.SetRegisterForm(models.RegisterForm{Nickname: "drone", Email: "drone@hive.dev", Password: "secret123"})

	f.gateway.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, &adapter.APIError{Message: "email already registered"})

	require.Error(t, f.svc.Register(context.Background()))

	snap := f.svc.Snapshot()
	assert.False(t, snap.Authenticated())
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.False(t, snap.Submitting)

	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneError, snap.Notice.Tone)
	assert.Equal(t, "email already registered", snap.Notice.Text)
}

func TestRegister_NonAPIErrorUsesGenericText(t *testing.T) {
	f := newSessionFixture(t)

	f.svc.SetRegisterForm(models.RegisterForm{Nickname: "drone", Email: "drone@hive.dev", Password: "secret123"})

	f.gateway.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, errors.New("dial tcp: connection refused"))

	require.Error(t, f.svc.Register(context.Background()))

	snap := f.svc.Snapshot()
	require.NotNil(t, snap.Notice)
	assert.Equal(t, i18n.EN.Notices.UnexpectedError, snap.Notice.Text)
}

// ── Login ────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	f := newSessionFixture(t)
	user := testUser()

	f.svc.SetLoginForm(models.LoginForm{Email: " queen@hive.dev ", Password: "hunter2secret"})

	f.gateway.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "queen@hive.dev", Password: "hunter2secret"}).
		Return(models.AuthResponse{Token: "tok-2", User: user}, nil)
	f.prefs.EXPECT().Set(gomock.Any(), store.PrefSessionToken, "tok-2").Return(nil)
	f.gateway.EXPECT().Me(gomock.Any(), "tok-2").Return(user, nil)

	require.NoError(t, f.svc.Login(context.Background()))

	snap := f.svc.Snapshot()
	assert.True(t, snap.Authenticated())
	assert.Equal(t, "tok-2", snap.Token)

	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneSuccess, snap.Notice.Tone)
	assert.Equal(t, i18n.EN.Notices.LoggedIn, snap.Notice.Text)
}

// Overlapping submissions follow last-write-wins: nothing is cancelled,
// and the result that resolves last is the one that sticks, even when it
// belongs to the submission that started first.
func TestLogin_OverlappingSubmissionsLastWriteWins(t *testing.T) {
	f := newSessionFixture(t)

	slowUser := testUser()
	slowUser.Nickname = "slow-login"
	fastUser := testUser()
	fastUser.Nickname = "fast-login"

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})

	f.svc.SetLoginForm(models.LoginForm{Email: "queen@hive.dev", Password: "hunter2secret"})

	// The first submission to reach the gateway parks until released;
	// the second completes immediately.
	f.gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			close(slowStarted)
			<-releaseSlow
			return models.AuthResponse{Token: "tok-slow", User: slowUser}, nil
		})
	f.gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{Token: "tok-fast", User: fastUser}, nil)

	f.prefs.EXPECT().Set(gomock.Any(), store.PrefSessionToken, "tok-fast").Return(nil)
	f.gateway.EXPECT().Me(gomock.Any(), "tok-fast").Return(fastUser, nil)
	f.prefs.EXPECT().Set(gomock.Any(), store.PrefSessionToken, "tok-slow").Return(nil)
	f.gateway.EXPECT().Me(gomock.Any(), "tok-slow").Return(slowUser, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, f.svc.Login(context.Background()))
	}()

	<-slowStarted
	require.NoError(t, f.svc.Login(context.Background()))
	assert.Equal(t, "tok-fast", f.svc.Snapshot().Token, "the fast submission settles first")

	close(releaseSlow)
	<-done

	snap := f.svc.Snapshot()
	assert.Equal(t, "tok-slow", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "slow-login", snap.User.Nickname)
	assert.False(t, snap.Submitting)
}

func TestLogin_WrongCredentials(t *testing.T) {
	f := newSessionFixture(t)

	f.svc.SetLoginForm(models.LoginForm{Email: "queen@hive.dev", Password: "wrong"})

	f.gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, &adapter.APIError{Message: "invalid credentials"})

	require.Error(t, f.svc.Login(context.Background()))

	snap := f.svc.Snapshot()
	assert.False(t, snap.Authenticated())
	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneError, snap.Notice.Tone)
	assert.Equal(t, "invalid credentials", snap.Notice.Text)
}

// ── RefreshProfile ───────────────────────────────────────────────────

// seedSession brings the fixture into an authenticated state without
// going through the network-facing flow.
func seedSession(t *testing.T, f *sessionFixture, token string) {
	t.Helper()

	user := testUser()
	f.svc.SetLoginForm(models.LoginForm{Email: user.Email, Password: "hunter2secret"})
	f.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: token, User: user}, nil)
	f.prefs.EXPECT().Set(gomock.Any(), store.PrefSessionToken, token).Return(nil)
	f.gateway.EXPECT().Me(gomock.Any(), token).Return(user, nil)
	require.NoError(t, f.svc.Login(context.Background()))
}

func TestRefreshProfile_Announce(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-3")

	updated := testUser()
	updated.Nickname = "queen-bee-2"
	f.gateway.EXPECT().Me(gomock.Any(), "tok-3").Return(updated, nil)

	require.NoError(t, f.svc.RefreshProfile(context.Background(), true))

	snap := f.svc.Snapshot()
	assert.Equal(t, "queen-bee-2", snap.User.Nickname)
	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneSuccess, snap.Notice.Tone)
	assert.Equal(t, i18n.EN.Notices.SessionRefreshed, snap.Notice.Text)
}

func TestRefreshProfile_RevokedTokenClearsSession(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "unauthorized", message: "Unauthorized"},
		{name: "invalid token", message: "invalid token"},
		{name: "mixed case wrapper", message: "auth failed: Invalid Token supplied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			seedSession(t, f, "tok-4")

			f.gateway.EXPECT().Me(gomock.Any(), "tok-4").Return(models.PublicUser{}, &adapter.APIError{Message: tt.message})
			f.prefs.EXPECT().Delete(gomock.Any(), store.PrefSessionToken).Return(nil)

			require.Error(t, f.svc.RefreshProfile(context.Background(), false))

			snap := f.svc.Snapshot()
			assert.Empty(t, snap.Token)
			assert.Nil(t, snap.User)
			assert.False(t, snap.Refreshing)

			require.NotNil(t, snap.Notice)
			assert.Equal(t, models.ToneError, snap.Notice.Tone)
			assert.Equal(t, tt.message, snap.Notice.Text)
		})
	}
}

func TestRefreshProfile_TransientErrorKeepsSession(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-5")

	f.gateway.EXPECT().Me(gomock.Any(), "tok-5").Return(models.PublicUser{}, &adapter.APIError{Message: "request failed (502)"})

	require.Error(t, f.svc.RefreshProfile(context.Background(), false))

	snap := f.svc.Snapshot()
	assert.Equal(t, "tok-5", snap.Token, "a transient failure must not log the user out")
	assert.NotNil(t, snap.User)
	require.NotNil(t, snap.Notice)
	assert.Equal(t, "request failed (502)", snap.Notice.Text)
}

func TestRefreshProfile_NoTokenIsANoop(t *testing.T) {
	f := newSessionFixture(t)

	require.NoError(t, f.svc.RefreshProfile(context.Background(), true))

	snap := f.svc.Snapshot()
	assert.Nil(t, snap.User)
	assert.Nil(t, snap.Notice)
}

// ── Logout ───────────────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-6")

	f.prefs.EXPECT().Delete(gomock.Any(), store.PrefSessionToken).Return(nil)

	f.svc.Logout(context.Background())

	snap := f.svc.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.False(t, snap.Authenticated())

	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneInfo, snap.Notice.Tone)
	assert.Equal(t, i18n.EN.Notices.SignedOut, snap.Notice.Text)
}

func TestLogout_IsIdempotent(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-repeat")

	f.prefs.EXPECT().Delete(gomock.Any(), store.PrefSessionToken).Return(nil).Times(2)

	f.svc.Logout(context.Background())
	f.svc.Logout(context.Background())

	snap := f.svc.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	require.NotNil(t, snap.Notice)
	assert.Equal(t, models.ToneInfo, snap.Notice.Tone)
}

func TestLogout_StorageFailureStillClearsMemory(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-7")

	f.prefs.EXPECT().Delete(gomock.Any(), store.PrefSessionToken).Return(errors.New("disk full"))

	f.svc.Logout(context.Background())

	snap := f.svc.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

// ── Bootstrap ────────────────────────────────────────────────────────

func TestBootstrap_AdoptsPersistedToken(t *testing.T) {
	f := newSessionFixture(t)
	user := testUser()

	f.prefs.EXPECT().Get(gomock.Any(), store.PrefSessionToken).Return("tok-8", nil)
	f.gateway.EXPECT().Me(gomock.Any(), "tok-8").Return(user, nil)

	require.NoError(t, f.svc.Bootstrap(context.Background()))

	snap := f.svc.Snapshot()
	assert.True(t, snap.Authenticated())
	assert.Equal(t, "tok-8", snap.Token)
	assert.Equal(t, user, *snap.User)
	assert.Nil(t, snap.Notice, "a successful silent refresh raises no notice")
}

func TestBootstrap_NoPersistedToken(t *testing.T) {
	f := newSessionFixture(t)

	f.prefs.EXPECT().Get(gomock.Any(), store.PrefSessionToken).Return("", store.ErrPreferenceNotFound)

	require.NoError(t, f.svc.Bootstrap(context.Background()))

	snap := f.svc.Snapshot()
	assert.False(t, snap.Authenticated())
	assert.Equal(t, models.ModeRegister, snap.Mode)
}

func TestBootstrap_RevokedTokenIsDiscarded(t *testing.T) {
	f := newSessionFixture(t)

	f.prefs.EXPECT().Get(gomock.Any(), store.PrefSessionToken).Return("stale-token", nil)
	f.gateway.EXPECT().Me(gomock.Any(), "stale-token").Return(models.PublicUser{}, &adapter.APIError{Message: "unauthorized"})
	f.prefs.EXPECT().Delete(gomock.Any(), store.PrefSessionToken).Return(nil)

	require.NoError(t, f.svc.Bootstrap(context.Background()))

	snap := f.svc.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

func TestBootstrap_StorageError(t *testing.T) {
	f := newSessionFixture(t)

	f.prefs.EXPECT().Get(gomock.Any(), store.PrefSessionToken).Return("", errors.New("database is locked"))

	require.Error(t, f.svc.Bootstrap(context.Background()))
	assert.False(t, f.svc.Snapshot().Authenticated())
}

// ── Snapshot and setters ─────────────────────────────────────────────

func TestSnapshot_IsDetachedCopy(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-9")

	snap := f.svc.Snapshot()
	snap.User.Nickname = "tampered"
	snap.Notice.Text = "tampered"

	fresh := f.svc.Snapshot()
	assert.Equal(t, "queen-bee", fresh.User.Nickname)
	assert.NotEqual(t, "tampered", fresh.Notice.Text)
}

func TestSetMode(t *testing.T) {
	f := newSessionFixture(t)

	assert.Equal(t, models.ModeRegister, f.svc.Snapshot().Mode)

	f.svc.SetMode(models.ModeLogin)
	assert.Equal(t, models.ModeLogin, f.svc.Snapshot().Mode)
}

func TestSetNotice(t *testing.T) {
	f := newSessionFixture(t)

	f.svc.SetNotice(models.Notice{Tone: models.ToneInfo, Text: "copied"})

	snap := f.svc.Snapshot()
	require.NotNil(t, snap.Notice)
	assert.Equal(t, "copied", snap.Notice.Text)
}

func TestSetLocale_SwitchesNoticeLanguage(t *testing.T) {
	f := newSessionFixture(t)
	seedSession(t, f, "tok-10")

	f.svc.SetLocale(i18n.LocaleRU)

	f.prefs.EXPECT().Delete(gomock.Any(), store.PrefSessionToken).Return(nil)
	f.svc.Logout(context.Background())

	snap := f.svc.Snapshot()
	require.NotNil(t, snap.Notice)
	assert.Equal(t, i18n.RU.Notices.SignedOut, snap.Notice.Text)
}

// ── Revocation matching ──────────────────────────────────────────────

func TestIsTokenRevoked(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{message: "unauthorized", want: true},
		{message: "Unauthorized", want: true},
		{message: "invalid token", want: true},
		{message: "Invalid Token", want: true},
		{message: "request failed (500)", want: false},
		{message: "email already registered", want: false},
		{message: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, isTokenRevoked(tt.message))
		})
	}
}
