package service

import (
	"testing"
	"time"

	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(),
		repository.NewSessionRepository(7*24*time.Hour),
		repository.NewReferralRepository(),
	)
}

func registerInput(username, email string) RegisterInput {
	return RegisterInput{
		Username:  username,
		Password:  "secret123",
		Email:     email,
		FirstName: "Jamie",
		LastName:  "Lee",
		Grade:     10,
	}
}

func TestRegisterHashesPasswordAndOpensSession(t *testing.T) {
	svc := newAuthService()

	user, session, err := svc.Register(registerInput("jamie", "jamie@example.com"))
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
	assert.Equal(t, user.ID, session.UserID)
	assert.Len(t, user.ReferralCode, 6)
	assert.Equal(t, 0, user.Points)

	_, ok := svc.Sessions.FindByToken(session.Token)
	assert.True(t, ok)
}

func TestRegisterRejectsDuplicatesCaseInsensitively(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Register(registerInput("jamie", "jamie@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(registerInput("JAMIE", "other@example.com"))
	assert.ErrorIs(t, err, util.ErrUsernameTaken)

	_, _, err = svc.Register(registerInput("other", "Jamie@Example.com"))
	assert.ErrorIs(t, err, util.ErrEmailTaken)
}

func TestReferralCodeCreditsReferrer(t *testing.T) {
	svc := newAuthService()

	referrer, _, err := svc.Register(registerInput("referrer", "ref@example.com"))
	require.NoError(t, err)

	in := registerInput("friend", "friend@example.com")
	in.ReferralCode = referrer.ReferralCode
	referred, _, err := svc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, referrer.ReferralCode, referred.ReferredBy)

	updated, ok := svc.Users.FindByID(referrer.ID)
	require.True(t, ok)
	assert.Equal(t, ReferralBonusPoints, updated.Points)

	referrals := svc.ReferralsForUser(referrer.ID)
	require.Len(t, referrals, 1)
	assert.Equal(t, referred.ID, referrals[0].ReferredUserID)
}

func TestUnknownReferralCodeIsIgnored(t *testing.T) {
	svc := newAuthService()

	in := registerInput("solo", "solo@example.com")
	in.ReferralCode = "ZZZZZZ"
	user, _, err := svc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, "ZZZZZZ", user.ReferredBy)
	assert.Empty(t, svc.ReferralsForUser(user.ID))
}

func TestLogin(t *testing.T) {
	svc := newAuthService()

	registered, _, err := svc.Register(registerInput("jamie", "jamie@example.com"))
	require.NoError(t, err)

	user, session, err := svc.Login("jamie", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, session.Token)

	_, _, err = svc.Login("jamie", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogoutEndsSession(t *testing.T) {
	svc := newAuthService()

	_, session, err := svc.Register(registerInput("jamie", "jamie@example.com"))
	require.NoError(t, err)

	svc.Logout(session.Token)
	_, ok := svc.Sessions.FindByToken(session.Token)
	assert.False(t, ok)

	// Logging out twice is harmless.
	svc.Logout(session.Token)
}
