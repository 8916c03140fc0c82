package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"
	"nextstep_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ReferralBonusPoints is credited to the referrer for every registration
// carrying their code.
const ReferralBonusPoints = 500

type AuthService struct {
	Users     *repository.UserRepository
	Sessions  *repository.SessionRepository
	Referrals *repository.ReferralRepository
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, referrals *repository.ReferralRepository) *AuthService {
	return &AuthService{
		Users:     users,
		Sessions:  sessions,
		Referrals: referrals,
	}
}

type RegisterInput struct {
	Username     string
	Password     string
	Email        string
	FirstName    string
	LastName     string
	Grade        int
	ReferralCode string
}

// Register creates the user with a hashed password and a fresh referral
// code, credits the referrer when a known code was supplied, and opens a
// session. Username and email uniqueness is case-insensitive.
func (s *AuthService) Register(in RegisterInput) (model.User, model.Session, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, model.Session{}, err
	}

	code, err := s.newReferralCode()
	if err != nil {
		return model.User{}, model.Session{}, err
	}

	user, err := s.Users.Create(model.User{
		Username:     in.Username,
		Password:     string(hashed),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Grade:        in.Grade,
		ReferralCode: code,
		ReferredBy:   in.ReferralCode,
	})
	if err != nil {
		return model.User{}, model.Session{}, err
	}

	if in.ReferralCode != "" {
		if referrer, ok := s.Users.FindByReferralCode(in.ReferralCode); ok {
			s.Referrals.Create(referrer.ID, user.ID, false)
			s.Users.AddPoints(referrer.ID, ReferralBonusPoints)
			logger.Log.Info("referral credited",
				zap.Int("referrerUserId", referrer.ID),
				zap.Int("referredUserId", user.ID))
		}
	}

	session, err := s.Sessions.Create(user.ID)
	if err != nil {
		return model.User{}, model.Session{}, err
	}

	return user, session, nil
}

// Login verifies the credentials and opens a session. Unknown username and
// wrong password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(username, password string) (model.User, model.Session, error) {
	user, ok := s.Users.FindByUsername(username)
	if !ok {
		return model.User{}, model.Session{}, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return model.User{}, model.Session{}, util.ErrInvalidCredentials
	}

	session, err := s.Sessions.Create(user.ID)
	if err != nil {
		return model.User{}, model.Session{}, err
	}

	return user, session, nil
}

func (s *AuthService) Logout(token string) {
	s.Sessions.Delete(token)
}

// ReferralsForUser lists the referrals the user earned as referrer.
func (s *AuthService) ReferralsForUser(userID int) []model.Referral {
	return s.Referrals.ForReferrer(userID)
}

// newReferralCode draws 3 random bytes, hex, uppercase — short enough to
// share verbally, retried on the unlikely collision.
func (s *AuthService) newReferralCode() (string, error) {
	for {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		code := strings.ToUpper(hex.EncodeToString(buf))
		if _, taken := s.Users.FindByReferralCode(code); !taken {
			return code, nil
		}
	}
}
