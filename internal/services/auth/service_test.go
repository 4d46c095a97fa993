package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pixelana/pixelana-go/internal/dependencies/mocks"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegisterCreatesWalletAndSession() {
	s.random.QueueString("alice-identity")

	session, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	s.Equal(model.Identity("alice-identity"), session.Identity)
	s.NotEmpty(session.Token)
	s.True(session.ExpiresAt.After(session.CreatedAt))

	wallet, err := s.storage.GetWallet(s.ctx, "alice-identity")
	s.Require().NoError(err)
	s.NotEqual("hunter2", wallet.PassphraseHash)
}

func (s *ServiceSuite) TestRegisterRetriesOnIdentityCollision() {
	s.random.QueueString("taken", "fresh")
	s.Require().NoError(s.storage.SaveWallet(s.ctx, &model.Wallet{
		Identity:       "taken",
		PassphraseHash: "x",
	}))

	session, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)
	s.Equal(model.Identity("fresh"), session.Identity)
}

func (s *ServiceSuite) TestLoginSucceeds() {
	s.random.QueueString("alice-identity")
	_, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice-identity", "hunter2")
	s.Require().NoError(err)
	s.Equal(model.Identity("alice-identity"), session.Identity)
}

func (s *ServiceSuite) TestLoginWrongPassphraseFails() {
	s.random.QueueString("alice-identity")
	_, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice-identity", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownIdentityFails() {
	_, err := s.service.Login(s.ctx, "nobody", "hunter2")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	s.random.QueueString("alice-identity")
	session, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Identity, validated.Identity)

	_, err = s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionExpires() {
	s.random.QueueString("alice-identity")
	session, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	s.random.QueueString("alice-identity")
	session, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	s.random.QueueString("alice-identity", "bob-identity")
	expired, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)
	fresh, err := s.service.Register(s.ctx, "hunter2")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(expired.Token)
	s.ErrorIs(err, ErrInvalidSession)
	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
