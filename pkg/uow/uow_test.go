package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	db DBTX
}

type otherRepo struct{}

type UOWTestSuite struct {
	suite.Suite
	u *UnitOfWork
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

func (s *UOWTestSuite) SetupTest() {
	s.u = NewUnitOfWork(nil)
	s.Require().NoError(s.u.Register("fake", func(db DBTX) Repository {
		return &fakeRepo{db: db}
	}))
}

func (s *UOWTestSuite) TestRegister_Duplicate() {
	err := s.u.Register("fake", func(DBTX) Repository { return &otherRepo{} })
	s.ErrorIs(err, ErrRepositoryAlreadyRegistered)
}

func (s *UOWTestSuite) TestGetRepositoryAs() {
	repo, err := GetRepositoryAs[*fakeRepo](s.u, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetRepositoryAs[*otherRepo](s.u, "fake")
	s.ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetRepositoryAs[*fakeRepo](s.u, "missing")
	s.ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UOWTestSuite) TestTransactionGetAs() {
	tx := NewTransaction(nil, s.u.repositories)

	repo, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetAs[*otherRepo](tx, "fake")
	s.ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetAs[*fakeRepo](tx, "missing")
	s.ErrorIs(err, ErrRepositoryNotRegistered)
}
