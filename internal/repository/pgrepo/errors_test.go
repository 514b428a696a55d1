package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type ConvertErrTestSuite struct {
	suite.Suite
}

func TestConvertErrSuite(t *testing.T) {
	suite.Run(t, new(ConvertErrTestSuite))
}

func (s *ConvertErrTestSuite) TestConvertErr() {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: foreignKeyViolationCode}, want: domain.ErrRecordNotFound},
		{name: "check", err: &pgconn.PgError{Code: checkViolationCode}, want: domain.ErrValidation},
		{name: "numeric out of range", err: &pgconn.PgError{Code: numericOutOfRangeCode}, want: domain.ErrValidation},
		{name: "other pg", err: &pgconn.PgError{Code: "40001"}, want: domain.ErrUnknown},
		{name: "plain", err: errors.New("boom"), want: domain.ErrUnknown},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := convertErr(t.err, "op %d", 1)
			s.Require().Error(err)
			s.ErrorIs(err, t.want)
			s.Contains(err.Error(), "[repository/op 1]")
		})
	}

	s.NoError(convertErr(nil, "nothing"))
}
