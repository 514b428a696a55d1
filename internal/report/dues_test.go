package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type DuesReportTestSuite struct {
	suite.Suite
}

func TestDuesReportSuite(t *testing.T) {
	suite.Run(t, new(DuesReportTestSuite))
}

func (s *DuesReportTestSuite) TestWriteDues() {
	dues := []domain.DueEntry{
		{
			ID:            1,
			RetailerName:  "Sharma Kirana",
			RetailerPhone: "9800000001",
			Description:   "rice",
			Amount:        decimal.RequireFromString("500.25"),
			PurchaseDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:        domain.DueStatusOverdue,
			CreatedAt:     time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	s.Require().NoError(WriteDues(&buf, dues))

	f, err := excelize.OpenReader(&buf)
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(dueSheet)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(dueHeader, rows[0])
	s.Equal("Sharma Kirana", rows[1][1])
	s.Equal("500.25", rows[1][4])
	s.Equal("2026-01-15", rows[1][6])
	s.Equal("overdue", rows[1][7])
}

func (s *DuesReportTestSuite) TestEmpty() {
	var buf bytes.Buffer
	s.Require().NoError(WriteDues(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(dueSheet)
	s.Require().NoError(err)
	s.Len(rows, 1)
}
