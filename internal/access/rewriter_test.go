package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/access"
	"github.com/goto/folio/internal/access/mocks"
	"github.com/goto/folio/pkg/log"
)

type RewriterTestSuite struct {
	suite.Suite
	mockRoles *mocks.RoleRepository
	rewriter  *access.Rewriter
}

func TestRewriter(t *testing.T) {
	suite.Run(t, new(RewriterTestSuite))
}

func (s *RewriterTestSuite) SetupTest() {
	s.mockRoles = new(mocks.RoleRepository)
	s.rewriter = access.NewRewriter(s.mockRoles, log.NewNoop())
}

func (s *RewriterTestSuite) TestAddAccessSQL() {
	user := domain.Principal{ClientID: 11, OrgIDs: []int64{12, 11}}

	testCases := []struct {
		name     string
		stmt     string
		expected string
	}{
		{
			name:     "adds a where clause",
			stmt:     "SELECT C_Order.DocumentNo FROM C_Order",
			expected: "SELECT C_Order.DocumentNo FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11,12)",
		},
		{
			name:     "wraps existing conditions",
			stmt:     "SELECT C_Order.DocumentNo FROM C_Order WHERE C_Order.IsSOTrx='Y' OR C_Order.IsActive='N'",
			expected: "SELECT C_Order.DocumentNo FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11,12) AND (C_Order.IsSOTrx='Y' OR C_Order.IsActive='N')",
		},
		{
			name:     "ignores where in sub queries",
			stmt:     "SELECT (SELECT Name FROM C_BPartner WHERE C_BPartner.C_BPartner_ID=C_Order.C_BPartner_ID) FROM C_Order",
			expected: "SELECT (SELECT Name FROM C_BPartner WHERE C_BPartner.C_BPartner_ID=C_Order.C_BPartner_ID) FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11,12)",
		},
		{
			name:     "ignores where in literals",
			stmt:     "SELECT 'x WHERE y' AS Label FROM C_Order WHERE C_Order.Description <> ' where '",
			expected: "SELECT 'x WHERE y' AS Label FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11,12) AND (C_Order.Description <> ' where ')",
		},
		{
			name:     "keeps trailing clauses",
			stmt:     "SELECT C_Order.DocumentNo FROM C_Order where C_Order.IsSOTrx='Y' ORDER  BY C_Order.DocumentNo",
			expected: "SELECT C_Order.DocumentNo FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11,12) AND (C_Order.IsSOTrx='Y') ORDER  BY C_Order.DocumentNo",
		},
		{
			name:     "does not match column names containing the keyword",
			stmt:     "SELECT C_Order.Somewhere FROM C_Order",
			expected: "SELECT C_Order.Somewhere FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11,12)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			actual, err := s.rewriter.AddAccessSQL(context.Background(), tc.stmt, "C_Order", user)

			s.NoError(err)
			s.Equal(tc.expected, actual)
		})
	}
}

func (s *RewriterTestSuite) TestAddAccessSQLPrincipals() {
	stmt := "SELECT C_Order.DocumentNo FROM C_Order"

	s.Run("system principal is not restricted", func() {
		s.SetupTest()

		actual, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "C_Order", domain.Principal{})

		s.NoError(err)
		s.Equal(stmt, actual)
		s.mockRoles.AssertNotCalled(s.T(), "GetOrgAccess", mock.Anything, mock.Anything)
	})

	s.Run("role with access to all organizations is restricted by client only", func() {
		s.SetupTest()
		s.mockRoles.EXPECT().GetOrgAccess(mock.Anything, int64(102)).
			Return(&domain.RoleOrgAccess{RoleID: 102, ClientID: 11, IsAccessAllOrgs: true}, nil).Once()

		actual, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "C_Order", domain.Principal{ClientID: 11, RoleID: 102})

		s.NoError(err)
		s.Equal(stmt+" WHERE C_Order.AD_Client_ID IN (0,11)", actual)
	})

	s.Run("role organizations are read once", func() {
		s.SetupTest()
		s.mockRoles.EXPECT().GetOrgAccess(mock.Anything, int64(103)).
			Return(&domain.RoleOrgAccess{RoleID: 103, ClientID: 11, OrgIDs: []int64{50000}}, nil).Once()
		user := domain.Principal{ClientID: 11, RoleID: 103}

		for i := 0; i < 2; i++ {
			actual, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "C_Order", user)

			s.NoError(err)
			s.Equal(stmt+" WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,50000)", actual)
		}
		s.mockRoles.AssertExpectations(s.T())
	})

	s.Run("principal without role is restricted to its organization", func() {
		s.SetupTest()

		actual, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "C_Order", domain.Principal{ClientID: 11, OrgID: 11})

		s.NoError(err)
		s.Equal(stmt+" WHERE C_Order.AD_Client_ID IN (0,11) AND C_Order.AD_Org_ID IN (0,11)", actual)
	})

	s.Run("unknown role", func() {
		s.SetupTest()
		s.mockRoles.EXPECT().GetOrgAccess(mock.Anything, int64(999)).Return(nil, nil).Once()

		_, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "C_Order", domain.Principal{ClientID: 11, RoleID: 999})

		s.ErrorIs(err, access.ErrRoleNotFound)
	})

	s.Run("role lookup error", func() {
		s.SetupTest()
		expectedError := errors.New("connection refused")
		s.mockRoles.EXPECT().GetOrgAccess(mock.Anything, int64(104)).Return(nil, expectedError).Once()

		_, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "C_Order", domain.Principal{ClientID: 11, RoleID: 104})

		s.ErrorIs(err, expectedError)
	})

	s.Run("table name is required", func() {
		s.SetupTest()

		_, err := s.rewriter.AddAccessSQL(context.Background(), stmt, "", domain.Principal{ClientID: 11})

		s.ErrorIs(err, access.ErrEmptyTable)
	})
}
