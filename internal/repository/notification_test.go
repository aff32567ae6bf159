package repository

import (
	"context"
	"testing"

	"broadcast-ops-backend/internal/database/models"
	"broadcast-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// NotificationRepositoryTestSuite tests the NotificationRepository against the
// shared Postgres container
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByRecipient tests ad-hoc inserts and recipient scoping
func (suite *NotificationRepositoryTestSuite) TestCreateAndGetByRecipient() {
	forNOC := suite.factories.Notification.WithRecipient(string(models.RoleNOC))
	forBooking := suite.factories.Notification.WithRecipient(string(models.RoleBooking))
	suite.Require().NoError(suite.repo.Create(suite.ctx, forNOC))
	suite.Require().NoError(suite.repo.Create(suite.ctx, forBooking))

	listed, total, err := suite.repo.GetByRecipient(suite.ctx, string(models.RoleNOC), false, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(listed, 1)
	suite.Equal(forNOC.ID, listed[0].ID)
	suite.Equal(forNOC.SubjectID, listed[0].SubjectID)
}

// TestMarkReadDropsFromUnreadListing tests the read flag and the unread filter
func (suite *NotificationRepositoryTestSuite) TestMarkReadDropsFromUnreadListing() {
	n := suite.factories.Notification.WithRecipient(string(models.RoleIngest))
	suite.Require().NoError(suite.repo.Create(suite.ctx, n))

	suite.Require().NoError(suite.repo.MarkRead(suite.ctx, n.ID))

	_, unread, err := suite.repo.GetByRecipient(suite.ctx, string(models.RoleIngest), true, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(0), unread)

	_, all, err := suite.repo.GetByRecipient(suite.ctx, string(models.RoleIngest), false, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), all)
}

// TestMarkReadUnknownID tests the missing-row result
func (suite *NotificationRepositoryTestSuite) TestMarkReadUnknownID() {
	err := suite.repo.MarkRead(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMarkAllReadScopedToRecipient tests that bulk read leaves other inboxes alone
func (suite *NotificationRepositoryTestSuite) TestMarkAllReadScopedToRecipient() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Notification.WithRecipient(string(models.RoleNOC))))
	}
	other := suite.factories.Notification.WithRecipient(string(models.RoleBooking))
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	suite.Require().NoError(suite.repo.MarkAllRead(suite.ctx, string(models.RoleNOC)))

	_, nocUnread, err := suite.repo.GetByRecipient(suite.ctx, string(models.RoleNOC), true, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(0), nocUnread)

	_, bookingUnread, err := suite.repo.GetByRecipient(suite.ctx, string(models.RoleBooking), true, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), bookingUnread)
}

// Run the test suite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
