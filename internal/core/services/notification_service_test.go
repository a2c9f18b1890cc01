package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.NotificationSvcFacade
	accountID            string
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo)
	suite.accountID = uuid.NewString()
}

// --- Test Cases ---

func (suite *NotificationServiceTestSuite) TestList_UnreadOnlyPassedThrough() {
	ctx := context.Background()
	notifications := []domain.Notification{
		{
			NotificationID: uuid.NewString(),
			AccountID:      suite.accountID,
			Kind:           domain.NotificationLoanDue,
			Title:          "Loan due soon",
			CreatedAt:      time.Now().UTC(),
		},
	}

	suite.mockNotificationRepo.On("ListNotifications", ctx, suite.accountID, true).Return(notifications, nil).Once()

	got, err := suite.service.List(ctx, suite.accountID, true)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_Idempotent() {
	ctx := context.Background()
	notificationID := uuid.NewString()

	// The repository treats re-marking an already-read row as a no-op match.
	suite.mockNotificationRepo.On("MarkRead", ctx, suite.accountID, notificationID).Return(nil).Twice()

	suite.Require().NoError(suite.service.MarkRead(ctx, suite.accountID, notificationID))
	suite.Require().NoError(suite.service.MarkRead(ctx, suite.accountID, notificationID))

	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_NotFound() {
	ctx := context.Background()
	notificationID := uuid.NewString()

	suite.mockNotificationRepo.On("MarkRead", ctx, suite.accountID, notificationID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.MarkRead(ctx, suite.accountID, notificationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	ctx := context.Background()

	suite.mockNotificationRepo.On("MarkAllRead", ctx, suite.accountID).Return(nil).Once()

	suite.Require().NoError(suite.service.MarkAllRead(ctx, suite.accountID))
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestUnreadCount() {
	ctx := context.Background()

	suite.mockNotificationRepo.On("CountUnread", ctx, suite.accountID).Return(4, nil).Once()

	count, err := suite.service.UnreadCount(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.Equal(4, count)
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
