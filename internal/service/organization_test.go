package service_test

import (
	"context"
	"errors"
	"testing"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/mocks"
	"org-management-backend/internal/service"
	"org-management-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService step ordering and failures
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockAdminRepo       *mocks.MockAdminRepositoryInterface
	mockEventRepo       *mocks.MockLifecycleEventRepositoryInterface
	hasher              *auth.PasswordHasher
	tokens              *auth.TokenService
	organizationService *service.OrganizationService
	factories           *testutils.FactorySet
	ctx                 context.Context
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAdminRepo = mocks.NewMockAdminRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockLifecycleEventRepositoryInterface(suite.ctrl)
	suite.hasher = newTestHasher()
	suite.tokens = newTestTokens(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()

	// Journal writes are covered by the journal tests
	suite.mockEventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	authorizer := service.NewAuthorizer(suite.mockAdminRepo, suite.hasher, suite.tokens)
	suite.organizationService = service.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockAdminRepo,
		authorizer,
		suite.hasher,
		service.NewJournal(suite.mockEventRepo),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) existingOrg(slug, displayName string) (*models.Organization, *models.Admin) {
	org, admin := suite.factories.CreateOrganizationWithOwner(slug, displayName, "owner@acme.com")
	admin.PasswordHash = hashOf(suite.T(), suite.hasher, testPassword)
	return org, admin
}

// TestCreateOrganization tests the create steps run in order
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Inc",
		Email:            "owner@acme.com",
		Password:         testPassword,
	}

	var insertedOrg *models.Organization
	var insertedAdmin *models.Admin
	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(nil, apperrors.ErrOrganizationNotFound),
		suite.mockAdminRepo.EXPECT().ExistsByEmail(gomock.Any(), "owner@acme.com").Return(false, nil),
		suite.mockOrgRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *models.Organization) (primitive.ObjectID, error) {
				org.ID = primitive.NewObjectID()
				org.CollectionName = models.CollectionNameFor(org.Name)
				insertedOrg = org
				return org.ID, nil
			}),
		suite.mockOrgRepo.EXPECT().CreateCollection(gomock.Any(), "org_acme_inc").Return(nil),
		suite.mockAdminRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *models.Admin) (primitive.ObjectID, error) {
				admin.ID = primitive.NewObjectID()
				insertedAdmin = admin
				return admin.ID, nil
			}),
		suite.mockOrgRepo.EXPECT().SetOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, orgID, adminID primitive.ObjectID) error {
				suite.Equal(insertedOrg.ID, orgID)
				suite.Equal(insertedAdmin.ID, adminID)
				return nil
			}),
	)

	response, err := suite.organizationService.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("acme_inc", insertedOrg.Name)
	suite.Equal("Acme Inc", insertedOrg.DisplayName)
	suite.Equal(models.OrganizationStatusActive, insertedOrg.Status)
	suite.Equal(insertedOrg.ID, insertedAdmin.OrgID)
	suite.Equal(models.AdminRoleOwner, insertedAdmin.Role)
	suite.True(insertedAdmin.IsActive)
	suite.NotEqual(testPassword, insertedAdmin.PasswordHash)
	suite.True(suite.hasher.VerifyPassword(testPassword, insertedAdmin.PasswordHash))

	suite.Equal("org_acme_inc", response.Organization.CollectionName)
	suite.Equal(insertedAdmin.ID.Hex(), response.Organization.OwnerAdminID)
	suite.Equal("owner@acme.com", response.Organization.OwnerEmail)
	suite.Equal("owner", response.Admin.Role)
	suite.Equal("acme_inc", response.Admin.OrganizationName)
}

// TestCreateOrganizationValidation tests malformed input is rejected before the store is touched
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidation() {
	testCases := []struct {
		name string
		req  *service.CreateOrganizationRequest
	}{
		{"missing name", &service.CreateOrganizationRequest{Email: "owner@acme.com", Password: testPassword}},
		{"invalid email", &service.CreateOrganizationRequest{OrganizationName: "Acme", Email: "not-an-email", Password: testPassword}},
		{"missing password", &service.CreateOrganizationRequest{OrganizationName: "Acme", Email: "owner@acme.com"}},
		{"name without slug characters", &service.CreateOrganizationRequest{OrganizationName: "!!!", Email: "owner@acme.com", Password: testPassword}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.organizationService.Create(suite.ctx, tc.req)
			suite.Error(err)
			suite.True(apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

// TestCreateOrganizationConflicts tests slug and email conflicts are detected before any write
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationConflicts() {
	req := &service.CreateOrganizationRequest{OrganizationName: "ACME  inc", Email: "owner@acme.com", Password: testPassword}

	suite.Run("slug taken", func() {
		existing, _ := suite.existingOrg("acme_inc", "Acme Inc")
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(existing, nil)

		_, err := suite.organizationService.Create(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrOrganizationExists)
	})

	suite.Run("email taken", func() {
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(nil, apperrors.ErrOrganizationNotFound)
		suite.mockAdminRepo.EXPECT().ExistsByEmail(gomock.Any(), "owner@acme.com").Return(true, nil)

		_, err := suite.organizationService.Create(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrAdminExists)
	})

	suite.Run("lost insert race", func() {
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(nil, apperrors.ErrOrganizationNotFound)
		suite.mockAdminRepo.EXPECT().ExistsByEmail(gomock.Any(), "owner@acme.com").Return(false, nil)
		suite.mockOrgRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(primitive.NilObjectID, apperrors.ErrOrganizationExists)

		_, err := suite.organizationService.Create(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrOrganizationExists)
	})
}

// TestCreateOrganizationCollectionFailure tests the flow stops when the collection cannot be created
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationCollectionFailure() {
	req := &service.CreateOrganizationRequest{OrganizationName: "Acme Inc", Email: "owner@acme.com", Password: testPassword}

	suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(nil, apperrors.ErrOrganizationNotFound)
	suite.mockAdminRepo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockOrgRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(primitive.NewObjectID(), nil)
	suite.mockOrgRepo.EXPECT().CreateCollection(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	suite.mockAdminRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	suite.mockOrgRepo.EXPECT().SetOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.organizationService.Create(suite.ctx, req)

	suite.Error(err)
	suite.Contains(err.Error(), "disk full")
	suite.Equal("internal_failure", apperrors.Kind(err))
}

// TestGetOrganization tests get hides credentials and adds the owner email
func (suite *OrganizationServiceTestSuite) TestGetOrganization() {
	org, admin := suite.existingOrg("acme_inc", "Acme Inc")
	suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)
	suite.mockAdminRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)

	response, err := suite.organizationService.Get(suite.ctx, "Acme Inc")

	suite.Require().NoError(err)
	suite.Equal("acme_inc", response.Name)
	suite.Equal("Acme Inc", response.DisplayName)
	suite.Equal("org_acme_inc", response.CollectionName)
	suite.Equal("owner@acme.com", response.OwnerEmail)
	suite.Equal(org.ID.Hex(), response.ID)
}

// TestGetOrganizationNotFound tests missing organizations
func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotFound() {
	suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "missing").Return(nil, apperrors.ErrOrganizationNotFound)

	_, err := suite.organizationService.Get(suite.ctx, "Missing")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestRenameExplicit tests the rename steps run in order: copy, drop, rename record
func (suite *OrganizationServiceTestSuite) TestRenameExplicit() {
	org, admin := suite.existingOrg("acme_inc", "Acme Inc")
	renamed := *org
	renamed.Name = "acme_corp"
	renamed.DisplayName = "Acme Corp"
	renamed.CollectionName = "org_acme_corp"

	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil),
		suite.mockAdminRepo.EXPECT().FindByEmailAndOrg(gomock.Any(), "owner@acme.com", org.ID).Return(admin, nil),
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_corp").Return(nil, apperrors.ErrOrganizationNotFound),
		suite.mockOrgRepo.EXPECT().CopyCollection(gomock.Any(), "org_acme_inc", "org_acme_corp").Return(3, nil),
		suite.mockOrgRepo.EXPECT().DropCollection(gomock.Any(), "org_acme_inc").Return(nil),
		suite.mockOrgRepo.EXPECT().RenameSlug(gomock.Any(), "acme_inc", "acme_corp", "Acme Corp").Return(nil),
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_corp").Return(&renamed, nil),
		suite.mockAdminRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil),
	)

	response, err := suite.organizationService.RenameExplicit(suite.ctx, &service.RenameOrganizationExplicitRequest{
		CurrentOrganizationName: "Acme Inc",
		NewOrganizationName:     "Acme Corp",
		Email:                   "owner@acme.com",
		Password:                testPassword,
	})

	suite.Require().NoError(err)
	suite.Equal("acme_corp", response.Name)
	suite.Equal("org_acme_corp", response.CollectionName)
}

// TestRenameExplicitFailures tests that a failed step stops the flow before later steps run
func (suite *OrganizationServiceTestSuite) TestRenameExplicitFailures() {
	req := &service.RenameOrganizationExplicitRequest{
		CurrentOrganizationName: "Acme Inc",
		NewOrganizationName:     "Acme Corp",
		Email:                   "owner@acme.com",
		Password:                testPassword,
	}

	suite.Run("current organization missing", func() {
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(nil, apperrors.ErrOrganizationNotFound)

		_, err := suite.organizationService.RenameExplicit(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	})

	suite.Run("bad credentials", func() {
		org, admin := suite.existingOrg("acme_inc", "Acme Inc")
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)
		suite.mockAdminRepo.EXPECT().FindByEmailAndOrg(gomock.Any(), gomock.Any(), org.ID).Return(admin, nil)

		bad := *req
		bad.Password = "wrong"
		_, err := suite.organizationService.RenameExplicit(suite.ctx, &bad)
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("new slug owned by another organization", func() {
		org, admin := suite.existingOrg("acme_inc", "Acme Inc")
		other := suite.factories.Organization.WithSlug("acme_corp", "Acme Corp")
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)
		suite.mockAdminRepo.EXPECT().FindByEmailAndOrg(gomock.Any(), gomock.Any(), org.ID).Return(admin, nil)
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_corp").Return(other, nil)

		_, err := suite.organizationService.RenameExplicit(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrOrganizationExists)
	})

	suite.Run("copy fails, old collection kept", func() {
		org, admin := suite.existingOrg("acme_inc", "Acme Inc")
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)
		suite.mockAdminRepo.EXPECT().FindByEmailAndOrg(gomock.Any(), gomock.Any(), org.ID).Return(admin, nil)
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_corp").Return(nil, apperrors.ErrOrganizationNotFound)
		suite.mockOrgRepo.EXPECT().CopyCollection(gomock.Any(), "org_acme_inc", "org_acme_corp").Return(0, errors.New("cursor killed"))
		suite.mockOrgRepo.EXPECT().DropCollection(gomock.Any(), gomock.Any()).Times(0)
		suite.mockOrgRepo.EXPECT().RenameSlug(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := suite.organizationService.RenameExplicit(suite.ctx, req)
		suite.Error(err)
		suite.Equal("internal_failure", apperrors.Kind(err))
	})

	suite.Run("record rename fails after migration", func() {
		org, admin := suite.existingOrg("acme_inc", "Acme Inc")
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)
		suite.mockAdminRepo.EXPECT().FindByEmailAndOrg(gomock.Any(), gomock.Any(), org.ID).Return(admin, nil)
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_corp").Return(nil, apperrors.ErrOrganizationNotFound)
		suite.mockOrgRepo.EXPECT().CopyCollection(gomock.Any(), "org_acme_inc", "org_acme_corp").Return(3, nil)
		suite.mockOrgRepo.EXPECT().DropCollection(gomock.Any(), "org_acme_inc").Return(nil)
		suite.mockOrgRepo.EXPECT().RenameSlug(gomock.Any(), "acme_inc", "acme_corp", "Acme Corp").Return(errors.New("primary stepped down"))

		_, err := suite.organizationService.RenameExplicit(suite.ctx, req)
		suite.Error(err)
		suite.Contains(err.Error(), "failed to rename organization")
	})
}

// TestRenameSameSlug tests the single-name rename: credentials are checked against the named
// organization and, since the slug does not change, no collection is migrated
func (suite *OrganizationServiceTestSuite) TestRenameSameSlug() {
	org, admin := suite.existingOrg("acme_inc", "acme inc")
	renamed := *org
	renamed.DisplayName = "ACME Inc"

	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil),
		suite.mockAdminRepo.EXPECT().FindByEmailAndOrg(gomock.Any(), "owner@acme.com", org.ID).Return(admin, nil),
		suite.mockOrgRepo.EXPECT().RenameSlug(gomock.Any(), "acme_inc", "acme_inc", "ACME Inc").Return(nil),
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(&renamed, nil),
		suite.mockAdminRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil),
	)
	suite.mockOrgRepo.EXPECT().CopyCollection(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockOrgRepo.EXPECT().DropCollection(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.organizationService.Rename(suite.ctx, &service.RenameOrganizationRequest{
		OrganizationName: "ACME Inc",
		Email:            "owner@acme.com",
		Password:         testPassword,
	})

	suite.Require().NoError(err)
	suite.Equal("acme_inc", response.Name)
	suite.Equal("ACME Inc", response.DisplayName)
}

// TestDeleteOrganization tests the delete steps run in order
func (suite *OrganizationServiceTestSuite) TestDeleteOrganization() {
	org, admin := suite.existingOrg("acme_inc", "Acme Inc")
	token, _, err := suite.tokens.IssueToken(admin.ID.Hex(), "acme_inc", 0)
	suite.Require().NoError(err)

	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil),
		suite.mockOrgRepo.EXPECT().DropCollection(gomock.Any(), "org_acme_inc").Return(nil),
		suite.mockAdminRepo.EXPECT().DeleteAllForOrg(gomock.Any(), org.ID).Return(int64(1), nil),
		suite.mockOrgRepo.EXPECT().Delete(gomock.Any(), "acme_inc").Return(nil),
	)

	response, err := suite.organizationService.Delete(suite.ctx, "Acme Inc", token)

	suite.Require().NoError(err)
	suite.True(response.Deleted)
	suite.Equal("acme_inc", response.OrganizationName)
}

// TestDeleteOrganizationForbidden tests a token for another organization cannot delete
func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationForbidden() {
	org, _ := suite.existingOrg("globex", "Globex")
	token, _, err := suite.tokens.IssueToken(primitive.NewObjectID().Hex(), "acme_inc", 0)
	suite.Require().NoError(err)

	suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "globex").Return(org, nil)
	suite.mockOrgRepo.EXPECT().DropCollection(gomock.Any(), gomock.Any()).Times(0)
	suite.mockAdminRepo.EXPECT().DeleteAllForOrg(gomock.Any(), gomock.Any()).Times(0)
	suite.mockOrgRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	_, err = suite.organizationService.Delete(suite.ctx, "Globex", token)
	suite.ErrorIs(err, apperrors.ErrOrganizationScope)
}

// TestDeleteOrganizationUnauthorized tests invalid tokens
func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationUnauthorized() {
	org, _ := suite.existingOrg("acme_inc", "Acme Inc")
	suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)

	_, err := suite.organizationService.Delete(suite.ctx, "Acme Inc", "not-a-token")
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestCount tests counting organizations
func (suite *OrganizationServiceTestSuite) TestCount() {
	suite.mockOrgRepo.EXPECT().Count(gomock.Any()).Return(int64(7), nil)

	count, err := suite.organizationService.Count(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(7), count)
}

// TestHistory tests reading the journal with a token scoped to the organization
func (suite *OrganizationServiceTestSuite) TestHistory() {
	org, admin := suite.existingOrg("acme_inc", "Acme Inc")
	token, _, err := suite.tokens.IssueToken(admin.ID.Hex(), "acme_inc", 0)
	suite.Require().NoError(err)

	events := []models.LifecycleEvent{
		*suite.factories.LifecycleEvent.Create(org.ID, "acme_inc", models.LifecycleActionCreate, "insert_organization"),
	}
	suite.mockOrgRepo.EXPECT().FindBySlug(gomock.Any(), "acme_inc").Return(org, nil)
	suite.mockEventRepo.EXPECT().ListByOrganizationID(gomock.Any(), org.ID.Hex(), 100, 0).Return(events, int64(1), nil)

	response, err := suite.organizationService.History(suite.ctx, "Acme Inc", token, 0, -5)

	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Events, 1)
	suite.Equal("create", response.Events[0].Action)
	suite.Equal("insert_organization", response.Events[0].Step)
}

// Run the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
