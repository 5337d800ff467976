//go:build integration
// +build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository against a real MongoDB
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.Mongo, suite.baseTestSuite.Config.MongoTimeout())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) seedDocs(collection string, n int) {
	docs := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, bson.M{"_id": primitive.NewObjectID(), "seq": i})
	}
	_, err := suite.baseTestSuite.Mongo.Collection(collection).InsertMany(suite.ctx, docs)
	suite.Require().NoError(err)
}

func (suite *OrganizationRepositoryTestSuite) countDocs(collection string) int64 {
	count, err := suite.baseTestSuite.Mongo.Collection(collection).CountDocuments(suite.ctx, bson.M{})
	suite.Require().NoError(err)
	return count
}

func (suite *OrganizationRepositoryTestSuite) collectionExists(name string) bool {
	names, err := suite.baseTestSuite.Mongo.ListCollectionNames(suite.ctx, bson.M{"name": name})
	suite.Require().NoError(err)
	return len(names) == 1
}

// TestInsertAndFind tests inserting an organization and reading it back
func (suite *OrganizationRepositoryTestSuite) TestInsertAndFind() {
	org := suite.factories.Organization.WithSlug("acme_inc", "Acme Inc")
	org.CollectionName = "something_else"

	id, err := suite.repo.Insert(suite.ctx, org)
	suite.Require().NoError(err)
	suite.Equal(org.ID, id)

	found, err := suite.repo.FindBySlug(suite.ctx, "acme_inc")
	suite.Require().NoError(err)
	suite.Equal("Acme Inc", found.DisplayName)
	suite.Equal("org_acme_inc", found.CollectionName)
	suite.Equal(models.OrganizationStatusActive, found.Status)

	byID, err := suite.repo.FindByID(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal("acme_inc", byID.Name)
}

// TestInsertDuplicateSlug tests the unique index on the slug
func (suite *OrganizationRepositoryTestSuite) TestInsertDuplicateSlug() {
	_, err := suite.repo.Insert(suite.ctx, suite.factories.Organization.WithSlug("acme_inc", "Acme Inc"))
	suite.Require().NoError(err)

	_, err = suite.repo.Insert(suite.ctx, suite.factories.Organization.WithSlug("acme_inc", "ACME inc."))
	suite.ErrorIs(err, apperrors.ErrOrganizationExists)
}

// TestFindNotFound tests lookups of missing organizations
func (suite *OrganizationRepositoryTestSuite) TestFindNotFound() {
	_, err := suite.repo.FindBySlug(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)

	_, err = suite.repo.FindByID(suite.ctx, primitive.NewObjectID())
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestSetOwner tests linking the owner admin
func (suite *OrganizationRepositoryTestSuite) TestSetOwner() {
	org := suite.factories.Organization.Create()
	_, err := suite.repo.Insert(suite.ctx, org)
	suite.Require().NoError(err)

	adminID := primitive.NewObjectID()
	suite.Require().NoError(suite.repo.SetOwner(suite.ctx, org.ID, adminID))

	found, err := suite.repo.FindByID(suite.ctx, org.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.OwnerAdminID)
	suite.Equal(adminID, *found.OwnerAdminID)

	suite.ErrorIs(suite.repo.SetOwner(suite.ctx, primitive.NewObjectID(), adminID), apperrors.ErrOrganizationNotFound)
}

// TestRenameSlug tests moving an organization to a new slug
func (suite *OrganizationRepositoryTestSuite) TestRenameSlug() {
	_, err := suite.repo.Insert(suite.ctx, suite.factories.Organization.WithSlug("acme_inc", "Acme Inc"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.RenameSlug(suite.ctx, "acme_inc", "acme_corp", "Acme Corp"))

	_, err = suite.repo.FindBySlug(suite.ctx, "acme_inc")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)

	found, err := suite.repo.FindBySlug(suite.ctx, "acme_corp")
	suite.Require().NoError(err)
	suite.Equal("Acme Corp", found.DisplayName)
	suite.Equal("org_acme_corp", found.CollectionName)
}

// TestRenameSlugConflicts tests renaming onto a slug held by another organization
func (suite *OrganizationRepositoryTestSuite) TestRenameSlugConflicts() {
	_, err := suite.repo.Insert(suite.ctx, suite.factories.Organization.WithSlug("acme_inc", "Acme Inc"))
	suite.Require().NoError(err)
	_, err = suite.repo.Insert(suite.ctx, suite.factories.Organization.WithSlug("globex", "Globex"))
	suite.Require().NoError(err)

	err = suite.repo.RenameSlug(suite.ctx, "acme_inc", "globex", "Globex")
	suite.ErrorIs(err, apperrors.ErrOrganizationExists)

	err = suite.repo.RenameSlug(suite.ctx, "missing", "other", "Other")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestDeleteAndCount tests deleting organizations and counting the remainder
func (suite *OrganizationRepositoryTestSuite) TestDeleteAndCount() {
	for i := 0; i < 3; i++ {
		_, err := suite.repo.Insert(suite.ctx, suite.factories.Organization.WithSlug(fmt.Sprintf("org_%d", i), fmt.Sprintf("Org %d", i)))
		suite.Require().NoError(err)
	}

	count, err := suite.repo.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, "org_1"))
	suite.ErrorIs(suite.repo.Delete(suite.ctx, "org_1"), apperrors.ErrOrganizationNotFound)

	count, err = suite.repo.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

// TestCreateCollection tests provisioning a tenant collection
func (suite *OrganizationRepositoryTestSuite) TestCreateCollection() {
	suite.Require().NoError(suite.repo.CreateCollection(suite.ctx, "org_acme_inc"))
	suite.True(suite.collectionExists("org_acme_inc"))

	err := suite.repo.CreateCollection(suite.ctx, "org_acme_inc")
	suite.ErrorIs(err, apperrors.ErrCollectionExists)
}

// TestCopyCollection tests copying more documents than one batch
func (suite *OrganizationRepositoryTestSuite) TestCopyCollection() {
	suite.seedDocs("org_acme_inc", copyBatchSize+25)

	copied, err := suite.repo.CopyCollection(suite.ctx, "org_acme_inc", "org_acme_corp")
	suite.Require().NoError(err)
	suite.Equal(copyBatchSize+25, copied)
	suite.Equal(int64(copyBatchSize+25), suite.countDocs("org_acme_corp"))
	suite.Equal(int64(copyBatchSize+25), suite.countDocs("org_acme_inc"))
}

// TestCopyCollectionResumes tests that a second copy skips documents already present
func (suite *OrganizationRepositoryTestSuite) TestCopyCollectionResumes() {
	suite.seedDocs("org_acme_inc", 10)

	_, err := suite.repo.CopyCollection(suite.ctx, "org_acme_inc", "org_acme_corp")
	suite.Require().NoError(err)

	suite.seedDocs("org_acme_inc", 5)
	copied, err := suite.repo.CopyCollection(suite.ctx, "org_acme_inc", "org_acme_corp")
	suite.Require().NoError(err)
	suite.Equal(5, copied)
	suite.Equal(int64(15), suite.countDocs("org_acme_corp"))
}

// TestCopyCollectionBoundsEachRoundTrip tests the store timeout applies per batch, not to the whole copy
func (suite *OrganizationRepositoryTestSuite) TestCopyCollectionBoundsEachRoundTrip() {
	const total = copyBatchSize * 40
	suite.seedDocs("org_acme_inc", total)

	timeout := 100 * time.Millisecond
	repo := NewOrganizationRepository(suite.baseTestSuite.Mongo, timeout)

	started := time.Now()
	copied, err := repo.CopyCollection(suite.ctx, "org_acme_inc", "org_acme_corp")
	suite.Require().NoError(err)
	suite.Equal(total, copied)
	suite.Equal(int64(total), suite.countDocs("org_acme_corp"))
	suite.T().Logf("copied %d documents in %s with a %s store timeout", copied, time.Since(started), timeout)
}

// TestCopyCollectionHonorsCancellation tests the caller's context still stops the copy
func (suite *OrganizationRepositoryTestSuite) TestCopyCollectionHonorsCancellation() {
	suite.seedDocs("org_acme_inc", copyBatchSize*2)

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	copied, err := suite.repo.CopyCollection(ctx, "org_acme_inc", "org_acme_corp")
	suite.Require().Error(err)
	suite.Zero(copied)
	suite.Zero(suite.countDocs("org_acme_corp"))
}

// TestCopyEmptyCollection tests that an empty source still yields the destination collection
func (suite *OrganizationRepositoryTestSuite) TestCopyEmptyCollection() {
	suite.Require().NoError(suite.repo.CreateCollection(suite.ctx, "org_empty"))

	copied, err := suite.repo.CopyCollection(suite.ctx, "org_empty", "org_still_empty")
	suite.Require().NoError(err)
	suite.Zero(copied)
	suite.True(suite.collectionExists("org_still_empty"))
}

// TestDropCollection tests dropping existing and missing collections
func (suite *OrganizationRepositoryTestSuite) TestDropCollection() {
	suite.seedDocs("org_acme_inc", 3)

	suite.Require().NoError(suite.repo.DropCollection(suite.ctx, "org_acme_inc"))
	suite.False(suite.collectionExists("org_acme_inc"))

	suite.NoError(suite.repo.DropCollection(suite.ctx, "org_never_existed"))
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
