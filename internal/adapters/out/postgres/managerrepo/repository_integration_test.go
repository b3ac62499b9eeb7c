package managerrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/managerrepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/domain/model/manager"
	"freight/internal/core/domain/model/truck"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ManagerRepositoryIntegrationTestSuite provides integration tests for ManagerRepository
// using PostgreSQL containers, covering the derived owned-truck set and the
// duplicate auth subject policy.
type ManagerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	managerRepository *managerrepo.GormManagerRepository
	truckRepository   *truckrepo.GormTruckRepository
}

func (suite *ManagerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&managerrepo.ManagerDTO{},
		&truckrepo.TruckDTO{},
	))
}

func (suite *ManagerRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE truck_managers, trucks").Error)

	// Create fresh repositories for each test
	suite.managerRepository = managerrepo.NewGormManagerRepository(suite.db)
	suite.truckRepository = truckrepo.NewGormTruckRepository(suite.db)
}

func (suite *ManagerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestAdd_AssignsIdentity() {
	ctx := context.Background()

	testManager := suite.createTestManager("auth-1")
	suite.Require().True(testManager.ID().IsZero())

	err := suite.managerRepository.Add(ctx, testManager)
	suite.Require().NoError(err)

	suite.False(testManager.ID().IsZero())
	suite.Equal(testManager.ID(), suite.managerRepository.IDOfAddedEntity())
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestAdd_NeverDeduplicates() {
	ctx := context.Background()

	first := suite.createTestManager("auth-1")
	second := suite.createTestManager("auth-1")

	suite.Require().NoError(suite.managerRepository.Add(ctx, first))
	suite.Require().NoError(suite.managerRepository.Add(ctx, second))

	// Two rows with the same auth subject and distinct identities
	suite.False(first.ID().IsEqual(second.ID()))

	var count int64
	suite.Require().NoError(suite.db.Model(&managerrepo.ManagerDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestGetByAuthID_LowestIdentityWins() {
	ctx := context.Background()

	first := suite.createTestManager("auth-1")
	second := suite.createTestManager("auth-1")
	suite.Require().NoError(suite.managerRepository.Add(ctx, first))
	suite.Require().NoError(suite.managerRepository.Add(ctx, second))

	retrieved, err := suite.managerRepository.GetByAuthID(ctx, "auth-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved)
	suite.True(retrieved.ID().IsEqual(first.ID()))
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestGetByAuthID_Missing_ReturnsNil() {
	ctx := context.Background()

	retrieved, err := suite.managerRepository.GetByAuthID(ctx, "unknown")
	suite.Require().NoError(err)
	suite.Nil(retrieved, "absence is a value, not an error")
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestGet_DerivesOwnedTrucks() {
	ctx := context.Background()

	testManager := suite.createTestManager("auth-1")
	suite.Require().NoError(suite.managerRepository.Add(ctx, testManager))

	owned1 := suite.createTestTruck("auth-1")
	owned2 := suite.createTestTruck("auth-1")
	foreign := suite.createTestTruck("auth-2")
	suite.Require().NoError(suite.truckRepository.Add(ctx, owned1))
	suite.Require().NoError(suite.truckRepository.Add(ctx, owned2))
	suite.Require().NoError(suite.truckRepository.Add(ctx, foreign))

	retrieved, err := suite.managerRepository.Get(ctx, testManager.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved)

	suite.Equal(2, retrieved.TruckIDs().Len())
	suite.True(retrieved.TruckIDs().Contains(owned1.ID()))
	suite.True(retrieved.TruckIDs().Contains(owned2.ID()))
	suite.False(retrieved.TruckIDs().Contains(foreign.ID()))
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestGetList_PagesAreDisjoint() {
	ctx := context.Background()

	for i := range 6 {
		suite.Require().NoError(suite.managerRepository.Add(ctx, suite.createTestManager("auth-"+string(rune('a'+i)))))
	}

	firstPage, hasMore, err := suite.managerRepository.GetList(ctx, 5, 0)
	suite.Require().NoError(err)
	suite.Len(firstPage, 5)
	suite.True(hasMore)

	secondPage, hasMore, err := suite.managerRepository.GetList(ctx, 5, 5)
	suite.Require().NoError(err)
	suite.Len(secondPage, 1)
	suite.False(hasMore)

	seen := make(map[int64]bool)
	for _, m := range firstPage {
		seen[m.ID().Int64()] = true
	}
	for _, m := range secondPage {
		suite.False(seen[m.ID().Int64()], "pages must not overlap")
	}
}

func (suite *ManagerRepositoryIntegrationTestSuite) TestRemove_ReportsDeletedIdentity() {
	ctx := context.Background()

	testManager := suite.createTestManager("auth-1")
	suite.Require().NoError(suite.managerRepository.Add(ctx, testManager))

	err := suite.managerRepository.Remove(ctx, testManager.ID())
	suite.Require().NoError(err)
	suite.Equal(testManager.ID(), suite.managerRepository.IDOfDeletedEntity())

	retrieved, err := suite.managerRepository.Get(ctx, testManager.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved)
}

// createTestManager creates a valid manager for testing purposes.
func (suite *ManagerRepositoryIntegrationTestSuite) createTestManager(authID string) *manager.Manager {
	testManager, err := manager.NewManager(authID)
	suite.Require().NoError(err)
	return testManager
}

// createTestTruck creates a valid truck owned by the given auth subject.
func (suite *ManagerRepositoryIntegrationTestSuite) createTestTruck(owner string) *truck.Truck {
	testTruck, err := truck.NewTruck("flatbed", 12, 3, owner)
	suite.Require().NoError(err)
	return testTruck
}

func TestManagerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerRepositoryIntegrationTestSuite))
}
