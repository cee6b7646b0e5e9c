package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database,
// including the row-lock serialization of concurrent shipments.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.ShipmentDTO{},
		&auditrepo.AuditEntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, line_items, shipments, audit_entries").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.AuditRecorder())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.AuditRecorder())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// repeated begin is a no-op
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedOrderPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder("PO-1001")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder("PO-1001")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AuditCommitsWithMutation() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder("PO-1001")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      "jdoe",
		Action:     "order.create",
		EntityType: "order",
		EntityID:   testOrder.ID(),
		Before:     nil,
		After:      map[string]any{"po_number": testOrder.PONumber()},
	}))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
	suite.assertAuditCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAuditToo() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder("PO-1001")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      "jdoe",
		Action:     "order.create",
		EntityType: "order",
		EntityID:   testOrder.ID(),
		After:      map[string]any{"po_number": testOrder.PONumber()},
	}))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
	suite.assertAuditCount(0)
}

// Two concurrent shipments of 60 against a 100-unit line item: the row lock
// serializes them, so exactly one succeeds and the other fails the
// remaining-quantity check instead of overselling.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentShipmentsSerialize() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("PO-1001")
	lineItemID := testOrder.LineItems()[0].ID()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.Commit(ctx))

	shipDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ship := func(qty string) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() { _ = uow.Rollback(ctx) }()

		repo := uow.OrderRepository()
		aggregate, err := repo.GetForUpdate(ctx, testOrder.ID())
		if err != nil {
			return err
		}

		quantity, err := kernel.QuantityFromString(qty)
		if err != nil {
			return err
		}

		shipment, err := aggregate.ShipLineItem(lineItemID, quantity, shipDate, "", "", "jdoe")
		if err != nil {
			return err
		}
		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
		if err = repo.AddShipment(ctx, shipment); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ship("60")
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range results {
		if err != nil {
			suite.Require().ErrorIs(err, errs.ErrOverShipment)
			failures++
		}
	}
	suite.Equal(1, failures, "exactly one of the two shipments must be rejected")

	reader := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	restored, err := reader.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	item, err := restored.LineItem(lineItemID)
	suite.Require().NoError(err)
	suite.Equal("60.00", item.ShippedQuantity().String())

	shipments, err := reader.GetShipments(ctx, lineItemID)
	suite.Require().NoError(err)
	suite.Len(shipments, 1)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(poNumber string) *order.Order {
	quantity, err := kernel.QuantityFromString("100")
	suite.Require().NoError(err)

	item, err := order.NewLineItem(
		kernel.NewUUID(), nil, "PN-100", "hydraulic hose", "",
		quantity, order.Feet)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), poNumber, nil, nil, "",
		[]*order.LineItem{item})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertAuditCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&auditrepo.AuditEntryDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
