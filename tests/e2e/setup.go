//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"yogaflow/internal/handler"
	"yogaflow/internal/handler/api"
	"yogaflow/internal/handler/middleware"
	"yogaflow/internal/infra/db"
	"yogaflow/internal/infra/meeting"
	"yogaflow/internal/infra/readstore"
	"yogaflow/internal/infra/uow"
	"yogaflow/internal/pkg/clock"
	"yogaflow/internal/pkg/config"
	"yogaflow/internal/pkg/jwt"
	"yogaflow/internal/usecase"
	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/queries"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "Failed to resolve postgres container address")

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	router := buildRouter(pool, cfg)
	require.NotNil(t, router, "Failed to build router")

	return pool, router, cfg
}

func prepareDatabase(t *testing.T, postgresInfo containerInfo) (*pgxpool.Pool, config.DBConfig) {
	// One database per test process so parallel packages never collide.
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "Failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second))
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying test database creation", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "Failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	pool, poolCleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(poolCleanup)

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer migrateCancel()
	require.NoError(t, db.Migrate(migrateCtx, pool), "Failed to apply migrations")

	return pool, dbConfig
}

// silentNotifier drops notifications; outbound dispatch needs a broker and is
// out of scope for the HTTP lifecycle tests.
type silentNotifier struct{}

func (silentNotifier) BookingConfirmed(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, time.Time, *string) {
}
func (silentNotifier) BookingCancelled(context.Context, uuid.UUID, uuid.UUID, time.Time, bool, bool) {
}
func (silentNotifier) SessionReminder(context.Context, uuid.UUID, uuid.UUID, time.Time, *string) {}

// buildRouter wires the HTTP surface against the real database, with the
// meeting and notification edges stubbed out.
func buildRouter(pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	unitOfWork := uow.NewPostgresUoW(pool)
	clk := clock.NewRealClock()
	notifier := silentNotifier{}
	provisioner := meeting.NoopProvisioner{}

	slotCommands := commands.NewSlotUseCase(unitOfWork, clk)
	bookingCommands := commands.NewBookingUseCase(unitOfWork, provisioner, notifier, clk)
	cancellationCommands := commands.NewCancellationUseCase(unitOfWork, notifier, clk)
	billingCommands := commands.NewBillingUseCase(unitOfWork)

	slotQueries := queries.NewSlotQueries(readstore.NewSlotReadStore(pool), clk)
	bookingQueries := queries.NewBookingQueries(readstore.NewBookingReadStore(pool), clk)
	eligibilityQueries := queries.NewEligibilityQueries(readstore.NewQuotaReadStore(pool))

	slotHandler := api.NewSlotHandler(slotCommands, slotQueries)
	bookingHandler := api.NewBookingHandler(bookingCommands, cancellationCommands, bookingQueries, eligibilityQueries)
	billingHandler := api.NewBillingHandler(billingCommands, cfg.Stripe)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret)))

	engine := gin.New()
	handler.NewRouter(engine, cfg, slotHandler, bookingHandler, billingHandler, authMiddleware)
	return engine
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "Failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				termCtx, termCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer termCancel()
				if err := postgresTestContainer.Terminate(termCtx); err != nil {
					slog.Warn("failed to terminate postgres container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (containerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return containerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return containerInfo{}, err
	}
	return containerInfo{Host: host, Port: mappedPort}, nil
}

// SharedSuite is embedded by every e2e suite: one database-backed router per
// suite, truncated tables per subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	pool, router, cfg := setupE2EEnvironment(s.T())
	s.DB = pool
	s.Router = router
	s.Config = cfg
}

func (s *SharedSuite) ResetDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.DB.Exec(ctx, "TRUNCATE bookings, slots, subscription_quotas CASCADE")
	require.NoError(s.T(), err, "Failed to reset database state")
}
