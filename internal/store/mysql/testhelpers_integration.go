//go:build integration

package mysql

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
)

// startSeedDatabase runs MySQL with db/schema.sql applied and returns a DSN
// that config.Config.MySQLDSN accepts.
func startSeedDatabase(t *testing.T, ctx context.Context) string {
	t.Helper()

	container, err := tcmysql.RunContainer(ctx,
		tcmysql.WithDatabase("mockgraph_test"),
		tcmysql.WithUsername("mockgraph"),
		tcmysql.WithPassword("mockgraph"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("3306/tcp"))
	require.NoError(t, err)
	dsn := "mockgraph:mockgraph@tcp(" + host + ":" + port.Port() + ")/mockgraph_test?multiStatements=true"

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "db", "schema.sql"))
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)

	return dsn
}
