package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())
	uri := fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)

	return uri, func() {
		_ = container.Terminate(ctx)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	uri, terminate := setupMongo(t)
	defer terminate()

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	defer func() { _ = db.Stop() }()

	ctx := context.Background()
	coll := db.Client.Database(TestDBName).Collection(StructureCollection)

	_, err = coll.InsertMany(ctx, []any{
		entry{Key: "structure_global", Value: `{"foo":1}`},
		entry{Key: "structure_char_url", Value: "https://example.com/chars.json"},
		entry{Key: "structure_unit_leo_need", Value: "0"},
	})
	require.NoError(t, err)

	retriever := NewStructureRetriever(db)

	got, err := retriever.Get(ctx, "structure_global")
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":1}`, string(got))

	got, err = retriever.Get(ctx, "structure_char_url")
	require.NoError(t, err)
	assert.Equal(t, `"https://example.com/chars.json"`, string(got))

	got, err = retriever.Get(ctx, "structure_unit_leo_need")
	require.NoError(t, err)
	assert.Equal(t, "0", string(got))

	got, err = retriever.Get(ctx, "structure_unit_more_more_jump")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestValidatorRejectsForeignKeys(t *testing.T) {
	t.Parallel()

	uri, terminate := setupMongo(t)
	defer terminate()

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	defer func() { _ = db.Stop() }()

	coll := db.Client.Database(TestDBName).Collection(StructureCollection)
	_, err = coll.InsertOne(context.Background(), entry{Key: "other", Value: "{}"})
	assert.Error(t, err)
}
