// Package testenv starts the backing services the server needs during
// development and integration testing: a database container, an Authorizer
// container, and an optional Redis container for the session cache. It is
// used by cmd/devstack as a standalone executable and by test files.
// Expects environment variables to be loaded from .env files.
package testenv

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/greenloop/ewastedb/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Stack holds the running containers for one development or test session.
type Stack struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container
	RedisContainer      testcontainers.Container
}

// Terminate stops every container in the stack and removes the network.
func (s *Stack) Terminate(t *testing.T) {
	ctx := context.Background()
	if s.RedisContainer != nil {
		if err := s.RedisContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Redis: %v", err)
		}
	}
	if s.AuthorizerContainer != nil {
		if err := s.AuthorizerContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Authorizer: %v", err)
		}
	}
	if s.DBContainer != nil {
		if err := s.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateStack creates the network, database, Authorizer and Redis containers
// and initializes the application database with the embedded DDL. Pass a nil
// *testing.T to report failures on stdout and exit instead of failing a test.
func CreateStack(t *testing.T) (*Stack, error) {
	ctx := context.Background()
	stack := &Stack{}

	// Create a network
	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	stack.Network = nw
	networkName := nw.Name

	// Create and start the database container
	dbType := os.Getenv("DB_TYPE")
	dbNetworkName := os.Getenv("DB_HOST")
	tcpDbPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          getDBInitEnvMap(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to start database")
	}
	stack.DBContainer = dbContainer

	// Initialize the database(s)
	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	switch dbType {
	case "mysql", "mariadb":
		if err := performMySqlDBInit(t, stack, dbHost, dbPort); err != nil {
			stack.Terminate(t)
			exitWithError(t, err, "Failed to initialize databases")
		}
	default:
		stack.Terminate(t)
		exitWithError(t, fmt.Errorf("unsupported DB_TYPE %q", dbType), "Failed to initialize databases")
	}
	logMessage(t, "DB_URL=%s:%s", dbHost, dbPort.Port())

	// Create and start the Authorizer container
	authzNetworkName := "authorizer"
	tcpAuthzPort, err := nat.NewPort("tcp", os.Getenv("AUTHZ_PORT"))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to create Authorizer port")
	}
	authzDbConnection := fmt.Sprintf("root:%s@tcp(%s:%s)/%s", os.Getenv("DB_ROOT_PASSWORD"), dbNetworkName, os.Getenv("DB_PORT"), os.Getenv("AUTHZ_DATABASE"))
	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("AUTHZ_IMAGE"),
			ExposedPorts: []string{string(tcpAuthzPort)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
				"PORT":          os.Getenv("AUTHZ_PORT"),
				"DATABASE_TYPE": dbType,
				"DATABASE_NAME": os.Getenv("AUTHZ_DATABASE"),
				"DATABASE_URL":  authzDbConnection,
				"ADMIN_SECRET":  os.Getenv("AUTHZ_ADMIN_SECRET"),
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     "info",
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(10 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {authzNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to start Authorizer")
	}
	stack.AuthorizerContainer = authorizerContainer

	// Log the localhost and mapped ports for Authorizer for test processes
	authzHost, _ := authorizerContainer.Host(ctx)
	authzPort, _ := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
	logMessage(t, "AUTHZ_URL=http://%s:%s", authzHost, authzPort.Port())

	// Redis is optional; skip when no image is configured
	if redisImage := os.Getenv("REDIS_IMAGE"); redisImage != "" {
		tcpRedisPort, err := nat.NewPort("tcp", "6379")
		if err != nil {
			stack.Terminate(t)
			exitWithError(t, err, "Failed to create Redis port")
		}
		redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        redisImage,
				ExposedPorts: []string{string(tcpRedisPort)},
				WaitingFor:   wait.ForListeningPort(tcpRedisPort).WithStartupTimeout(30 * time.Second),
				Networks:     []string{networkName},
			},
			Started: true,
		})
		if err != nil {
			stack.Terminate(t)
			exitWithError(t, err, "Failed to start Redis")
		}
		stack.RedisContainer = redisContainer

		redisHost, _ := redisContainer.Host(ctx)
		redisPort, _ := redisContainer.MappedPort(ctx, tcpRedisPort)
		logMessage(t, "REDIS_ADDR=%s:%s", redisHost, redisPort.Port())
	}

	logMessage(t, "ewastedb dev stack started successfully")
	return stack, nil
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
			"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
			"MYSQL_USER":          os.Getenv("DB_USER"),
			"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
		}
	}
	return nil
}

func performMySqlDBInit(t *testing.T, stack *Stack, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", os.Getenv("DB_ROOT_PASSWORD"), dbHost, dbPort.Port()))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to connect to MariaDB for setup")
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "MariaDB not ready after 30 seconds")
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("DB_DATABASE")))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to create %s", os.Getenv("DB_DATABASE")))
	}
	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("AUTHZ_DATABASE")))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to create %s", os.Getenv("AUTHZ_DATABASE")))
	}
	_, err = db.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to create user %s", os.Getenv("DB_USER")))
	}
	_, err = db.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_ADMIN_USER"), os.Getenv("DB_ADMIN_PASSWORD")))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to create user %s", os.Getenv("DB_ADMIN_USER")))
	}
	_, err = db.Exec(fmt.Sprintf("GRANT ALL PRIVILEGES ON *.* TO 'root'@'%%' IDENTIFIED BY '%s' WITH GRANT OPTION", os.Getenv("DB_ROOT_PASSWORD")))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to grant root privileges")
	}
	_, err = db.Exec("FLUSH PRIVILEGES")
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to flush privileges")
	}
	err = executeSQL(db, renderInitSQL(data.InitdbMariaDBTables))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to execute %s tables init sql", os.Getenv("DB_TYPE")))
	}
	err = executeSQL(db, renderInitSQL(data.InitdbMariaDBPrivileges))
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to execute %s privileges init sql", os.Getenv("DB_TYPE")))
	}

	return nil
}

// renderInitSQL rewrites the canonical database and user names in the
// embedded init scripts to the configured environment values, so the GRANT
// targets are the same users performMySqlDBInit creates.
func renderInitSQL(script string) string {
	r := strings.NewReplacer(
		"ewaste_app", envOr("DB_USER", "ewaste_app"),
		"ewaste_admin", envOr("DB_ADMIN_USER", "ewaste_admin"),
		"ewaste.", envOr("DB_DATABASE", "ewaste")+".",
	)
	return r.Replace(script)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// executeSQL runs a multi-statement script, statement by statement, after
// stripping line comments.
func executeSQL(db *sql.DB, sql string) error {
	lines := strings.Split(sql, "\n")

	var ncls []string
	for _, l := range lines {
		ncl := excludeComment(l)
		ncls = append(ncls, ncl)
	}

	l := strings.Join(ncls, "")
	queries := strings.Split(l, ";")
	queries = queries[:len(queries)-1]

	for _, q := range queries {
		_, err := db.Exec(q)
		if err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

// excludeComment drops a trailing "--" comment from a line while leaving
// quoted strings that contain "--" intact.
func excludeComment(line string) string {
	d := "\""
	s := "'"
	c := "--"

	var nc string
	ck := line
	mx := len(line) + 1

	for {
		if len(ck) == 0 {
			return nc
		}

		di := strings.Index(ck, d)
		si := strings.Index(ck, s)
		ci := strings.Index(ck, c)

		if di < 0 {
			di = mx
		}
		if si < 0 {
			si = mx
		}
		if ci < 0 {
			ci = mx
		}

		var ei int

		if di < si && di < ci {
			nc += ck[:di+1]
			ck = ck[di+1:]
			ei = strings.Index(ck, d)
		} else if si < di && si < ci {
			nc += ck[:si+1]
			ck = ck[si+1:]
			ei = strings.Index(ck, s)
		} else if ci < di && ci < si {
			return nc + ck[:ci]
		} else {
			return nc + ck
		}

		nc += ck[:ei+1]
		ck = ck[ei+1:]
	}
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
