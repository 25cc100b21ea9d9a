package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

func TestDefaults(t *testing.T) {
	c := fromViper(newTestViper())

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, DriverMySQL, c.DBDriver)
	assert.Equal(t, 300, c.IdempTTLSecs)
	assert.Equal(t, 5*time.Second, c.StoreTimeout())
	assert.Equal(t, 300*time.Second, c.IdempotencyTTL())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/lendhub")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORE_TIMEOUT_SECONDS", "2")

	c := fromViper(newTestViper())

	assert.Equal(t, "9090", c.AppPort)
	assert.Equal(t, DriverPostgres, c.DBDriver)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, 2*time.Second, c.StoreTimeout())
}

func TestValidate(t *testing.T) {
	c := fromViper(newTestViper())
	c.JWTSecret = "s3cret"
	require.NoError(t, c.Validate())

	bad := *c
	bad.MySQLPort = "not-a-port"
	assert.Error(t, bad.Validate())

	bad = *c
	bad.DBDriver = "oracle"
	assert.Error(t, bad.Validate())

	bad = *c
	bad.DBDriver = DriverPostgres
	assert.Error(t, bad.Validate(), "postgres needs DATABASE_URL")

	bad = *c
	bad.JWTSecret = ""
	assert.Error(t, bad.Validate())

	bad = *c
	bad.StoreTimeoutSecs = 0
	assert.Error(t, bad.Validate())

	bad = *c
	bad.IdempTTLSecs = 0
	assert.Error(t, bad.Validate(), "ttl 0 would never expire keys")

	bad = *c
	bad.IdempTTLSecs = -5
	assert.Error(t, bad.Validate())
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLUser: "u", MySQLPass: "p", MySQLHost: "db", MySQLPort: "3306", MySQLDB: "lendhub"}
	dsn := c.MySQLDSN()
	assert.True(t, strings.HasPrefix(dsn, "u:p@tcp(db:3306)/lendhub?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", " https://lendhub.ph, ,https://admin.lendhub.ph ")
	c := fromViper(newTestViper())
	assert.Equal(t, []string{"https://lendhub.ph", "https://admin.lendhub.ph"}, c.CORSOrigins)

	t.Setenv("CORS_ALLOW_ORIGINS", "")
	assert.Empty(t, fromViper(newTestViper()).CORSOrigins)
}
