package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSourceConfig(t *testing.T) {
	cfg := DefaultSourceConfig()
	require.Equal(t, "localhost", cfg.Host)
	require.Equal(t, "root", cfg.User)
	require.Empty(t, cfg.Password)
}

func TestDSN(t *testing.T) {
	cfg := SourceConfig{Host: "db", Port: "5432", User: "root", Password: "p@ss word", Name: "users", SSLMode: "disable"}
	require.Equal(t, "postgres://root:p%40ss%20word@db:5432/users?sslmode=disable", cfg.DSN())
}
