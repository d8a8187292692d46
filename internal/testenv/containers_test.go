package testenv

import (
	"strings"
	"testing"
)

// TestRenderInitSQL verifies the init scripts are rewritten to the configured
// database and user names so grants land on the users the stack creates
func TestRenderInitSQL(t *testing.T) {
	t.Setenv("DB_DATABASE", "greendb")
	t.Setenv("DB_USER", "green_app")
	t.Setenv("DB_ADMIN_USER", "green_admin")

	script := `GRANT SELECT ON ewaste.devices TO 'ewaste_app'@'%';
GRANT ALL PRIVILEGES ON ewaste.* TO 'ewaste_admin'@'%';`

	got := renderInitSQL(script)

	if !strings.Contains(got, "greendb.devices") {
		t.Errorf("Expected database name rewritten, got %q", got)
	}
	if !strings.Contains(got, "'green_app'@'%'") {
		t.Errorf("Expected app user rewritten, got %q", got)
	}
	if !strings.Contains(got, "'green_admin'@'%'") {
		t.Errorf("Expected admin user rewritten, got %q", got)
	}
	if strings.Contains(got, "ewaste") {
		t.Errorf("Expected no canonical names left, got %q", got)
	}
}

// TestRenderInitSQLDefaults verifies the scripts pass through unchanged when
// the environment keeps the canonical names
func TestRenderInitSQLDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_ADMIN_USER", "")

	script := "GRANT SELECT ON ewaste.devices TO 'ewaste_app'@'%';"
	if got := renderInitSQL(script); got != script {
		t.Errorf("Expected script unchanged with default env, got %q", got)
	}
}
