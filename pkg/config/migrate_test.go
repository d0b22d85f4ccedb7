package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../migrations"

// Every up migration must have a matching down migration so a downgrade to
// base removes everything the chain created.
func TestMigrationFilesArePaired(t *testing.T) {
	entries, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := make(map[string]bool)
	downs := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations dir: %s", name)
		}
	}

	for base := range ups {
		assert.True(t, downs[base], "missing down migration for %s", base)
	}
	for base := range downs {
		assert.True(t, ups[base], "missing up migration for %s", base)
	}
}

// Down migrations drop the triggers before the functions they call.
func TestDownMigrationsDropTriggerBeforeFunction(t *testing.T) {
	entries, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".down.sql") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(migrationsDir, entry.Name()))
		require.NoError(t, err)

		sql := strings.ToUpper(string(content))
		triggerIdx := strings.Index(sql, "DROP TRIGGER")
		functionIdx := strings.Index(sql, "DROP FUNCTION")
		require.NotEqual(t, -1, triggerIdx, "%s drops no trigger", entry.Name())
		require.NotEqual(t, -1, functionIdx, "%s drops no function", entry.Name())
		assert.Less(t, triggerIdx, functionIdx,
			"%s must drop the trigger before its function", entry.Name())
	}
}
