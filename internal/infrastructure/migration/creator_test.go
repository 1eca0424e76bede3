package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fiscal/registros/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- test"), 0o644))
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add registros table", "add_registros_table"},
		{"Add-Periodo-Index", "add_periodo_index"},
		{"SEED_DEMO", "seed_demo"},
		{"add__double__sep", "add_double_sep"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"aprobación", "aprobacin"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	t.Run("first migration starts at one", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "create registros", "client and registration tables")
		require.NoError(t, err)

		assert.Equal(t, "000001", mf.Version)
		assert.Equal(t, filepath.Join(dir, "000001_create_registros.up.sql"), mf.UpPath)
		assert.Equal(t, filepath.Join(dir, "000001_create_registros.down.sql"), mf.DownPath)

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "-- Migration: create registros")
		assert.Contains(t, string(up), "client and registration tables")

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(down), "(Rollback)")
	})

	t.Run("numbers after the highest existing version", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			"000001_init.up.sql", "000001_init.down.sql",
			"000007_gap.up.sql", "000007_gap.down.sql",
		)

		mf, err := CreateMigration(dir, "next", "")
		require.NoError(t, err)
		assert.Equal(t, "000008", mf.Version)
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		_, err := CreateMigration(dir, "init", "")
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects a name without usable characters", func(t *testing.T) {
		_, err := CreateMigration(t.TempDir(), "!!!", "")
		assert.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("sorted base names of up files", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			"000002_seed.up.sql", "000002_seed.down.sql",
			"000001_init.up.sql", "000001_init.down.sql",
			"README.md", ".gitkeep",
		)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "000003_dir.up.sql"), 0o755))

		names, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_init", "000002_seed"}, names)
	})

	t.Run("missing directory is empty", func(t *testing.T) {
		names, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestEmbeddedMigrations_ArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*"+upSuffix)
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := up[:len(up)-len(upSuffix)] + downSuffix
		_, err := fs.Stat(migrations.FS, down)
		assert.NoError(t, err, "missing rollback for %s", up)
	}
}
