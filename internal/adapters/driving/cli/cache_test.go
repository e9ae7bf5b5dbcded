package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
)

func TestCacheCmd_Use(t *testing.T) {
	assert.Equal(t, "cache", cacheCmd.Use)
}

func TestCacheCmd_HasSubcommands(t *testing.T) {
	commands := cacheCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "clear")
}

func TestCacheListCmd_Empty(t *testing.T) {
	cleanup := setupConvertTest(&mockConvertService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Cache is empty.")
}

func TestCacheListCmd_ListsPages(t *testing.T) {
	mock := &mockConvertService{
		pages: []domain.Page{
			{Crate: "serde", Version: "1.0.219", Title: "Crate serde", ConvertedAt: samplePageTime},
			{Crate: "tokio", Version: "latest", Title: "Crate tokio", ConvertedAt: samplePageTime},
		},
	}
	cleanup := setupConvertTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "serde@1.0.219")
	assert.Contains(t, buf.String(), "tokio@latest")
	assert.Contains(t, buf.String(), "Crate serde")
	assert.Contains(t, buf.String(), "2026-08-30 12:00")
	assert.Contains(t, buf.String(), "2 page(s) cached.")
}

func TestCacheListCmd_CacheUnavailable(t *testing.T) {
	cleanup := setupConvertTest(&mockConvertService{err: domain.ErrCacheUnavailable})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"cache", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestCacheClearCmd_Clears(t *testing.T) {
	mock := &mockConvertService{}
	cleanup := setupConvertTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.True(t, mock.cleared)
	assert.Contains(t, buf.String(), "Cache cleared.")
}

func TestCacheClearCmd_CacheUnavailable(t *testing.T) {
	cleanup := setupConvertTest(&mockConvertService{err: domain.ErrCacheUnavailable})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"cache", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}
