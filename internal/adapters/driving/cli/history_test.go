package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
}

func TestHistoryCmd_ListsExchanges(t *testing.T) {
	records, _, _, history, cleanup := setupTestServices()
	defer cleanup()
	records.record = &domain.DocumentRecord{PK: 42, Filename: "a.md"}
	history.exchanges = []domain.Exchange{
		{ID: "1", PK: 42, Query: "first question", Response: "first answer", CreatedAt: time.Now()},
		{ID: "2", PK: 99, Query: "other doc", Response: "n/a"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "first question")
	assert.Contains(t, buf.String(), "first answer")
	assert.NotContains(t, buf.String(), "other doc")
}

func TestHistoryCmd_Empty(t *testing.T) {
	records, _, _, _, cleanup := setupTestServices()
	defer cleanup()
	records.record = &domain.DocumentRecord{PK: 42, Filename: "a.md"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No chat history")
}

func TestHistoryCmd_JSONOutput(t *testing.T) {
	records, _, _, history, cleanup := setupTestServices()
	defer cleanup()
	records.record = &domain.DocumentRecord{PK: 42}
	history.exchanges = []domain.Exchange{
		{ID: "1", PK: 42, Query: "q", Response: "r"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		historyJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var decoded []domain.Exchange
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "q", decoded[0].Query)
}

func TestHistoryCmd_NoActiveDocument(t *testing.T) {
	_, _, _, _, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no active document")
}
