package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadPayloads(t *testing.T) {
	dir := t.TempDir()

	t.Run("single json object", func(t *testing.T) {
		path := writeFile(t, dir, "one.json", `{"external_id":"ext-1","client":{"name":"Madeireira Silva"},
			"items":[{"sku":"MAD-01","name":"Tábua","quantity":2,"unit_price":"75.50"}],"seller_id":1}`)

		payloads, err := readPayloads(path)
		require.NoError(t, err)
		require.Len(t, payloads, 1)
		assert.Equal(t, "ext-1", payloads[0].ExternalID)
		assert.Equal(t, int64(1), payloads[0].SellerID)
		require.Len(t, payloads[0].Items, 1)
		assert.Equal(t, "75.5", payloads[0].Items[0].UnitPrice.Decimal.String())
	})

	t.Run("yaml list", func(t *testing.T) {
		path := writeFile(t, dir, "many.yaml", `
- external_id: ext-1
  client:
    name: Madeireira Silva
    document: "12.345.678/0001-90"
  seller_id: 2
  items:
    - sku: MAD-01
      name: Tábua
      quantity: 3
      unit_price: 10.25
  order_meta:
    number: "4512"
    seller_name: Ana
    discount: 5
- external_id: ext-2
  client:
    name: Serraria Souza
  items: []
`)

		payloads, err := readPayloads(path)
		require.NoError(t, err)
		require.Len(t, payloads, 2)
		assert.Equal(t, "12.345.678/0001-90", payloads[0].Client.Document)
		assert.Equal(t, 3, payloads[0].Items[0].Quantity)
		assert.Equal(t, "10.25", payloads[0].Items[0].UnitPrice.Decimal.String())
		require.NotNil(t, payloads[0].OrderMeta)
		assert.Equal(t, "4512", payloads[0].OrderMeta.Number)
		assert.Equal(t, "5", payloads[0].OrderMeta.Discount.Decimal.String())
		assert.Equal(t, "ext-2", payloads[1].ExternalID)
		assert.Nil(t, payloads[1].OrderMeta)
	})

	t.Run("missing external id", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `[{"client":{"name":"X"}}]`)
		_, err := readPayloads(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing external_id")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := readPayloads(writeFile(t, dir, "empty.json", "  \n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readPayloads(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_MigrateImportHistory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	dsn := "file:" + filepath.Join(dir, "cli.db") + "?_busy_timeout=5000"

	out, err := execute(t, "migrate", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date")

	payloads := writeFile(t, dir, "orders.json", `[
		{"external_id":"ext-1","client":{"name":"Madeireira Silva"},"items":[{"sku":"MAD-01","name":"Tábua","quantity":2}]},
		{"external_id":"ext-2","client":{"name":"Serraria Souza"},"items":[{"sku":"MAD-02","name":"Viga","quantity":1}]}
	]`)
	out, err = execute(t, "import", payloads, "--no-progress", "--dsn", dsn)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "ext-1", fields[0])
	assert.Equal(t, "pendente_simulacao", fields[2])

	out, err = execute(t, "history", fields[1], "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "status: pendente_simulacao")
	assert.Contains(t, out, "pendente_simulacao")
}

func TestCLI_HistoryUnknownProposal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	dsn := "file:" + filepath.Join(dir, "cli.db") + "?_busy_timeout=5000"

	_, err := execute(t, "history", "missing", "--dsn", dsn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proposal not found")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
