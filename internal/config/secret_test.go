package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSecretFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSecretFile(t *testing.T) {
	path := writeSecretFile(t, `{"PRIVATE_KEY_HEX": "0xdeadbeef", "ACCOUNT_ID": "123456789"}`)

	s, err := LoadSecretFile(path)
	require.NoError(t, err)
	require.Equal(t, "123456789", s.AccountID)
	// 0x prefix is stripped on load
	require.Equal(t, "deadbeef", s.PrivateKeyHex)
}

func TestLoadSecretFileNoPrefix(t *testing.T) {
	path := writeSecretFile(t, `{"PRIVATE_KEY_HEX": "deadbeef", "ACCOUNT_ID": "1"}`)

	s, err := LoadSecretFile(path)
	require.NoError(t, err)
	require.Equal(t, "deadbeef", s.PrivateKeyHex)
}

func TestLoadSecretFileMissingAccountID(t *testing.T) {
	path := writeSecretFile(t, `{"PRIVATE_KEY_HEX": "deadbeef"}`)

	_, err := LoadSecretFile(path)
	require.ErrorContains(t, err, "ACCOUNT_ID")
}

func TestLoadSecretFileMissingPrivateKey(t *testing.T) {
	path := writeSecretFile(t, `{"ACCOUNT_ID": "1"}`)

	_, err := LoadSecretFile(path)
	require.ErrorContains(t, err, "PRIVATE_KEY_HEX")
}

func TestLoadSecretFileInvalidHex(t *testing.T) {
	path := writeSecretFile(t, `{"PRIVATE_KEY_HEX": "not-hex", "ACCOUNT_ID": "1"}`)

	_, err := LoadSecretFile(path)
	require.ErrorContains(t, err, "not valid hex")
}

func TestLoadSecretFileEmpty(t *testing.T) {
	path := writeSecretFile(t, "")

	_, err := LoadSecretFile(path)
	require.ErrorContains(t, err, "empty")
}

func TestLoadSecretFileNotExist(t *testing.T) {
	_, err := LoadSecretFile(filepath.Join(t.TempDir(), "missing.json"))
	require.True(t, os.IsNotExist(err))
}

func TestLoadSecretFileWithBOM(t *testing.T) {
	path := writeSecretFile(t, "\xEF\xBB\xBF"+`{"PRIVATE_KEY_HEX": "deadbeef", "ACCOUNT_ID": "42"}`)

	s, err := LoadSecretFile(path)
	require.NoError(t, err)
	require.Equal(t, "42", s.AccountID)
}

func TestInitSecretFromFile(t *testing.T) {
	path := writeSecretFile(t, `{"PRIVATE_KEY_HEX": "0xabc123", "ACCOUNT_ID": "7"}`)
	t.Setenv("SECRET_FILE_PATH", path)
	require.NoError(t, Init())

	require.NoError(t, InitSecret())
	require.Equal(t, "7", GetAccountID())
	require.Equal(t, "abc123", GetPrivateKeyHex())
}

func TestConfigDefaults(t *testing.T) {
	require.NoError(t, Init())
	require.Equal(t, "8080", GetPort())
	require.Equal(t, "https://pro.edgex.exchange", GetEdgeXBaseURL())
	require.Equal(t, "secret/secret.json", GetSecretFilePath())
	require.Equal(t, 3, GetMaxRetries())
}
