package config

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Secret holds the account credentials read from the secret file.
// The file is a flat JSON object with exactly these two keys.
type Secret struct {
	PrivateKeyHex string `json:"PRIVATE_KEY_HEX"`
	AccountID     string `json:"ACCOUNT_ID"`
}

// secret is the global credentials instance
var secret *Secret

// InitSecret loads credentials from the configured secret file.
// If the file does not exist and stdin is a terminal, the user is
// prompted for the two values instead (private key without echo).
func InitSecret() error {
	path := GetSecretFilePath()

	s, err := LoadSecretFile(path)
	if err == nil {
		secret = s
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	s, promptErr := PromptForSecret()
	if promptErr != nil {
		return fmt.Errorf("secret file %s not found and prompt failed: %w", path, promptErr)
	}
	secret = s
	return nil
}

// GetSecret returns the global credentials instance.
// Panics if InitSecret() was not called.
func GetSecret() *Secret {
	if secret == nil {
		panic("secret not initialized, call InitSecret() first")
	}
	return secret
}

// GetAccountID returns the EdgeX account id from the secret file
func GetAccountID() string {
	return GetSecret().AccountID
}

// GetPrivateKeyHex returns the hex-encoded Stark private key (no 0x prefix)
func GetPrivateKeyHex() string {
	return GetSecret().PrivateKeyHex
}

// LoadSecretFile reads and validates the secret file at path.
// Both keys must be present and non-empty; a 0x prefix on the
// private key is stripped.
func LoadSecretFile(path string) (*Secret, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to stat secret file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return nil, errors.New("secret file is empty")
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var s Secret
	if err := json.Unmarshal(fileData, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secret file: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate checks the two-field invariant and normalizes the private key.
func (s *Secret) validate() error {
	if s.AccountID == "" {
		return errors.New("ACCOUNT_ID is missing or empty")
	}
	if s.PrivateKeyHex == "" {
		return errors.New("PRIVATE_KEY_HEX is missing or empty")
	}

	// Strip 0x prefix if present
	s.PrivateKeyHex = strings.TrimPrefix(strings.TrimPrefix(s.PrivateKeyHex, "0x"), "0X")

	if _, err := hex.DecodeString(strings.TrimSpace(s.PrivateKeyHex)); err != nil {
		return fmt.Errorf("PRIVATE_KEY_HEX is not valid hex: %w", err)
	}
	return nil
}

// PromptForSecret prompts the user for credentials in the terminal.
// The private key is read without echoing (hidden input).
// Call this at startup before any requests are sent.
func PromptForSecret() (*Secret, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: create the secret file or run interactively")
	}

	fmt.Fprint(os.Stderr, "Enter account id: ")
	reader := bufio.NewReader(os.Stdin)
	accountID, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read account id: %w", err)
	}

	fmt.Fprint(os.Stderr, "Enter private key (hex): ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	s := &Secret{
		AccountID:     strings.TrimSpace(accountID),
		PrivateKeyHex: strings.TrimSpace(string(raw)),
	}
	clear(raw)

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}
