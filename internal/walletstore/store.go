// Package walletstore keeps named signing keys on disk, encrypted with the
// go-ethereum web3 secret-storage format, plus light per-wallet usage stats.
package walletstore

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// Record is one stored wallet. The private key lives only inside the
// encrypted keystore blob.
type Record struct {
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Keystore  json.RawMessage `json:"keystore"`
	CreatedAt time.Time       `json:"created_at"`
	LastUsed  *time.Time      `json:"last_used,omitempty"`

	TotalAttempts int `json:"total_attempts"`
	Successful    int `json:"successful"`
	Failed        int `json:"failed"`
}

// SuccessRate is a display helper, 0..100.
func (r Record) SuccessRate() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.Successful) / float64(r.TotalAttempts) * 100
}

type Store struct {
	dir     string
	scryptN int
	scryptP int
}

// Open ensures the wallet directory exists. Keys are encrypted with the
// standard scrypt parameters.
func Open(dir string) (*Store, error) {
	return open(dir, keystore.StandardScryptN, keystore.StandardScryptP)
}

// OpenLight uses the light scrypt parameters; for tests and throwaway keys.
func OpenLight(dir string) (*Store, error) {
	return open(dir, keystore.LightScryptN, keystore.LightScryptP)
}

func open(dir string, scryptN, scryptP int) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("empty wallet dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create wallet dir: %w", err)
	}
	return &Store{dir: dir, scryptN: scryptN, scryptP: scryptP}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || name != strings.TrimSpace(name) {
		return fmt.Errorf("bad wallet name %q", name)
	}
	return nil
}

// Add encrypts pkHex under passphrase and writes a new record.
// Refuses to overwrite an existing wallet.
func (s *Store) Add(name, pkHex, passphrase string) (Record, error) {
	if err := validName(name); err != nil {
		return Record{}, err
	}
	if _, err := os.Stat(s.path(name)); err == nil {
		return Record{}, fmt.Errorf("wallet %q already exists", name)
	}
	prv, err := gethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(pkHex), "0x"))
	if err != nil {
		return Record{}, fmt.Errorf("bad private key: %w", err)
	}
	key := &keystore.Key{
		Id:         uuid.New(),
		Address:    gethcrypto.PubkeyToAddress(prv.PublicKey),
		PrivateKey: prv,
	}
	blob, err := keystore.EncryptKey(key, passphrase, s.scryptN, s.scryptP)
	if err != nil {
		return Record{}, fmt.Errorf("encrypt key: %w", err)
	}
	rec := Record{
		Name:      name,
		Address:   key.Address.Hex(),
		Keystore:  blob,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.write(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Get loads one record by name.
func (s *Store) Get(name string) (Record, error) {
	if err := validName(name); err != nil {
		return Record{}, err
	}
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return Record{}, fmt.Errorf("wallet %q: %w", name, err)
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, fmt.Errorf("wallet %q: bad record: %w", name, err)
	}
	return rec, nil
}

// PrivateKey decrypts the stored key.
func (s *Store) PrivateKey(name, passphrase string) (*ecdsa.PrivateKey, error) {
	rec, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(rec.Keystore, passphrase)
	if err != nil {
		return nil, fmt.Errorf("wallet %q: decrypt: %w", name, err)
	}
	return key.PrivateKey, nil
}

// List returns all records sorted by name.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := s.Get(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue // skip foreign files
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Remove deletes a wallet file.
func (s *Store) Remove(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("wallet %q: %w", name, err)
	}
	return nil
}

// RecordOutcome updates usage stats after a run.
func (s *Store) RecordOutcome(name string, success bool) error {
	rec, err := s.Get(name)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	rec.LastUsed = &now
	rec.TotalAttempts++
	if success {
		rec.Successful++
	} else {
		rec.Failed++
	}
	return s.write(rec)
}

func (s *Store) write(rec Record) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(rec.Name), b, 0o600)
}
