// Package localstore is the fallback persistence adapter used when no remote
// provider is configured. It keeps the same four named collections the
// application has always used — products, requests, customers, invoices —
// each as a JSON-encoded list in its own file under the data directory, and
// generates identifiers client-side. Those ids are not valid remote ids and
// rows created here are tagged OriginLocal so they are never routed to the
// remote provider later.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"parnika-backend/internal/repository"
)

const (
	productsFile  = "products.json"
	requestsFile  = "requests.json"
	customersFile = "customers.json"
	invoicesFile  = "invoices.json"
)

type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStore opens (or creates) the data directory and returns the repository
// bundle backed by it.
func NewStore(dir string) (*repository.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}
	fs := &fileStore{dir: dir}
	return &repository.Store{
		Products:  &productRepository{fs: fs},
		Requests:  &requestRepository{fs: fs},
		Customers: &customerRepository{fs: fs},
		Invoices:  &invoiceRepository{fs: fs},
	}, nil
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// generateID produces a local-format identifier: base-36 unix millis plus a
// random suffix. Deliberately not a UUID.
func generateID() string {
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(suffix)
}

func read[T any](fs *fileStore, name string) ([]T, error) {
	raw, err := os.ReadFile(filepath.Join(fs.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return items, nil
}

func write[T any](fs *fileStore, name string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	path := filepath.Join(fs.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return os.Rename(tmp, path)
}

func sortByCreatedDesc[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
