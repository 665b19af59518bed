package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdidvp/taxkraft/internal/domain"
)

const ledgerFile = ".taxkraft/ledger/receipts.json"

// ledgerLocks serializes writers per ledger file, across FileLedger values.
var ledgerLocks sync.Map // path -> *sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := ledgerLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// FileLedger implements domain.ReceiptLedger using JSON file storage.
// Writes replace the file atomically, so readers never see a partial ledger.
type FileLedger struct{}

func New() *FileLedger {
	return &FileLedger{}
}

// Path returns the ledger location for projectPath.
func Path(projectPath string) string {
	return filepath.Join(projectPath, ledgerFile)
}

func (h *FileLedger) Save(projectPath string, receipt domain.Receipt) error {
	fp := Path(projectPath)
	mu := lockFor(fp)
	mu.Lock()
	defer mu.Unlock()

	receipts, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	receipts = append(receipts, receipt)

	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return err
	}

	return writeAtomic(fp, data)
}

// writeAtomic writes data to a temp file next to path and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".receipts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp ledger: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}

func (h *FileLedger) Load(projectPath string) ([]domain.Receipt, error) {
	data, err := os.ReadFile(Path(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var receipts []domain.Receipt
	if err := json.Unmarshal(data, &receipts); err != nil {
		return nil, err
	}

	return receipts, nil
}

// Clear removes the ledger file. A missing ledger is not an error.
func (h *FileLedger) Clear(projectPath string) error {
	fp := Path(projectPath)
	mu := lockFor(fp)
	mu.Lock()
	defer mu.Unlock()

	if err := os.Remove(fp); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
