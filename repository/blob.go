package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// loadBlob membaca satu store JSON utuh. File yang belum ada bukan error:
// out dibiarkan pada zero value (store kosong).
func loadBlob(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("gagal membaca store %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("store %s korup: %w", path, err)
	}
	return nil
}

// saveBlob menimpa store secara utuh dan atomik: tulis ke file sementara
// lalu rename. Tidak ada write multi-langkah; pembaca tidak pernah melihat
// blob setengah jadi.
func saveBlob(path string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("gagal serialize store %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".store-*")
	if err != nil {
		return fmt.Errorf("gagal menulis store %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("gagal menulis store %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("gagal menulis store %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("gagal menulis store %s: %w", path, err)
	}
	return nil
}
