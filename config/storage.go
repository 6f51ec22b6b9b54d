package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Path file store. Layout mengikuti penyimpanan lama di browser:
// satu blob per store, ditimpa utuh setiap kali disimpan.
var (
	DataDir        string
	SalesStorePath string
	StokStorePath  string
)

// InitStorage menyiapkan direktori data lokal dan path semua store.
// Gagal di sini berarti gagal total saat startup, bukan di tengah transaksi.
func InitStorage() {
	DataDir = os.Getenv("DATA_DIR")
	if DataDir == "" {
		DataDir = "data_store"
	}

	if err := os.MkdirAll(DataDir, 0o755); err != nil {
		log.Fatal("❌ Gagal menyiapkan direktori data:", err)
	}

	SalesStorePath = filepath.Join(DataDir, "salesRecords.json")
	StokStorePath = filepath.Join(DataDir, "stockItems.json")

	fmt.Println("✅ DATA_DIR:", DataDir)
}
