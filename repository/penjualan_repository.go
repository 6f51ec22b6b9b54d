package repository

import (
	"github.com/bosscan/ginastel/config"
	"github.com/bosscan/ginastel/models"
)

// SalesLedger adalah store ledger penjualan: satu blob, urutan terbaru di
// depan, ditimpa utuh setiap checkout sukses. Hanya checkout yang menulis;
// report hanya membaca.
type SalesLedger interface {
	Load() ([]models.SaleRecord, error)
	Save([]models.SaleRecord) error
}

// FileSalesLedger menyimpan ledger ke file JSON lokal. Tanpa locking antar
// proses: dua proses pada store yang sama saling menimpa (last-write-wins),
// sesuai lingkup satu outlet satu kasir.
type FileSalesLedger struct {
	Path string
}

// NewSalesLedger memakai path store dari config.
func NewSalesLedger() *FileSalesLedger {
	return &FileSalesLedger{Path: config.SalesStorePath}
}

func (l *FileSalesLedger) Load() ([]models.SaleRecord, error) {
	var sales []models.SaleRecord
	if err := loadBlob(l.Path, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (l *FileSalesLedger) Save(sales []models.SaleRecord) error {
	if sales == nil {
		sales = []models.SaleRecord{}
	}
	return saveBlob(l.Path, sales)
}
