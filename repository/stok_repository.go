package repository

import (
	"github.com/bosscan/ginastel/config"
	"github.com/bosscan/ginastel/data"
	"github.com/bosscan/ginastel/models"
)

// StokStore adalah penghitung stok manual, terpisah total dari keranjang
// dan checkout.
type StokStore struct {
	Path string
}

func NewStokStore() *StokStore {
	return &StokStore{Path: config.StokStorePath}
}

// DefaultStok menginisialisasi semua produk berharga dengan kuantitas 0.
// Item harga 0 (pencatatan gelas rusak) ikut lewat katalog tapi tidak masuk
// default stok.
func DefaultStok() []models.StokItem {
	items := make([]models.StokItem, 0, len(data.Products))
	for _, p := range data.Products {
		if p.HargaDasar <= 0 {
			continue
		}
		items = append(items, models.StokItem{ProdukID: p.ID, Nama: p.Nama})
	}
	return items
}

// Load mengembalikan isi store, atau default bila store belum pernah
// disimpan.
func (s *StokStore) Load() ([]models.StokItem, error) {
	var items []models.StokItem
	if err := loadBlob(s.Path, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = DefaultStok()
	}
	return items, nil
}

func (s *StokStore) Save(items []models.StokItem) error {
	if items == nil {
		items = []models.StokItem{}
	}
	return saveBlob(s.Path, items)
}

// SetQuantity menetapkan kuantitas untuk produk yang cocok dan menyimpan
// store utuh.
func (s *StokStore) SetQuantity(produkID string, jumlah int) ([]models.StokItem, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProdukID == produkID {
			items[i].Jumlah = jumlah
		}
	}
	if err := s.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Adjust menggeser kuantitas dengan delta, dijepit di nol.
func (s *StokStore) Adjust(produkID string, delta int) ([]models.StokItem, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProdukID == produkID {
			next := items[i].Jumlah + delta
			if next < 0 {
				next = 0
			}
			items[i].Jumlah = next
		}
	}
	if err := s.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Reset mengembalikan store ke default katalog (semua kuantitas 0).
func (s *StokStore) Reset() ([]models.StokItem, error) {
	items := DefaultStok()
	if err := s.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}
