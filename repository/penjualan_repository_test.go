package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosscan/ginastel/models"
)

func TestSalesLedgerLoadMissingFile(t *testing.T) {
	l := &FileSalesLedger{Path: filepath.Join(t.TempDir(), "salesRecords.json")}
	sales, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSalesLedgerRoundTrip(t *testing.T) {
	l := &FileSalesLedger{Path: filepath.Join(t.TempDir(), "salesRecords.json")}

	cash := 10000
	change := 1000
	in := []models.SaleRecord{
		{
			ID:        "abc",
			Timestamp: time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local),
			Items: []models.SaleRecordItem{
				{ProdukID: "es_teh", Nama: "Es Teh", Jumlah: 2, Harga: 3000, Total: 6000},
			},
			Promotion:     models.PromoNone,
			GrossTotal:    6000,
			NetTotal:      6000,
			PaymentMethod: models.PaymentCash,
			CashGiven:     &cash,
			Change:        &change,
		},
	}
	require.NoError(t, l.Save(in))

	got, err := l.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in[0].ID, got[0].ID)
	assert.Equal(t, in[0].Items, got[0].Items)
	assert.Equal(t, cash, *got[0].CashGiven)
	assert.True(t, in[0].Timestamp.Equal(got[0].Timestamp))
}

func TestSalesLedgerOverwritesWholeBlob(t *testing.T) {
	l := &FileSalesLedger{Path: filepath.Join(t.TempDir(), "salesRecords.json")}
	require.NoError(t, l.Save([]models.SaleRecord{{ID: "satu"}, {ID: "dua"}}))
	require.NoError(t, l.Save([]models.SaleRecord{{ID: "tiga"}}))

	got, err := l.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tiga", got[0].ID)
}

func TestSalesLedgerCorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesRecords.json")
	require.NoError(t, os.WriteFile(path, []byte("{bukan json"), 0o644))

	l := &FileSalesLedger{Path: path}
	_, err := l.Load()
	assert.Error(t, err)
}

func TestStokStoreDefaultsAndClamp(t *testing.T) {
	s := &StokStore{Path: filepath.Join(t.TempDir(), "stockItems.json")}

	items, err := s.Load()
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.Zero(t, it.Jumlah)
		// item harga 0 tidak ikut default stok
		assert.NotEqual(t, "gelas_besar_rusak", it.ProdukID)
	}

	items, err = s.SetQuantity("es_teh", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, findStok(t, items, "es_teh"))

	items, err = s.Adjust("es_teh", -20)
	require.NoError(t, err)
	assert.Zero(t, findStok(t, items, "es_teh"))

	items, err = s.Adjust("es_teh", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, findStok(t, items, "es_teh"))

	items, err = s.Reset()
	require.NoError(t, err)
	assert.Zero(t, findStok(t, items, "es_teh"))
}

func findStok(t *testing.T, items []models.StokItem, produkID string) int {
	t.Helper()
	for _, it := range items {
		if it.ProdukID == produkID {
			return it.Jumlah
		}
	}
	t.Fatalf("produk %s tidak ada di stok", produkID)
	return 0
}

func TestSeedUsersAndPassword(t *testing.T) {
	require.NoError(t, SeedUsers())

	u, ok := FindUserByUsername("penjaga_outlet")
	require.True(t, ok)
	assert.Equal(t, models.RoleStaff, u.Role)
	assert.True(t, CheckPassword(u, "ginastel123"))
	assert.False(t, CheckPassword(u, "salah"))

	owner, ok := FindUserByUsername("owner_outlet")
	require.True(t, ok)
	assert.Equal(t, models.RoleOwner, owner.Role)

	_, ok = FindUserByUsername("tidak_ada")
	assert.False(t, ok)
}
