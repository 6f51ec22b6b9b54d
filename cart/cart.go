// Package cart memegang state keranjang register tunggal dan mengeksekusi
// checkout menjadi entri ledger penjualan.
package cart

import (
	"sync"

	"github.com/bosscan/ginastel/models"
	"github.com/bosscan/ginastel/pricing"
	"github.com/bosscan/ginastel/repository"
)

// Cart adalah orkestrator transaksi berjalan: baris keranjang, promo aktif,
// dan ledger penjualan yang dimuat dari store saat startup. Semua mutasi
// diserialisasi lewat satu mutex; konsistensi antar proses tidak dijamin
// (last-write-wins di level file store).
type Cart struct {
	mu     sync.Mutex
	items  []models.CartItem
	promo  models.PromotionType
	sales  []models.SaleRecord
	ledger repository.SalesLedger
}

// New memuat ledger dari store. Store korup membuat startup gagal di sini,
// bukan di tengah transaksi.
func New(ledger repository.SalesLedger) (*Cart, error) {
	sales, err := ledger.Load()
	if err != nil {
		return nil, err
	}
	return &Cart{
		promo:  models.PromoNone,
		sales:  sales,
		ledger: ledger,
	}, nil
}

// AddProduct menambah 1 pada baris non-gratis produk tersebut, atau membuat
// baris baru dengan kuantitas 1.
func (c *Cart) AddProduct(p models.Produk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Produk.ID == p.ID && !c.items[i].Gratis {
			c.items[i].Jumlah++
			return
		}
	}
	c.items = append(c.items, models.CartItem{Produk: p, Jumlah: 1, HargaSatuan: p.HargaDasar})
}

// AddFreeProduct menambah baris gratis untuk produk. No-op kecuali promo
// FREE_ITEMS sedang aktif. Baris gratis dan baris reguler produk yang sama
// tidak pernah digabung.
func (c *Cart) AddFreeProduct(p models.Produk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.promo != models.PromoFreeItems {
		return
	}
	for i := range c.items {
		if c.items[i].Produk.ID == p.ID && c.items[i].Gratis {
			c.items[i].Jumlah++
			return
		}
	}
	c.items = append(c.items, models.CartItem{Produk: p, Jumlah: 1, HargaSatuan: 0, Gratis: true})
}

// UpdateQuantity menetapkan kuantitas untuk setiap baris dengan id produk
// tersebut, gratis maupun reguler. Tidak ada clamping di sini: pemanggil
// wajib mengirim kuantitas positif (untuk menghapus, pakai RemoveItem).
func (c *Cart) UpdateQuantity(produkID string, jumlah int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Produk.ID == produkID {
			c.items[i].Jumlah = jumlah
		}
	}
}

// RemoveItem menghapus semua baris dengan id produk tersebut, gratis maupun
// reguler.
func (c *Cart) RemoveItem(produkID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Produk.ID != produkID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// SetPromotion mengganti promo aktif dan langsung menghitung ulang harga
// semua baris. Flag gratis tidak dicabut oleh pergantian promo.
func (c *Cart) SetPromotion(p models.PromotionType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.promo = p
	c.items = pricing.ApplyPromotion(c.items, p)
}

// Clear mengosongkan keranjang dan mengembalikan promo ke NONE.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cart) clearLocked() {
	c.items = nil
	c.promo = models.PromoNone
}

// Items mengembalikan salinan baris keranjang saat ini.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Promotion mengembalikan promo aktif.
func (c *Cart) Promotion() models.PromotionType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.promo
}

// Totals menghitung agregat keranjang saat ini.
func (c *Cart) Totals() pricing.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.CalculateTotals(c.items)
}

// Sales mengembalikan salinan ledger, terbaru di depan. Termasuk transaksi
// yang gagal dipersist (lihat Checkout).
func (c *Cart) Sales() []models.SaleRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.SaleRecord, len(c.sales))
	copy(out, c.sales)
	return out
}
