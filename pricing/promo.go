// Package pricing berisi mesin harga keranjang: fungsi murni tanpa side
// effect yang memetakan baris keranjang + promo aktif menjadi harga satuan.
package pricing

import (
	"math"

	"github.com/bosscan/ginastel/models"
)

// Totals adalah agregat keranjang setelah harga diterapkan.
type Totals struct {
	Subtotal      int `json:"subtotal"`
	TotalQuantity int `json:"totalQuantity"`
}

// ApplyPromotion menghitung ulang HargaSatuan setiap baris sesuai promo.
// Slice input tidak diubah; hasilnya slice baru dengan panjang dan urutan
// sama, semua field lain dipertahankan. Deterministik dan idempoten:
// menerapkan promo yang sama dua kali memberi hasil identik.
func ApplyPromotion(items []models.CartItem, promo models.PromotionType) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		switch promo {
		case models.PromoAll3000:
			out[i].HargaSatuan = 3000
		case models.PromoHalfPrice:
			out[i].HargaSatuan = roundHalf(out[i].Produk.HargaDasar)
		case models.PromoFreeItems:
			if out[i].Gratis {
				out[i].HargaSatuan = 0
			} else {
				out[i].HargaSatuan = out[i].Produk.HargaDasar
			}
		default:
			out[i].HargaSatuan = out[i].Produk.HargaDasar
		}
	}
	return out
}

// roundHalf membulatkan setengah harga ke rupiah terdekat, seri dibulatkan
// menjauh dari nol.
func roundHalf(hargaDasar int) int {
	return int(math.Round(float64(hargaDasar) / 2))
}

// CalculateTotals menjumlahkan subtotal (HargaSatuan × Jumlah) dan total
// kuantitas. Tidak ada pembulatan tambahan di luar yang sudah dilakukan
// ApplyPromotion.
func CalculateTotals(items []models.CartItem) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.HargaSatuan * it.Jumlah
		t.TotalQuantity += it.Jumlah
	}
	return t
}
