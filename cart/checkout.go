package cart

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bosscan/ginastel/models"
	"github.com/bosscan/ginastel/pricing"
)

// CheckoutRequest adalah parameter pembayaran satu transaksi.
type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod
	CashGiven     *int
	QrisAmount    *int
	QrisProof     string
	QrisNote      string
	StaffNama     string
}

// CheckoutResult: Sale nil berarti validasi pembayaran gagal (uang kurang);
// Change negatif menunjukkan kekurangannya dan keranjang tidak disentuh.
// Warning terisi bila transaksi sukses tapi gagal dipersist ke store.
type CheckoutResult struct {
	Sale    *models.SaleRecord
	Change  int
	Warning string
}

// Checkout menjalankan transaksi: harga dihitung ulang defensif dengan promo
// aktif, gross/net dihitung, kecukupan tunai divalidasi, lalu SaleRecord
// dibuat, ditaruh di depan ledger, dipersist, dan keranjang dikosongkan.
//
// Hanya CASH yang punya gerbang kecukupan nominal. QRIS menerima nominal
// berapa pun (default netTotal); bukti bayar diverifikasi di lapisan UI.
func (c *Cart) Checkout(req CheckoutRequest) CheckoutResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	applied := pricing.ApplyPromotion(c.items, c.promo)

	grossTotal := 0
	netTotal := 0
	for _, it := range applied {
		grossTotal += it.Produk.HargaDasar * it.Jumlah
		netTotal += it.HargaSatuan * it.Jumlah
	}

	cashGiven := 0
	if req.CashGiven != nil {
		cashGiven = *req.CashGiven
	}

	change := 0
	if req.PaymentMethod == models.PaymentCash {
		change = cashGiven - netTotal
		if change < 0 {
			// Pembayaran kurang: tanpa record, tanpa mutasi state.
			return CheckoutResult{Sale: nil, Change: change}
		}
	}

	sale := models.SaleRecord{
		ID:            uuid.NewString(),
		Timestamp:     time.Now(),
		Items:         make([]models.SaleRecordItem, 0, len(applied)),
		Promotion:     c.promo,
		GrossTotal:    grossTotal,
		NetTotal:      netTotal,
		PaymentMethod: req.PaymentMethod,
		StaffNama:     req.StaffNama,
	}
	for _, it := range applied {
		sale.Items = append(sale.Items, models.SaleRecordItem{
			ProdukID: it.Produk.ID,
			Nama:     it.Produk.Nama,
			Jumlah:   it.Jumlah,
			Harga:    it.HargaSatuan,
			Total:    it.HargaSatuan * it.Jumlah,
			Gratis:   it.Gratis,
		})
	}

	switch req.PaymentMethod {
	case models.PaymentCash:
		kembalian := change
		sale.CashGiven = &cashGiven
		sale.Change = &kembalian
	case models.PaymentQRIS:
		amount := netTotal
		if req.QrisAmount != nil {
			amount = *req.QrisAmount
		}
		sale.QrisAmount = &amount
		sale.QrisProof = req.QrisProof
		sale.QrisNote = req.QrisNote
	}

	c.sales = append([]models.SaleRecord{sale}, c.sales...)

	warning := ""
	if err := c.ledger.Save(c.sales); err != nil {
		// Transaksi tetap dianggap selesai agar kasir tidak kehilangan
		// penjualan berjalan; durabilitas tidak terjamin sampai write
		// berikutnya sukses.
		log.Printf("⚠️ Gagal menyimpan ledger penjualan (kemungkinan bukti bayar terlalu besar): %v", err)
		warning = "Transaksi tercatat, tapi gagal disimpan ke penyimpanan lokal. Data bisa hilang saat aplikasi dimuat ulang."
	}

	c.clearLocked()
	return CheckoutResult{Sale: &sale, Change: change, Warning: warning}
}
