package models

import "time"

// PaymentMethod: CASH atau QRIS.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentQRIS PaymentMethod = "QRIS"
)

// SaleRecordItem adalah snapshot satu baris keranjang pada saat checkout.
type SaleRecordItem struct {
	ProdukID string `json:"productId"`
	Nama     string `json:"name"`
	Jumlah   int    `json:"quantity"`
	Harga    int    `json:"unitPrice"`
	Total    int    `json:"total"`
	Gratis   bool   `json:"isFree,omitempty"`
}

// SaleRecord adalah entri ledger penjualan: dibuat sekali oleh checkout yang
// sukses, tidak pernah diubah atau dihapus setelahnya. GrossTotal memakai
// harga dasar (abaikan promo) sebagai baseline analisa; NetTotal adalah
// nominal yang benar-benar ditagih.
type SaleRecord struct {
	ID            string           `json:"id"`
	Timestamp     time.Time        `json:"timestamp"`
	Items         []SaleRecordItem `json:"items"`
	Promotion     PromotionType    `json:"promotion"`
	GrossTotal    int              `json:"grossTotal"`
	NetTotal      int              `json:"netTotal"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`

	// Khusus CASH
	CashGiven *int `json:"cashGiven,omitempty"`
	Change    *int `json:"change,omitempty"`

	// Khusus QRIS; QrisProof adalah data URI bukti bayar, diperlakukan
	// sebagai blob buram tanpa parsing.
	QrisAmount *int   `json:"qrisAmount,omitempty"`
	QrisProof  string `json:"qrisProof,omitempty"`
	QrisNote   string `json:"qrisNote,omitempty"`

	StaffNama string `json:"staffName,omitempty"`
}
