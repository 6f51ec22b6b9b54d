package models

// PromotionType adalah promo tunggal yang aktif untuk seluruh keranjang.
type PromotionType string

const (
	PromoNone      PromotionType = "NONE"
	PromoAll3000   PromotionType = "ALL_3000"
	PromoFreeItems PromotionType = "FREE_ITEMS"
	PromoHalfPrice PromotionType = "HALF_PRICE"
)

// ValidPromotion memeriksa apakah nilai promo dikenal.
func ValidPromotion(p PromotionType) bool {
	switch p {
	case PromoNone, PromoAll3000, PromoFreeItems, PromoHalfPrice:
		return true
	}
	return false
}

// PromoLabel adalah label tampilan promo untuk report dan export.
func PromoLabel(p PromotionType) string {
	switch p {
	case PromoAll3000:
		return "All 3000"
	case PromoFreeItems:
		return "Gratis Item"
	case PromoHalfPrice:
		return "Diskon 50%"
	default:
		return "Reguler"
	}
}

// CartItem adalah satu baris keranjang. Baris reguler dan baris gratis untuk
// produk yang sama adalah entri terpisah (kunci: id produk + flag gratis) dan
// tidak pernah digabung. HargaSatuan selalu dihitung ulang oleh pricing
// engine, tidak pernah diisi langsung oleh UI.
type CartItem struct {
	Produk      Produk `json:"product"`
	Jumlah      int    `json:"quantity"`
	HargaSatuan int    `json:"pricePerUnit"`
	Gratis      bool   `json:"isFree,omitempty"`
}
