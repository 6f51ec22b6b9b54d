package models

// Produk adalah data referensi katalog: didefinisikan saat startup dan tidak
// pernah diubah selama aplikasi berjalan. Harga dalam Rupiah utuh.
type Produk struct {
	ID         string `json:"id"`
	Nama       string `json:"name"`
	HargaDasar int    `json:"basePrice"`
	Image      string `json:"image,omitempty"`
	Aktif      bool   `json:"active,omitempty"`
}
