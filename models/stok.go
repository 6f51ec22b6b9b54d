package models

// StokItem adalah penghitung stok manual per produk. Store ini berdiri
// sendiri: checkout tidak pernah mengurangi stok.
type StokItem struct {
	ProdukID string `json:"productId"`
	Nama     string `json:"name"`
	Jumlah   int    `json:"quantity"`
}
