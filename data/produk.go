package data

import "github.com/bosscan/ginastel/models"

// Products adalah daftar produk & harga dasar outlet (Rupiah). Urutan daftar
// ini adalah urutan tampil di UI.
var Products = []models.Produk{
	{ID: "es_teh", Nama: "Es Teh", HargaDasar: 3000, Image: "/images/es_teh.webp"},
	{ID: "teh_panas", Nama: "Teh Panas", HargaDasar: 3000, Image: "/images/teh_panas.webp"},
	{ID: "es_lemon_tea", Nama: "Es Lemon Tea", HargaDasar: 4000, Image: "/images/es_lemon_tea.webp"},
	{ID: "lemon_tea_panas", Nama: "Lemon Tea Panas", HargaDasar: 4000, Image: "/images/lemon_tea_panas.webp"},
	{ID: "es_sirup_prambos", Nama: "Es Sirup Prambos", HargaDasar: 5000, Image: "/images/es_sirup_prambos.webp"},
	{ID: "es_sirup_melon", Nama: "Es Sirup Melon", HargaDasar: 5000, Image: "/images/es_sirup_melon.webp"},
	{ID: "es_sirup_mangga", Nama: "Es Sirup Mangga", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_sirup_moka", Nama: "Es Sirup Moka", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_susu", Nama: "Es Teh Susu", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_jeruk", Nama: "Es Jeruk", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_coklat", Nama: "Es Teh Coklat", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_alpukat", Nama: "Es Teh Alpukat", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_durian", Nama: "Es Teh Durian", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_leci", Nama: "Es Teh Leci", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_taro", Nama: "Es Teh Taro", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_coffee_latte", Nama: "Es Teh Coffee Latte", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_strawberry", Nama: "Es Teh Strawberry", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_green_tea", Nama: "Es Teh Green Tea", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	{ID: "es_teh_permen_karet", Nama: "Es Teh Permen Karet", HargaDasar: 5000, Image: "/images/generic_5000.svg"},
	// Item khusus pencatatan gelas rusak: bukan untuk dijual (harga 0),
	// hanya muncul di stock report.
	{ID: "gelas_besar_rusak", Nama: "Gelas Besar Rusak", HargaDasar: 0},
	{ID: "gelas_kecil_rusak", Nama: "Gelas Kecil Rusak", HargaDasar: 0},
}

// ProductMap adalah lookup produk per ID.
var ProductMap = func() map[string]models.Produk {
	m := make(map[string]models.Produk, len(Products))
	for _, p := range Products {
		m[p.ID] = p
	}
	return m
}()

// FindProduct mengembalikan produk katalog berdasarkan ID.
func FindProduct(id string) (models.Produk, bool) {
	p, ok := ProductMap[id]
	return p, ok
}
