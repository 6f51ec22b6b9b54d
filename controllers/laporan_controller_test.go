package controllers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosscan/ginastel/models"
)

func saleAt(ts time.Time, metode models.PaymentMethod, items ...models.SaleRecordItem) models.SaleRecord {
	net := 0
	for _, it := range items {
		net += it.Total
	}
	s := models.SaleRecord{
		ID:            "sale-" + ts.Format("150405"),
		Timestamp:     ts,
		Items:         items,
		Promotion:     models.PromoNone,
		NetTotal:      net,
		GrossTotal:    net,
		PaymentMethod: metode,
	}
	return s
}

var itemNames = map[string]string{
	"es_teh":   "Es Teh",
	"es_jeruk": "Es Jeruk",
}

func item(id string, jumlah, harga int, gratis bool) models.SaleRecordItem {
	return models.SaleRecordItem{
		ProdukID: id,
		Nama:     itemNames[id],
		Jumlah:   jumlah,
		Harga:    harga,
		Total:    harga * jumlah,
		Gratis:   gratis,
	}
}

func sampleSales() []models.SaleRecord {
	d1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)
	d2 := time.Date(2025, 3, 2, 11, 30, 0, 0, time.Local)
	return []models.SaleRecord{
		saleAt(d2, models.PaymentQRIS, item("es_jeruk", 1, 5000, false)),
		saleAt(d1, models.PaymentCash,
			item("es_teh", 2, 3000, false),
			item("es_teh", 1, 0, true),
		),
	}
}

func TestFilterSalesByDate(t *testing.T) {
	got := FilterSales(sampleSales(), "2025-03-01", "ALL", "")
	require.Len(t, got, 1)
	assert.Equal(t, models.PaymentCash, got[0].PaymentMethod)

	assert.Empty(t, FilterSales(sampleSales(), "2025-03-03", "ALL", ""))
}

func TestFilterSalesByPaymentAndSearch(t *testing.T) {
	got := FilterSales(sampleSales(), "", "QRIS", "")
	require.Len(t, got, 1)
	assert.Equal(t, models.PaymentQRIS, got[0].PaymentMethod)

	got = FilterSales(sampleSales(), "", "ALL", "jeruk")
	require.Len(t, got, 1)
	assert.Equal(t, "es_jeruk", got[0].Items[0].ProdukID)

	assert.Len(t, FilterSales(sampleSales(), "", "ALL", ""), 2)
}

func TestAggregateProductSalesExcludesFree(t *testing.T) {
	got := AggregateProductSales(sampleSales())
	require.Len(t, got, 2)
	// urut kuantitas menurun
	assert.Equal(t, "es_teh", got[0].ProdukID)
	assert.Equal(t, 2, got[0].Jumlah, "baris gratis tidak dihitung")
	assert.Equal(t, 6000, got[0].Nominal)
	assert.Equal(t, "es_jeruk", got[1].ProdukID)
	assert.Equal(t, 5000, got[1].Nominal)
}

func TestAggregateFreeItems(t *testing.T) {
	got := AggregateFreeItems(sampleSales())
	require.Len(t, got, 1)
	assert.Equal(t, "es_teh", got[0].ProdukID)
	assert.Equal(t, 1, got[0].Jumlah)
}

func TestBuildCSVShape(t *testing.T) {
	change := 1000
	sales := sampleSales()
	sales[1].Change = &change

	lines := strings.Split(string(BuildCSV(sales)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Tanggal,Metode Pembayaran,Promo,Metode (Badge),Items,Gross,Net Total,Kembalian", lines[0])

	// baris QRIS: kembalian kosong, semua field terbungkus kutip
	assert.True(t, strings.HasSuffix(lines[1], `,""`))
	assert.Contains(t, lines[1], `"QRIS","Reguler","QRIS"`)
	assert.Contains(t, lines[1], `"Es Jeruk x1"`)

	assert.Contains(t, lines[2], `"Es Teh x2; Es Teh x1 (FREE)"`)
	assert.Contains(t, lines[2], `"1000"`)
}

func TestBuildCSVEscapesQuotes(t *testing.T) {
	s := saleAt(time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local), models.PaymentCash,
		models.SaleRecordItem{ProdukID: "x", Nama: `Es "Spesial"`, Jumlah: 1, Harga: 1000, Total: 1000})
	out := string(BuildCSV([]models.SaleRecord{s}))
	assert.Contains(t, out, `"Es ""Spesial"" x1"`)
}
