package controllers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/bosscan/ginastel/cart"
	"github.com/bosscan/ginastel/models"
)

// LaporanController membaca ledger penjualan untuk report dan export. Report
// hanya membaca; satu-satunya penulis ledger adalah checkout.
type LaporanController struct {
	Cart *cart.Cart
}

func NewLaporanController(c *cart.Cart) *LaporanController {
	return &LaporanController{Cart: c}
}

// ProdukPenjualan adalah agregat penjualan berbayar per produk.
type ProdukPenjualan struct {
	ProdukID string `json:"productId"`
	Nama     string `json:"name"`
	Jumlah   int    `json:"qty"`
	Nominal  int    `json:"amount"`
}

// FreeItemCount adalah agregat item gratis per produk, dipisah dari
// pendapatan.
type FreeItemCount struct {
	ProdukID string `json:"productId"`
	Nama     string `json:"name"`
	Jumlah   int    `json:"qty"`
}

// FilterSales menyaring ledger: tanggal lokal (YYYY-MM-DD), metode
// pembayaran ("ALL" melewati semuanya), dan substring nama item
// (case-insensitive).
func FilterSales(sales []models.SaleRecord, tanggal, metode, cari string) []models.SaleRecord {
	cari = strings.ToLower(cari)
	out := make([]models.SaleRecord, 0, len(sales))
	for _, s := range sales {
		if tanggal != "" && s.Timestamp.Local().Format("2006-01-02") != tanggal {
			continue
		}
		if metode != "" && metode != "ALL" && string(s.PaymentMethod) != metode {
			continue
		}
		if cari != "" {
			found := false
			for _, it := range s.Items {
				if strings.Contains(strings.ToLower(it.Nama), cari) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// AggregateProductSales menjumlahkan kuantitas dan nominal per produk untuk
// baris berbayar saja; baris gratis tidak pernah menyumbang pendapatan.
// Urutan: kuantitas menurun, lalu nama.
func AggregateProductSales(sales []models.SaleRecord) []ProdukPenjualan {
	agg := map[string]*ProdukPenjualan{}
	for _, s := range sales {
		for _, it := range s.Items {
			if it.Gratis {
				continue
			}
			e, ok := agg[it.ProdukID]
			if !ok {
				e = &ProdukPenjualan{ProdukID: it.ProdukID, Nama: it.Nama}
				agg[it.ProdukID] = e
			}
			e.Jumlah += it.Jumlah
			e.Nominal += it.Total
		}
	}
	out := make([]ProdukPenjualan, 0, len(agg))
	for _, e := range agg {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Jumlah != out[j].Jumlah {
			return out[i].Jumlah > out[j].Jumlah
		}
		return out[i].Nama < out[j].Nama
	})
	return out
}

// AggregateFreeItems menghitung item gratis per produk.
func AggregateFreeItems(sales []models.SaleRecord) []FreeItemCount {
	agg := map[string]*FreeItemCount{}
	for _, s := range sales {
		for _, it := range s.Items {
			if !it.Gratis {
				continue
			}
			e, ok := agg[it.ProdukID]
			if !ok {
				e = &FreeItemCount{ProdukID: it.ProdukID, Nama: it.Nama}
				agg[it.ProdukID] = e
			}
			e.Jumlah += it.Jumlah
		}
	}
	out := make([]FreeItemCount, 0, len(agg))
	for _, e := range agg {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Jumlah != out[j].Jumlah {
			return out[i].Jumlah > out[j].Jumlah
		}
		return out[i].Nama < out[j].Nama
	})
	return out
}

func formatItemsCell(items []models.SaleRecordItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		desc := fmt.Sprintf("%s x%d", it.Nama, it.Jumlah)
		if it.Gratis {
			desc += " (FREE)"
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, "; ")
}

// csvField membungkus nilai dengan kutip ganda; kutip di dalam nilai
// di-escape dengan digandakan.
func csvField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// BuildCSV menyusun report CSV: satu baris per penjualan, semua field
// dibungkus kutip. Kolom kembalian kosong untuk non-CASH.
func BuildCSV(sales []models.SaleRecord) []byte {
	headers := []string{"Tanggal", "Metode Pembayaran", "Promo", "Metode (Badge)", "Items", "Gross", "Net Total", "Kembalian"}
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, s := range sales {
		kembalian := ""
		if s.Change != nil {
			kembalian = fmt.Sprintf("%d", *s.Change)
		}
		fields := []string{
			s.Timestamp.Local().Format("02-01-2006 15:04"),
			string(s.PaymentMethod),
			models.PromoLabel(s.Promotion),
			string(s.PaymentMethod),
			formatItemsCell(s.Items),
			fmt.Sprintf("%d", s.GrossTotal),
			fmt.Sprintf("%d", s.NetTotal),
			kembalian,
		}
		b.WriteString("\n")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(csvField(f))
		}
	}
	return []byte(b.String())
}

func (lc *LaporanController) filteredFromQuery(c *fiber.Ctx) ([]models.SaleRecord, error) {
	tanggal := c.Query("tanggal", "")
	if tanggal != "" {
		if _, err := time.ParseInLocation("2006-01-02", tanggal, time.Local); err != nil {
			return nil, fmt.Errorf("format tanggal harus YYYY-MM-DD")
		}
	}
	metode := c.Query("metode", "ALL")
	cari := c.Query("cari", "")
	return FilterSales(lc.Cart.Sales(), tanggal, metode, cari), nil
}

// GetPenjualan godoc
//
//	@Summary		Sales report
//	@Description	Daftar penjualan terfilter plus ringkasan dan agregat per produk
//	@Tags			Laporan
//	@Security		BearerAuth
//	@Produce		json
//	@Param			tanggal	query		string	false	"Filter tanggal lokal YYYY-MM-DD"
//	@Param			metode	query		string	false	"ALL | CASH | QRIS"
//	@Param			cari	query		string	false	"Substring nama item"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]interface{}
//	@Router			/laporan/penjualan [get]
func (lc *LaporanController) GetPenjualan(c *fiber.Ctx) error {
	filtered, err := lc.filteredFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	totalPendapatan := 0
	totalGross := 0
	for _, s := range filtered {
		totalPendapatan += s.NetTotal
		totalGross += s.GrossTotal
	}

	return c.JSON(fiber.Map{
		"sales": filtered,
		"summary": fiber.Map{
			"totalTransaksi":  len(filtered),
			"totalPendapatan": totalPendapatan,
			"totalGross":      totalGross,
		},
		"productSales": AggregateProductSales(filtered),
		"freeItems":    AggregateFreeItems(filtered),
	})
}

// ExportCSV godoc
//
//	@Summary		Export sales CSV
//	@Description	Export penjualan terfilter sebagai CSV (dipanggil via window.open, token boleh lewat query)
//	@Tags			Laporan
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Param			tanggal	query	string	false	"Filter tanggal lokal YYYY-MM-DD"
//	@Param			metode	query	string	false	"ALL | CASH | QRIS"
//	@Param			cari	query	string	false	"Substring nama item"
//	@Success		200	{string}	string
//	@Router			/laporan/export/csv [get]
func (lc *LaporanController) ExportCSV(c *fiber.Ctx) error {
	filtered, err := lc.filteredFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	datePart := c.Query("tanggal", "")
	if datePart == "" {
		datePart = time.Now().Format("2006-01-02")
	}
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.csv", datePart))
	return c.Send(BuildCSV(filtered))
}

// ExportExcel godoc
//
//	@Summary		Export sales Excel
//	@Description	Export penjualan terfilter sebagai XLSX: sheet transaksi + sheet pendapatan per produk
//	@Tags			Laporan
//	@Security		BearerAuth
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			tanggal	query	string	false	"Filter tanggal lokal YYYY-MM-DD"
//	@Param			metode	query	string	false	"ALL | CASH | QRIS"
//	@Param			cari	query	string	false	"Substring nama item"
//	@Success		200	{string}	string
//	@Router			/laporan/export/excel [get]
func (lc *LaporanController) ExportExcel(c *fiber.Ctx) error {
	filtered, err := lc.filteredFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	sheetTrx := "Transaksi"
	f.SetSheetName("Sheet1", sheetTrx)
	writeHeaders(sheetTrx, []string{
		"Tanggal",
		"Metode Pembayaran",
		"Promo",
		"Items",
		"Gross",
		"Net Total",
		"Kembalian",
	})

	row := 2
	totalGross := 0
	totalNet := 0
	for _, s := range filtered {
		kembalian := interface{}("")
		if s.Change != nil {
			kembalian = *s.Change
		}
		values := []interface{}{
			s.Timestamp.Local().Format("02-01-2006 15:04"),
			string(s.PaymentMethod),
			models.PromoLabel(s.Promotion),
			formatItemsCell(s.Items),
			s.GrossTotal,
			s.NetTotal,
			kembalian,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetTrx, cell, v)
		}
		totalGross += s.GrossTotal
		totalNet += s.NetTotal
		row++
	}
	summaryRow := row + 1
	f.SetCellValue(sheetTrx, fmt.Sprintf("D%d", summaryRow), "TOTAL")
	f.SetCellValue(sheetTrx, fmt.Sprintf("E%d", summaryRow), totalGross)
	f.SetCellValue(sheetTrx, fmt.Sprintf("F%d", summaryRow), totalNet)

	sheetProduk := "Pendapatan Produk"
	f.NewSheet(sheetProduk)
	writeHeaders(sheetProduk, []string{"Nama Produk", "Jumlah Terjual", "Total Nominal", "Jumlah Free"})

	freeByProduk := map[string]int{}
	for _, fi := range AggregateFreeItems(filtered) {
		freeByProduk[fi.ProdukID] = fi.Jumlah
	}
	rowP := 2
	for _, p := range AggregateProductSales(filtered) {
		values := []interface{}{p.Nama, p.Jumlah, p.Nominal, freeByProduk[p.ProdukID]}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowP)
			f.SetCellValue(sheetProduk, cell, v)
		}
		delete(freeByProduk, p.ProdukID)
		rowP++
	}
	// produk yang hanya pernah keluar sebagai item gratis
	for _, fi := range AggregateFreeItems(filtered) {
		if jumlah, ok := freeByProduk[fi.ProdukID]; ok {
			values := []interface{}{fi.Nama, 0, 0, jumlah}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowP)
				f.SetCellValue(sheetProduk, cell, v)
			}
			rowP++
		}
	}

	f.AutoFilter(sheetTrx, "A1:G1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheetTrx, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})

	f.SetActiveSheet(0)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename=laporan_ginastel.xlsx")
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Send(buf.Bytes())
}
