package cart

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosscan/ginastel/models"
	"github.com/bosscan/ginastel/repository"
)

var (
	esTeh   = models.Produk{ID: "es_teh", Nama: "Es Teh", HargaDasar: 3000}
	esJeruk = models.Produk{ID: "es_jeruk", Nama: "Es Jeruk", HargaDasar: 5000}
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	ledger := &repository.FileSalesLedger{Path: filepath.Join(t.TempDir(), "salesRecords.json")}
	c, err := New(ledger)
	require.NoError(t, err)
	return c
}

func intPtr(v int) *int { return &v }

func TestAddProductMergesPaidLines(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)
	c.AddProduct(esTeh)
	c.AddProduct(esJeruk)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Jumlah)
	assert.Equal(t, 3000, items[0].HargaSatuan)
	assert.Equal(t, 1, items[1].Jumlah)
}

func TestAddFreeProductRequiresPromo(t *testing.T) {
	c := newTestCart(t)
	c.AddFreeProduct(esTeh)
	assert.Empty(t, c.Items(), "tanpa promo FREE_ITEMS harus no-op")

	c.SetPromotion(models.PromoFreeItems)
	c.AddProduct(esTeh)
	c.AddFreeProduct(esTeh)
	c.AddFreeProduct(esTeh)

	items := c.Items()
	require.Len(t, items, 2, "baris gratis dan reguler tidak boleh digabung")
	assert.False(t, items[0].Gratis)
	assert.Equal(t, 1, items[0].Jumlah)
	assert.True(t, items[1].Gratis)
	assert.Equal(t, 2, items[1].Jumlah)
	assert.Zero(t, items[1].HargaSatuan)
}

func TestUpdateQuantityAndRemoveMatchByProductID(t *testing.T) {
	c := newTestCart(t)
	c.SetPromotion(models.PromoFreeItems)
	c.AddProduct(esTeh)
	c.AddFreeProduct(esTeh)
	c.AddProduct(esJeruk)

	// kedua baris es_teh (gratis dan reguler) ikut ter-update
	c.UpdateQuantity("es_teh", 4)
	items := c.Items()
	assert.Equal(t, 4, items[0].Jumlah)
	assert.Equal(t, 4, items[1].Jumlah)
	assert.Equal(t, 1, items[2].Jumlah)

	c.RemoveItem("es_teh")
	items = c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "es_jeruk", items[0].Produk.ID)
}

func TestSetPromotionRepricesImmediately(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)
	c.AddProduct(esTeh)
	c.AddProduct(esJeruk)
	assert.Equal(t, 11000, c.Totals().Subtotal)

	c.SetPromotion(models.PromoAll3000)
	assert.Equal(t, 9000, c.Totals().Subtotal)
	assert.Equal(t, 3, c.Totals().TotalQuantity)

	c.SetPromotion(models.PromoHalfPrice)
	assert.Equal(t, 3000+2500, c.Totals().Subtotal)
}

func TestPromotionChangeKeepsFreeTags(t *testing.T) {
	c := newTestCart(t)
	c.SetPromotion(models.PromoFreeItems)
	c.AddProduct(esTeh)
	c.AddFreeProduct(esTeh)

	c.SetPromotion(models.PromoAll3000)
	items := c.Items()
	assert.True(t, items[1].Gratis, "flag gratis tidak dicabut oleh pergantian promo")
	assert.Equal(t, 3000, items[1].HargaSatuan, "ALL_3000 menimpa harga baris gratis")

	c.SetPromotion(models.PromoFreeItems)
	items = c.Items()
	assert.Zero(t, items[1].HargaSatuan, "kembali ke FREE_ITEMS memulihkan harga nol")
}

func TestClearResetsPromotion(t *testing.T) {
	c := newTestCart(t)
	c.SetPromotion(models.PromoAll3000)
	c.AddProduct(esTeh)
	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, models.PromoNone, c.Promotion())
}

func TestCheckoutCashInsufficient(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)
	c.AddProduct(esJeruk)

	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(5000)})
	assert.Nil(t, res.Sale)
	assert.Equal(t, -3000, res.Change)
	assert.Len(t, c.Items(), 2, "keranjang tidak disentuh")
	assert.Empty(t, c.Sales(), "tidak ada entri ledger")
}

func TestCheckoutCashExact(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)

	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(3000)})
	require.NotNil(t, res.Sale)
	assert.Zero(t, res.Change)
	assert.Empty(t, c.Items())
	require.Len(t, c.Sales(), 1)
}

func TestCheckoutCashWithoutCashGivenFailsUnlessFree(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)
	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash})
	assert.Nil(t, res.Sale)
	assert.Equal(t, -3000, res.Change)
}

func TestCheckoutEndToEndAll3000(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)
	c.AddProduct(esTeh)
	c.AddProduct(esJeruk)
	assert.Equal(t, 11000, c.Totals().Subtotal)

	c.SetPromotion(models.PromoAll3000)
	assert.Equal(t, 9000, c.Totals().Subtotal)

	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(10000)})
	require.NotNil(t, res.Sale)
	assert.Equal(t, 1000, res.Change)
	assert.Equal(t, 9000, res.Sale.NetTotal)
	assert.Equal(t, 11000, res.Sale.GrossTotal, "gross selalu pakai harga dasar")
	assert.Equal(t, models.PaymentCash, res.Sale.PaymentMethod)
	require.NotNil(t, res.Sale.Change)
	assert.Equal(t, 1000, *res.Sale.Change)
	assert.Empty(t, res.Warning)

	assert.Empty(t, c.Items())
	assert.Equal(t, models.PromoNone, c.Promotion())
	require.Len(t, c.Sales(), 1)
	assert.Equal(t, res.Sale.ID, c.Sales()[0].ID)
}

func TestCheckoutEndToEndFreeItems(t *testing.T) {
	c := newTestCart(t)
	c.SetPromotion(models.PromoFreeItems)
	c.AddProduct(esTeh)
	c.AddFreeProduct(esTeh)

	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(3000)})
	require.NotNil(t, res.Sale)
	assert.Equal(t, 3000, res.Sale.NetTotal, "hanya baris berbayar yang masuk net")
	assert.Equal(t, 6000, res.Sale.GrossTotal)

	require.Len(t, res.Sale.Items, 2)
	gratis := res.Sale.Items[1]
	assert.True(t, gratis.Gratis)
	assert.Zero(t, gratis.Total)
	assert.Equal(t, "es_teh", gratis.ProdukID)
}

func TestCheckoutLedgerNewestFirst(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esTeh)
	first := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(3000)})
	require.NotNil(t, first.Sale)

	c.AddProduct(esJeruk)
	second := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(5000)})
	require.NotNil(t, second.Sale)

	sales := c.Sales()
	require.Len(t, sales, 2)
	assert.Equal(t, second.Sale.ID, sales[0].ID)
	assert.Equal(t, first.Sale.ID, sales[1].ID)
}

func TestCheckoutQrisDefaultsAndPassthrough(t *testing.T) {
	c := newTestCart(t)
	c.AddProduct(esJeruk)

	res := c.Checkout(CheckoutRequest{
		PaymentMethod: models.PaymentQRIS,
		QrisProof:     "data:image/png;base64,xxxx",
		QrisNote:      "transfer an. Budi",
	})
	require.NotNil(t, res.Sale)
	assert.Zero(t, res.Change)
	require.NotNil(t, res.Sale.QrisAmount)
	assert.Equal(t, 5000, *res.Sale.QrisAmount, "qrisAmount default ke netTotal")
	assert.Equal(t, "data:image/png;base64,xxxx", res.Sale.QrisProof)
	assert.Nil(t, res.Sale.CashGiven)
	assert.Nil(t, res.Sale.Change)

	// tidak ada gerbang kecukupan nominal untuk QRIS
	c.AddProduct(esJeruk)
	res = c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentQRIS, QrisAmount: intPtr(1000)})
	require.NotNil(t, res.Sale)
	assert.Equal(t, 1000, *res.Sale.QrisAmount)
}

func TestCheckoutPersistsLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesRecords.json")
	ledger := &repository.FileSalesLedger{Path: path}
	c, err := New(ledger)
	require.NoError(t, err)

	c.AddProduct(esTeh)
	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(3000)})
	require.NotNil(t, res.Sale)

	// cart baru dari store yang sama melihat ledger tersimpan
	c2, err := New(ledger)
	require.NoError(t, err)
	require.Len(t, c2.Sales(), 1)
	assert.Equal(t, res.Sale.ID, c2.Sales()[0].ID)
}

type failingLedger struct{}

func (failingLedger) Load() ([]models.SaleRecord, error) { return nil, nil }
func (failingLedger) Save([]models.SaleRecord) error     { return errors.New("disk penuh") }

func TestCheckoutPersistFailureStillCompletes(t *testing.T) {
	c, err := New(failingLedger{})
	require.NoError(t, err)

	c.AddProduct(esTeh)
	res := c.Checkout(CheckoutRequest{PaymentMethod: models.PaymentCash, CashGiven: intPtr(5000)})
	require.NotNil(t, res.Sale, "transaksi tetap selesai di memori")
	assert.Equal(t, 2000, res.Change)
	assert.NotEmpty(t, res.Warning, "gap durabilitas harus disurface, bukan cuma di log")
	assert.Empty(t, c.Items())
	require.Len(t, c.Sales(), 1)
}
