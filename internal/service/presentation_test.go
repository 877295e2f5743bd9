package service

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSplitProducts(t *testing.T) {
	for n := 0; n <= 10; n++ {
		products := genProducts("p", n)
		leading, trailing := SplitProducts(products)
		require.Len(t, leading, min(n, 4), "n=%d", n)
		require.Equal(t, n, len(leading)+len(trailing), "n=%d", n)
		if n > 0 {
			require.Equal(t, products[0], leading[0])
		}
		if n > 4 {
			require.Equal(t, products[4], trailing[0])
		}
	}
}

func TestSplitProductsDoesNotAlias(t *testing.T) {
	products := genProducts("p", 6)
	leading, _ := SplitProducts(products)
	leading = append(leading, model.Product{Name: "extra"})
	require.Equal(t, "p-4", products[4].Name)
	require.Len(t, leading, 5)
}

func TestShouldShowAmbientMedia(t *testing.T) {
	table := DefaultMediaTable()
	testCases := []struct {
		name     string
		n        int
		category *model.Category
		want     string
		show     bool
	}{
		{name: "mapped with trailing", n: 5, category: &model.Category{Name: "Men"}, want: "/ManVideo.mp4", show: true},
		{name: "mapped exactly four", n: 4, category: &model.Category{Name: "Women"}},
		{name: "unmapped", n: 8, category: &model.Category{Name: "Home"}},
		{name: "no category", n: 8},
		{name: "gifts", n: 9, category: &model.Category{Name: "Gifts"}, want: "/GiftsVideo.mp4", show: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, trailing := SplitProducts(genProducts("p", tc.n))
			asset, show := ShouldShowAmbientMedia(trailing, table, tc.category)
			require.Equal(t, tc.show, show)
			require.Equal(t, tc.want, asset)
		})
	}
}

func TestResolveImages(t *testing.T) {
	const placeholder = "placeholder.jpg"
	testCases := []struct {
		imageURL string
		def      string
		hover    string
	}{
		{imageURL: "a.jpg, b.jpg", def: "a.jpg", hover: "b.jpg"},
		{imageURL: "a.jpg", def: "a.jpg", hover: "a.jpg"},
		{imageURL: "", def: placeholder, hover: placeholder},
		{imageURL: "  a.jpg  ,  b.jpg ,c.jpg", def: "a.jpg", hover: "b.jpg"},
		{imageURL: "a.jpg,", def: "a.jpg", hover: "a.jpg"},
		{imageURL: ", b.jpg", def: placeholder, hover: "b.jpg"},
	}
	for _, tc := range testCases {
		t.Run(tc.imageURL, func(t *testing.T) {
			def, hover := ResolveImages(tc.imageURL, placeholder)
			require.Equal(t, tc.def, def)
			require.Equal(t, tc.hover, hover)
		})
	}
}

func TestParseCategoryParam(t *testing.T) {
	id, err := ParseCategoryParam("")
	require.NoError(t, err)
	require.Nil(t, id)

	id, err = ParseCategoryParam(" 12 ")
	require.NoError(t, err)
	require.Equal(t, int64(12), *id)

	_, err = ParseCategoryParam("men")
	require.ErrorIs(t, err, storeerr.ErrInvalidateParameter)
}

func TestFormatPrices(t *testing.T) {
	require.Equal(t, "€20", FormatCatalogPrice(decimal.RequireFromString("19.99")))
	require.Equal(t, "€420", FormatCatalogPrice(decimal.RequireFromString("420.00")))
	require.Equal(t, "$35.50", FormatCartPrice(decimal.RequireFromString("35.5")))
	require.Equal(t, "$0.00", FormatCartPrice(decimal.Zero))
}

func TestCategoryTitle(t *testing.T) {
	require.Equal(t, DefaultCategoryTitle, CategoryTitle(nil))
	require.Equal(t, "Gifts", CategoryTitle(&model.Category{Name: "Gifts"}))
}

func TestSummarizeOrder(t *testing.T) {
	order := pendingOrder("o-1", "10.00", "25.50")
	order.Products[0].ImageURL = "a.jpg, b.jpg"

	summary := SummarizeOrder(order, "cart.jpg")
	require.False(t, summary.Empty)
	require.Equal(t, "o-1", summary.OrderID)
	require.Equal(t, 2, summary.ItemCount)
	require.Equal(t, "$35.50", summary.Total)
	require.Equal(t, ShippingLabel, summary.Shipping)
	require.Equal(t, "a.jpg", summary.Lines[0].Image)
	require.Equal(t, "cart.jpg", summary.Lines[1].Image)
	require.Equal(t, "$25.50", summary.Lines[1].Price)

	empty := SummarizeOrder(nil, "cart.jpg")
	require.True(t, empty.Empty)
	require.Equal(t, "$0.00", empty.Total)
	require.Empty(t, empty.Lines)
}
