package appcontext

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/stub"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	mr := miniredis.RunT(t)
	return &config.Config{
		ApiURL:                  apiURL,
		HTTPTimeout:             2 * time.Second,
		LogLevel:                "debug",
		RedisAddr:               mr.Addr(),
		SessionKey:              "test",
		SessionTTL:              time.Hour,
		PlaceholderImageURL:     config.DefaultPlaceholderImageURL,
		CartPlaceholderImageURL: config.DefaultCartPlaceholderImageURL,
		AmbientMedia:            []string{"Men=/ManVideo.mp4"},
	}
}

func TestApplicationContextEndToEnd(t *testing.T) {
	store, err := stub.NewStore(stub.DefaultSeed())
	require.NoError(t, err)
	srv := httptest.NewServer(stub.NewRouter(store))
	defer srv.Close()

	var logs bytes.Buffer
	app, err := NewApplicationContext(testConfig(t, srv.URL), WithLogOutput(&logs))
	require.NoError(t, err)
	defer app.Shutdown(context.Background())

	ctx := context.Background()

	// 未登入時不會打後端
	app.Session.Refresh(ctx)
	require.Nil(t, app.Session.Order())

	require.NoError(t, app.Identity.Login(ctx, "dev-token"))
	require.NoError(t, app.Session.AddItem(ctx, 301))
	require.NoError(t, app.Session.AddItem(ctx, 302))
	order := app.Session.Order()
	require.NotNil(t, order)
	require.Equal(t, "35.5", order.Total().String())

	require.NoError(t, app.Session.Confirm(ctx))
	require.Nil(t, app.Session.Order())

	app.Catalog.OnCategoryParamChanged(ctx, "1")
	p := app.Catalog.Presentation()
	require.Equal(t, "Men", p.Title)
	require.Len(t, p.Leading, 4)
	require.Len(t, p.Trailing, 1)
	require.True(t, p.ShowMedia)

	require.Contains(t, logs.String(), "order_session")
	families, err := app.Registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestApplicationContextInvalidURL(t *testing.T) {
	_, err := NewApplicationContext(testConfig(t, "not a url"), WithLogOutput(&bytes.Buffer{}))
	require.Error(t, err)
}
