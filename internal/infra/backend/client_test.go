package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
	"github.com/RoyceAzure/lab/storefront/internal/infra/identity"
	"github.com/RoyceAzure/lab/storefront/internal/stub"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	tokens *identity.MemoryTokenStore
	client *Client
}

func (s *ClientTestSuite) SetupTest() {
	store, err := stub.NewStore(stub.DefaultSeed())
	require.NoError(s.T(), err)
	s.server = httptest.NewServer(stub.NewRouter(store))

	s.tokens = identity.NewMemoryTokenStore("dev-token")
	s.client, err = NewClient(s.server.URL, WithTokenSource(identity.NewProvider(s.tokens, time.Second)))
	require.NoError(s.T(), err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestListProducts() {
	ctx := context.Background()

	all, err := s.client.ListProducts(ctx, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, len(stub.DefaultSeed().Products))

	men := int64(1)
	list, err := s.client.ListProducts(ctx, &men)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 5)
	require.Equal(s.T(), "Wool Coat", list[0].Name)
	require.Equal(s.T(), "420", list[0].Price.String())

	empty := int64(42)
	list, err = s.client.ListProducts(ctx, &empty)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), list)
	require.Empty(s.T(), list)
}

func (s *ClientTestSuite) TestGetCategory() {
	ctx := context.Background()
	category, err := s.client.GetCategory(ctx, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Gifts", category.Name)

	_, err = s.client.GetCategory(ctx, 999)
	require.Error(s.T(), err)
	require.True(s.T(), storeerr.IsNotFound(err))
	require.True(s.T(), errors.Is(err, &storeerr.BackendError{Operation: OpGetCategory}))
}

func (s *ClientTestSuite) TestPendingOrderFlow() {
	ctx := context.Background()

	order, err := s.client.FindPendingOrder(ctx)
	require.NoError(s.T(), err)
	require.Nil(s.T(), order, "沒有待處理訂單")

	require.NoError(s.T(), s.client.AddToCart(ctx, 301))
	require.NoError(s.T(), s.client.AddToCart(ctx, 302))

	order, err = s.client.FindPendingOrder(ctx)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), order)
	require.NotEmpty(s.T(), order.ID)
	require.Equal(s.T(), 2, order.ItemCount())
	require.Equal(s.T(), "35.50", order.Total().StringFixed(2))

	require.NoError(s.T(), s.client.RemoveFromCart(ctx, 301))
	order, err = s.client.FindPendingOrder(ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, order.ItemCount())

	require.NoError(s.T(), s.client.ConfirmPendingOrder(ctx))
	order, err = s.client.FindPendingOrder(ctx)
	require.NoError(s.T(), err)
	require.Nil(s.T(), order)

	err = s.client.CancelPendingOrder(ctx)
	require.ErrorIs(s.T(), err, storeerr.ErrNoPendingOrder)
	require.Equal(s.T(), storeerr.KindNotFound, storeerr.Classify(err))
}

func (s *ClientTestSuite) TestUnauthenticated() {
	ctx := context.Background()
	require.NoError(s.T(), s.tokens.Delete(ctx))

	_, err := s.client.FindPendingOrder(ctx)
	require.ErrorIs(s.T(), err, storeerr.ErrAuthRequired)

	// 目錄不需要登入
	_, err = s.client.ListProducts(ctx, nil)
	require.NoError(s.T(), err)
}

func (s *ClientTestSuite) TestNetworkFailure() {
	s.server.Close()
	_, err := s.client.ListProducts(context.Background(), nil)
	require.Error(s.T(), err)
	require.Equal(s.T(), storeerr.KindNetworkFailure, storeerr.Classify(err))
}

func TestServerRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get(HeaderRequestID))
		require.Empty(t, r.Header.Get("Authorization"))
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL + "/")
	require.NoError(t, err)
	_, err = client.ListProducts(context.Background(), nil)
	require.True(t, storeerr.IsServerRejected(err))
	require.True(t, errors.Is(err, &storeerr.BackendError{StatusCode: http.StatusInternalServerError}))
}

func TestMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = client.GetCategory(context.Background(), 1)
	require.True(t, storeerr.IsServerRejected(err))
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient("localhost")
	require.ErrorIs(t, err, storeerr.ErrInvalidateParameter)
	_, err = NewClient("://bad")
	require.Error(t, err)
}
