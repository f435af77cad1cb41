package aptos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aptosCoin = "0x1::aptos_coin::AptosCoin"
	holder    = "0xbeef"
)

// newNode serves canned resources keyed by decoded request path.
func newNode(t *testing.T, resources map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := resources[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Resource not found","error_code":"resource_not_found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestNewClientNodeURL(t *testing.T) {
	assert.Equal(t, "https://fullnode.devnet.aptoslabs.com/v1", NewClient(NodeURL("devnet")).NodeURL())
	assert.Equal(t, "http://localhost:8080/v1", NewClient("http://localhost:8080/v1/").NodeURL())
}

func TestGetAccountResource(t *testing.T) {
	c := newNode(t, map[string]string{
		"/v1/accounts/0x1/resource/0x1::coin::CoinInfo<0x1::aptos_coin::AptosCoin>": `{"type":"x","data":{"name":"Aptos Coin"}}`,
	})

	res, err := c.GetAccountResource(context.Background(), "0x1", CoinInfoResource+"<"+aptosCoin+">")
	require.NoError(t, err)
	assert.Equal(t, "Aptos Coin", res.Get("data.name").String())

	_, err = c.GetAccountResource(context.Background(), "0x2", "0x1::coin::CoinInfo<0x2::x::Y>")
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGetAccountResourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid struct tag"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetAccountResource(context.Background(), "0x1", "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrResourceNotFound)
	assert.Contains(t, err.Error(), "status 400: invalid struct tag")
}

func TestGetCoinInfo(t *testing.T) {
	c := newNode(t, map[string]string{
		"/v1/accounts/0x1/resource/0x1::coin::CoinInfo<0x1::aptos_coin::AptosCoin>": `{
			"type": "0x1::coin::CoinInfo<0x1::aptos_coin::AptosCoin>",
			"data": {
				"decimals": 8,
				"name": "Aptos Coin",
				"symbol": "APT",
				"supply": {"vec": [{"aggregator": {"vec": []}, "integer": {"vec": [{"limit": "340282366920938463463374607431768211455", "value": "18446744073709551616"}]}}]}
			}
		}`,
	})

	info, err := c.GetCoinInfo(context.Background(), aptosCoin)
	require.NoError(t, err)
	assert.Equal(t, "Aptos Coin", info.Name)
	assert.Equal(t, "APT", info.Symbol)
	assert.Equal(t, uint8(8), info.Decimals)
	assert.Equal(t, "18446744073709551616", info.Supply.String())
}

func TestGetCoinInfoWithoutSupply(t *testing.T) {
	c := newNode(t, map[string]string{
		"/v1/accounts/0x1/resource/0x1::coin::CoinInfo<0x1::aptos_coin::AptosCoin>": `{"data":{"decimals":6,"name":"n","symbol":"s","supply":{"vec":[]}}}`,
	})

	info, err := c.GetCoinInfo(context.Background(), aptosCoin)
	require.NoError(t, err)
	assert.True(t, info.Supply.IsZero())
}

func TestGetCoinBalance(t *testing.T) {
	c := newNode(t, map[string]string{
		"/v1/accounts/0xbeef/resource/0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>": `{"data":{"coin":{"value":"123456789"},"frozen":false}}`,
	})

	balance, err := c.GetCoinBalance(context.Background(), holder, aptosCoin)
	require.NoError(t, err)
	assert.Equal(t, "123456789", balance.String())

	balance, err = c.GetCoinBalance(context.Background(), "0xcafe", aptosCoin)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestCoinTypeAddress(t *testing.T) {
	assert.Equal(t, "0x1", CoinTypeAddress(aptosCoin))
	assert.Equal(t, "0xabc", CoinTypeAddress("0xabc::coins::USDT"))
}
