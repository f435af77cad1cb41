package hwswap

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeQuotesEmptyPool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Resource not found"}`))
	}))
	defer srv.Close()

	swapClient := NewSwapClient(NewAptosClient(srv.URL), "0xdead")

	quote, pool, err := swapClient.GetAddLiquidityQuote(context.Background(),
		"0x1::aptos_coin::AptosCoin", "0xabc::coins::USDT",
		big.NewInt(4_000_000), big.NewInt(1_000_000), 100)
	require.NoError(t, err)
	assert.True(t, pool.IsEmpty())
	assert.Equal(t, "1999000", quote.Liquidity.String())
	assert.Equal(t, "3960000", quote.MinAmountX.String())

	_, _, err = swapClient.SwapExactInputQuote(context.Background(),
		"0x1::aptos_coin::AptosCoin", "0xabc::coins::USDT", big.NewInt(1000), 100)
	require.Error(t, err)
}
