package aptos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/krazyTry/hwswap-go/u128"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	// CoinInfoResource is published under the coin's defining account
	CoinInfoResource = "0x1::coin::CoinInfo"
	// CoinStoreResource is published under every registered holder
	CoinStoreResource = "0x1::coin::CoinStore"
)

// CoinInfo is the 0x1::coin::CoinInfo<T> resource.
type CoinInfo struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	// Supply is zero when the coin does not track supply
	Supply decimal.Decimal `json:"supply"`
}

// CoinInfoLayout decodes CoinInfo resources.
type CoinInfoLayout struct {
}

// Decode reads the resource JSON; supply is an Option<OptionalAggregator>
// rendered as supply.vec[0].integer.vec[0].value.
func (l *CoinInfoLayout) Decode(resource gjson.Result) (*CoinInfo, error) {
	data := resource.Get("data")
	if !data.Exists() {
		return nil, errors.New("coin info: missing data")
	}
	supply, err := u128.ParseDecimal(data.Get("supply.vec.0.integer.vec.0.value").String())
	if err != nil {
		return nil, fmt.Errorf("coin info supply: %w", err)
	}
	decimals := data.Get("decimals").Uint()
	if decimals > 255 {
		return nil, fmt.Errorf("coin info decimals %d out of range", decimals)
	}
	return &CoinInfo{
		Name:     data.Get("name").String(),
		Symbol:   data.Get("symbol").String(),
		Decimals: uint8(decimals),
		Supply:   supply,
	}, nil
}

// CoinTypeAddress returns the defining account of a coin type,
// "0x1" for "0x1::aptos_coin::AptosCoin".
func CoinTypeAddress(coinType string) string {
	address, _, _ := strings.Cut(coinType, "::")
	return address
}

// GetCoinInfo reads CoinInfo<coinType> from the coin's defining account.
func (c *Client) GetCoinInfo(ctx context.Context, coinType string) (*CoinInfo, error) {
	resource, err := c.GetAccountResource(ctx, CoinTypeAddress(coinType), fmt.Sprintf("%s<%s>", CoinInfoResource, coinType))
	if err != nil {
		return nil, err
	}
	return (&CoinInfoLayout{}).Decode(resource)
}

// GetCoinBalance returns owner's balance of coinType, zero if owner never
// registered a CoinStore for it.
func (c *Client) GetCoinBalance(ctx context.Context, owner, coinType string) (decimal.Decimal, error) {
	resource, err := c.GetAccountResource(ctx, owner, fmt.Sprintf("%s<%s>", CoinStoreResource, coinType))
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	balance, err := u128.ParseDecimal(resource.Get("data.coin.value").String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("coin store %s: %w", coinType, err)
	}
	return balance, nil
}
