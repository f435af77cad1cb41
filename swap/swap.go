package swap

import (
	"github.com/krazyTry/hwswap-go/aptos"
	"go.uber.org/zap"
)

// Swap reads HwSwap pools published by moduleAddress and quotes against them.
type Swap struct {
	client        *aptos.Client
	moduleAddress string
	logger        *zap.Logger
}

func NewSwap(
	client *aptos.Client,
	moduleAddress string,
	opts ...Option,
) *Swap {
	o := &Swap{
		client:        client,
		moduleAddress: moduleAddress,
		logger:        zap.NewNop(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

type Option func(*Swap)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Swap) {
		s.logger = logger
	}
}

// ModuleAddress is the account that published the swap module.
func (m *Swap) ModuleAddress() string {
	return m.moduleAddress
}
