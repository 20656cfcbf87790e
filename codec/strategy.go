package codec

import (
	"fmt"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
)

// Supports reports whether the encoder can run with the given strategy.
//
// Only StrategySerial is available. StrategyParallel is declared so callers
// can ask for it and be refused explicitly.
func Supports(strategy format.Strategy) bool {
	return strategy == format.StrategySerial
}

// CheckStrategy returns ErrUnimplementedMode for any strategy Supports rejects.
func CheckStrategy(strategy format.Strategy) error {
	if !Supports(strategy) {
		return fmt.Errorf("%w: %s compression", errs.ErrUnimplementedMode, strategy)
	}

	return nil
}
