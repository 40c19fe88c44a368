package executor

import (
	"fmt"
	"strings"
)

// Strategy selects where validation work runs.
type Strategy string

const (
	// StrategyInline runs jobs synchronously on the calling goroutine.
	StrategyInline Strategy = "inline"

	// StrategySingle runs jobs one at a time on a dedicated worker, in submission order.
	StrategySingle Strategy = "single"

	// StrategyPool runs jobs concurrently on a fixed set of workers.
	StrategyPool Strategy = "pool"
)

// ParseStrategy accepts the strategy names case-insensitively, plus the
// aliases "sync" for inline and "serial" for single.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline", "sync":
		return StrategyInline, nil
	case "single", "serial":
		return StrategySingle, nil
	case "pool":
		return StrategyPool, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s Strategy) String() string {
	return string(s)
}

// UnmarshalText lets Strategy be decoded from env vars and YAML.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
