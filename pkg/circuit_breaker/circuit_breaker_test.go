package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bookhive/recommend-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.NewCircuitBreaker(10, 100*time.Millisecond, 0.30, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// trip the breaker with failures
	for i := 0; i < 4; i++ {
		_ = cb.Call(failingService)
	}
	err := cb.Call(successfulService)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

	// wait out the timeout, breaker probes half-open
	time.Sleep(150 * time.Millisecond)
	cb.Reset()

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
}
