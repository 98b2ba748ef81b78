package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lshigami/testhub/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	testIDSpace = 1_000_000
	// MaxTestIDAttempts bounds how many candidates Allocate draws before giving
	// up. At 50% occupancy the chance of 64 straight collisions is about 5e-20.
	MaxTestIDAttempts = 64
)

// TestIDAllocator hands out 6-digit test ids that are not yet stored.
type TestIDAllocator interface {
	Allocate(ctx context.Context, tests repository.TestRepository) (string, error)
}

type testIDAllocator struct {
	generate    func() string
	maxAttempts int
}

func NewTestIDAllocator() TestIDAllocator {
	return &testIDAllocator{generate: randomTestID, maxAttempts: MaxTestIDAttempts}
}

// NewTestIDAllocatorWithGenerator is used where the candidate sequence has to be
// controlled.
func NewTestIDAllocatorWithGenerator(generate func() string, maxAttempts int) TestIDAllocator {
	if maxAttempts <= 0 {
		maxAttempts = MaxTestIDAttempts
	}
	return &testIDAllocator{generate: generate, maxAttempts: maxAttempts}
}

// Allocate draws candidates until one is not present in tests. The existence
// check alone is not race-free; the primary key on tests.id catches the rest.
func (a *testIDAllocator) Allocate(ctx context.Context, tests repository.TestRepository) (string, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		candidate := a.generate()
		exists, err := tests.ExistsByID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking test id %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		log.Debug().Str("candidate", candidate).Int("attempt", attempt).Msg("Test id collision, drawing again")
	}
	return "", ErrTestIDSpaceExhausted
}

func randomTestID() string {
	return fmt.Sprintf("%06d", rand.Intn(testIDSpace))
}
