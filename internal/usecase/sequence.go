package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/domain/repository"
)

var sequencePattern = regexp.MustCompile(`PO-(\d+)-`)

// NumberGenerator mints human-readable order numbers of the form
// PO-NNNN-YYYY. The running counter is recomputed from the authoritative
// order list on every reload; when the recomputed maximum and the
// separately persisted counter disagree, the recomputed maximum wins, so
// externally pruned data can never cause reuse below the true observed
// maximum.
type NumberGenerator struct {
	store  repository.OrderStore
	logger *slog.Logger

	mu      sync.Mutex
	counter int64
}

// NewNumberGenerator constructs NumberGenerator.
func NewNumberGenerator(store repository.OrderStore, logger *slog.Logger) *NumberGenerator {
	return &NumberGenerator{store: store, logger: logger}
}

// Sync recomputes the counter from the given order list and persists it.
// Called whenever the order list is reloaded from storage.
func (g *NumberGenerator) Sync(ctx context.Context, orders []model.Order) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter = maxSequence(orders)
	g.persistCounter(ctx)
}

// Next increments the counter and returns the formatted order number for
// the current calendar year. The counter is persisted after every
// increment.
func (g *NumberGenerator) Next(ctx context.Context) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	g.persistCounter(ctx)
	return FormatOrderNumber(g.counter, time.Now().Year())
}

// LastIssued returns the current counter value.
func (g *NumberGenerator) LastIssued() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

func (g *NumberGenerator) persistCounter(ctx context.Context) {
	if err := g.store.SetLastSequence(ctx, g.counter); err != nil {
		g.logger.Error("persist sequence counter", slog.String("error", err.Error()))
	}
}

// FormatOrderNumber renders a sequence value as PO-NNNN-YYYY.
func FormatOrderNumber(seq int64, year int) string {
	return fmt.Sprintf("PO-%04d-%d", seq, year)
}

// SequenceFromNumber extracts the sequence component of a formatted order
// number. Unparsable numbers report ok=false.
func SequenceFromNumber(number string) (int64, bool) {
	match := sequencePattern.FindStringSubmatch(number)
	if match == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func maxSequence(orders []model.Order) int64 {
	var max int64
	for _, o := range orders {
		if n, ok := SequenceFromNumber(o.OrderNumber); ok && n > max {
			max = n
		}
	}
	return max
}
