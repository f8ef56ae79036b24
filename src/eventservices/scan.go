package eventservices

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/eventpubsub"
	"github.com/jiaming2012/options-flow/src/spreads"
	"github.com/jiaming2012/options-flow/src/telemetry"
)

const scannerPublisher = "Scanner"

type MarketDataFetcher interface {
	FetchOptionChain(ctx context.Context, symbol string, date time.Time) (*eventmodels.OptionChainResponseDTO, error)
	FetchTrades(ctx context.Context, symbol string, limit int) ([]eventmodels.OptionTradeDTO, error)
}

type ScanParams struct {
	TradesPerSymbol   int
	RequestsPerSecond float64
	Summary           SummaryParams
}

type ScanResult struct {
	RunID  uuid.UUID
	Chains []eventmodels.ChainSummary
	Failed []string
}

// ProcessSymbol fetches the chain and the prints for one symbol concurrently,
// then enriches, assembles and summarizes them.
func ProcessSymbol(ctx context.Context, fetcher MarketDataFetcher, symbol string, params ScanParams, asOf time.Time) (eventmodels.ChainSummary, error) {
	var (
		chain *eventmodels.OptionChainResponseDTO
		dtos  []eventmodels.OptionTradeDTO
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		chain, err = fetcher.FetchOptionChain(gctx, symbol, asOf)
		return err
	})

	g.Go(func() error {
		var err error
		dtos, err = fetcher.FetchTrades(gctx, symbol, params.TradesPerSymbol)
		return err
	})

	if err := g.Wait(); err != nil {
		return eventmodels.ChainSummary{}, fmt.Errorf("ProcessSymbol: %w", err)
	}

	if chain == nil || len(chain.Options) == 0 || len(dtos) == 0 {
		return eventmodels.ChainSummary{}, fmt.Errorf("ProcessSymbol: %s: %w", symbol, eventmodels.ErrEmptyBatch)
	}

	trades := EnrichTrades(dtos, chain, asOf)
	all := spreads.Assemble(trades)

	log.Debugf("ProcessSymbol: %s: %d trades, %d spreads", symbol, len(trades), len(all))

	return SummarizeChain(chain, trades, all, params.Summary, asOf)
}

type Scanner struct {
	fetcher   MarketDataFetcher
	params    ScanParams
	limiter   *rate.Limiter
	tracer    trace.Tracer
	spreadCtr metric.Int64Counter
	now       func() time.Time
}

func NewScanner(fetcher MarketDataFetcher, params ScanParams) (*Scanner, error) {
	limit := rate.Inf
	if params.RequestsPerSecond > 0 {
		limit = rate.Limit(params.RequestsPerSecond)
	}

	counter, err := otel.Meter(telemetry.InstrumentationName).Int64Counter(
		"spreads_reconstructed",
		metric.WithDescription("Spreads reconstructed from option prints"),
	)
	if err != nil {
		return nil, fmt.Errorf("NewScanner: %w", err)
	}

	return &Scanner{
		fetcher:   fetcher,
		params:    params,
		limiter:   rate.NewLimiter(limit, 1),
		tracer:    otel.Tracer(telemetry.InstrumentationName),
		spreadCtr: counter,
		now:       time.Now,
	}, nil
}

func (s *Scanner) scanSymbol(ctx context.Context, symbol string) (eventmodels.ChainSummary, error) {
	ctx, span := s.tracer.Start(ctx, "scan.symbol", trace.WithAttributes(attribute.String("symbol", symbol)))
	defer span.End()

	summary, err := ProcessSymbol(ctx, s.fetcher, symbol, s.params, s.now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}

	span.SetAttributes(attribute.Int("spreads", summary.SpreadCount), attribute.Int("bias", summary.Bias))
	s.spreadCtr.Add(ctx, int64(summary.SpreadCount), metric.WithAttributes(attribute.String("symbol", symbol)))

	return summary, nil
}

// Run scans the symbols one after another at the configured request rate.
// Symbols that fail are logged and reported in Failed. The chains are
// returned ordered by descending bias.
func (s *Scanner) Run(ctx context.Context, symbols []string) (ScanResult, error) {
	result := ScanResult{RunID: uuid.New()}

	for _, symbol := range symbols {
		if err := s.limiter.Wait(ctx); err != nil {
			return result, fmt.Errorf("Scanner.Run: %w", err)
		}

		summary, err := s.scanSymbol(ctx, symbol)
		if err != nil {
			log.WithError(err).Warnf("Scanner.Run: skipping %s", symbol)
			result.Failed = append(result.Failed, symbol)
			continue
		}

		log.Infof("Scanned %s: bias %d, %d spreads", symbol, summary.Bias, summary.SpreadCount)

		eventpubsub.PublishChainProcessed(scannerPublisher, summary)
		result.Chains = append(result.Chains, summary)
	}

	sort.SliceStable(result.Chains, func(i, j int) bool {
		return result.Chains[i].Bias > result.Chains[j].Bias
	})

	return result, nil
}
