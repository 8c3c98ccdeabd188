package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/gobalance/internal/domain"
	"github.com/iho/gobalance/internal/infrastructure/metrics"
)

// ReferenceData bundles the preloaded chart, sector tree and subledger
// directory the pipeline navigates. Loaded once at startup; safe for
// concurrent report builds.
type ReferenceData struct {
	Chart      *domain.Chart
	Sectors    *domain.SectorTree
	Subledgers domain.SubledgerResolver
}

// TrialBalanceUseCase orchestrates one report build: fetch postings and
// rates, run the aggregation pipeline, cache the result.
type TrialBalanceUseCase struct {
	balanceRepo    BalanceRepository
	rateRepo       ExchangeRateRepository
	refData        ReferenceData
	cache          Cache
	cacheTTL       time.Duration
	baseCurrencyID string
	idGen          IDGenerator
	metrics        *metrics.Metrics
}

// NewTrialBalanceUseCase creates a new TrialBalanceUseCase. cache may be
// nil to disable report caching; idGen and metrics may be nil in tests.
func NewTrialBalanceUseCase(
	balanceRepo BalanceRepository,
	rateRepo ExchangeRateRepository,
	refData ReferenceData,
	cache Cache,
	cacheTTL time.Duration,
	baseCurrencyID string,
	idGen IDGenerator,
	m *metrics.Metrics,
) *TrialBalanceUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultReportCacheTTL
	}
	return &TrialBalanceUseCase{
		balanceRepo:    balanceRepo,
		rateRepo:       rateRepo,
		refData:        refData,
		cache:          cache,
		cacheTTL:       cacheTTL,
		baseCurrencyID: baseCurrencyID,
		idGen:          idGen,
		metrics:        m,
	}
}

// BuildTrialBalance builds the report described by query, serving it from
// the cache when an identical query was built recently.
func (uc *TrialBalanceUseCase) BuildTrialBalance(ctx context.Context, query domain.TrialBalanceQuery) (*domain.TrialBalance, error) {
	if err := query.Validate(); err != nil {
		uc.countError("invalid_query")
		return nil, err
	}

	cacheKey := "report:" + query.Fingerprint()
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	start := time.Now()

	postings, err := uc.balanceRepo.GetPostingEntries(ctx, query)
	if err != nil {
		uc.countError("fetch_postings")
		return nil, fmt.Errorf("fetch posting entries: %w", err)
	}

	rates, err := uc.fetchRates(ctx, query)
	if err != nil {
		uc.countError("fetch_rates")
		return nil, err
	}

	builder := domain.NewBuilder(query, uc.refData.Chart, uc.refData.Sectors,
		uc.refData.Subledgers, uc.baseCurrencyID)

	report, err := builder.Build(postings, rates)
	if err != nil {
		uc.countError("build")
		return nil, err
	}
	if uc.idGen != nil {
		report.ID = uc.idGen.Generate()
	}

	if uc.metrics != nil {
		uc.metrics.ReportsBuilt.WithLabelValues(string(query.Type)).Inc()
		uc.metrics.ReportDuration.WithLabelValues(string(query.Type)).Observe(time.Since(start).Seconds())
		uc.metrics.PostingsLoaded.Observe(float64(len(postings)))
		uc.metrics.ReportRows.Observe(float64(len(report.Entries)))
	}

	uc.toCache(ctx, cacheKey, report)
	return report, nil
}

func (uc *TrialBalanceUseCase) fetchRates(ctx context.Context, query domain.TrialBalanceQuery) (domain.RateSet, error) {
	var rates domain.RateSet
	if !query.UseValuation {
		return rates, nil
	}

	initial, err := uc.rateRepo.GetList(ctx,
		query.InitialPeriod.ExchangeRateType, query.InitialPeriod.ExchangeRateDate)
	if err != nil {
		return rates, fmt.Errorf("fetch exchange rates: %w", err)
	}
	rates.Initial = initial

	if query.Type == domain.Comparative {
		final, err := uc.rateRepo.GetList(ctx,
			query.FinalPeriod.ExchangeRateType, query.FinalPeriod.ExchangeRateDate)
		if err != nil {
			return rates, fmt.Errorf("fetch final period exchange rates: %w", err)
		}
		rates.Final = final
	}
	return rates, nil
}

func (uc *TrialBalanceUseCase) fromCache(ctx context.Context, key string) *domain.TrialBalance {
	if uc.cache == nil {
		return nil
	}
	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		if uc.metrics != nil {
			uc.metrics.ReportCacheMisses.Inc()
		}
		return nil
	}
	var report domain.TrialBalance
	if err := json.Unmarshal(data, &report); err != nil {
		// stale or corrupt payload, rebuild
		_ = uc.cache.Delete(ctx, key)
		return nil
	}
	if uc.metrics != nil {
		uc.metrics.ReportCacheHits.Inc()
	}
	return &report
}

func (uc *TrialBalanceUseCase) toCache(ctx context.Context, key string, report *domain.TrialBalance) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	// cache failures never fail the request
	_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
}

func (uc *TrialBalanceUseCase) countError(errorType string) {
	if uc.metrics != nil {
		uc.metrics.ReportErrors.WithLabelValues(errorType).Inc()
	}
}
