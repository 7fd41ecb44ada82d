package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"
	"faretrack-service/pkg/metrics"
	"faretrack-service/pkg/utils"

	"github.com/google/uuid"
)

// FareRecordParser turns the raw records of one response into fares
type FareRecordParser interface {
	ParseAll(records []json.RawMessage) ([]*entity.FlightFare, []*entity.ParseError)
}

// CampaignRequest describes one polling run
type CampaignRequest struct {
	StartDate string // YYYY-MM-DD, tomorrow when empty
	Days      int
	Departure string // configured default when empty
	Arrival   string // configured default when empty
}

// CampaignResult summarizes a polling run
type CampaignResult struct {
	RunID            string
	StartedAt        time.Time
	FinishedAt       time.Time
	Operations       []*entity.SearchOperation
	FailedDates      []string
	SnapshotsWritten int
	FaresRejected    int
	Export           *entity.RunExport
}

// FarePoller fetches, parses and records fares for a range of dates
type FarePoller struct {
	fetcher   repository.FareAPIRepository
	parser    FareRecordParser
	snapshots repository.SnapshotRepository
	exporters []repository.ExportRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
	newRunID  func() string
}

// NewFarePoller creates a new fare poller
func NewFarePoller(
	fetcher repository.FareAPIRepository,
	parser FareRecordParser,
	snapshots repository.SnapshotRepository,
	exporters []repository.ExportRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FarePoller {
	return &FarePoller{
		fetcher:   fetcher,
		parser:    parser,
		snapshots: snapshots,
		exporters: exporters,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}
}

// WithClock replaces the clock used for the start date default and export metadata
func (p *FarePoller) WithClock(now func() time.Time) *FarePoller {
	p.now = now
	return p
}

// Run polls every date of the request in order. A failed fetch is recorded and
// the run moves on to the next date; a persistence failure stops the run and is
// returned. The run document goes to every exporter in both cases.
func (p *FarePoller) Run(ctx context.Context, req CampaignRequest) (*CampaignResult, error) {
	startDate := strings.TrimSpace(req.StartDate)
	if startDate == "" {
		startDate = utils.DefaultStartDate(p.now())
	}
	dates, err := utils.GenerateDates(startDate, req.Days)
	if err != nil {
		return nil, fmt.Errorf("invalid campaign request: %w", err)
	}

	result := &CampaignResult{
		RunID:     p.newRunID(),
		StartedAt: p.now().UTC(),
	}
	result.Export = &entity.RunExport{
		RunID:     result.RunID,
		CreatedAt: result.StartedAt,
		Responses: make([]entity.ExportedResponse, 0, len(dates)),
	}

	log := p.logger.With("runId", result.RunID)
	log.Info("Starting fare campaign",
		"startDate", startDate,
		"days", req.Days,
		"departure", req.Departure,
		"arrival", req.Arrival)

	defer func() {
		p.metrics.CampaignDuration.Observe(time.Since(result.StartedAt).Seconds())
	}()

	var runErr error
	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("campaign interrupted before %s: %w", date, err)
			break
		}

		op, err := p.pollDate(ctx, log, result, date, req)
		if err != nil {
			p.metrics.ErrorsCount.WithLabelValues("record").Inc()
			log.Error("Failed to record search operation, aborting run",
				"date", date,
				"error", err)
			runErr = fmt.Errorf("record fares for %s: %w", date, err)
			break
		}

		result.Operations = append(result.Operations, op)
		result.SnapshotsWritten += op.SnapshotCount
		if !op.Successful {
			result.FailedDates = append(result.FailedDates, date)
		}
	}

	result.FinishedAt = p.now().UTC()
	p.export(ctx, log, result.Export)

	log.Info("Fare campaign finished",
		"operations", len(result.Operations),
		"failedDates", len(result.FailedDates),
		"snapshots", result.SnapshotsWritten,
		"rejected", result.FaresRejected)

	return result, runErr
}

func (p *FarePoller) pollDate(ctx context.Context, log logger.Logger, result *CampaignResult, date string, req CampaignRequest) (*entity.SearchOperation, error) {
	fetch := p.fetcher.FetchFares(ctx, date, req.Departure, req.Arrival)
	batch := &entity.FareBatch{RunID: result.RunID, Fetch: fetch}

	if fetch.IsSuccessful() {
		p.metrics.FetchesTotal.WithLabelValues("success").Inc()
		batch.Fares, batch.Rejected = p.parser.ParseAll(fetch.Records)
		p.metrics.FaresParsed.Add(float64(len(batch.Fares)))
		p.metrics.FaresRejected.Add(float64(len(batch.Rejected)))
		result.FaresRejected += len(batch.Rejected)
	} else {
		p.metrics.FetchesTotal.WithLabelValues("failure").Inc()
		log.Warn("Fare request failed",
			"date", date,
			"url", fetch.URL,
			"status", fetch.StatusCode,
			"error", batch.ErrorMessage())
	}

	result.Export.Responses = append(result.Export.Responses, utils.ExportResponse(batch, p.now()))

	op, err := p.snapshots.Record(ctx, batch)
	if err != nil {
		return nil, err
	}
	p.metrics.SnapshotsWritten.Add(float64(op.SnapshotCount))

	log.Info("Search operation recorded",
		"date", date,
		"searchId", op.ID,
		"successful", op.Successful,
		"snapshots", op.SnapshotCount,
		"rejected", op.FaresRejected)

	return op, nil
}

// export hands the run document to every exporter; failures are logged only
func (p *FarePoller) export(ctx context.Context, log logger.Logger, doc *entity.RunExport) {
	// exports also run when the campaign context was cancelled
	ctx = context.WithoutCancel(ctx)

	for _, exporter := range p.exporters {
		if err := exporter.Save(ctx, doc); err != nil {
			p.metrics.ErrorsCount.WithLabelValues("export").Inc()
			log.Error("Failed to export run",
				"exporter", fmt.Sprintf("%T", exporter),
				"error", err)
		}
	}
}
