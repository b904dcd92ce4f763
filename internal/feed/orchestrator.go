package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bilgisen/newspulse/internal/ai"
	"github.com/bilgisen/newspulse/internal/logger"
	"github.com/bilgisen/newspulse/internal/models"
	"golang.org/x/sync/errgroup"
)

// Orchestrator runs build -> generate -> normalize for every operation the
// presentation layer needs. Failures are logged and turned into fallback
// values carrying StateFailed; they are never returned as errors.
type Orchestrator struct {
	generator       ai.Generator
	normalizer      *ai.Normalizer
	sequencer       *Sequencer
	view            *View
	defaultLocation string
}

func NewOrchestrator(generator ai.Generator, defaultLocation string) *Orchestrator {
	sequencer := NewSequencer()
	return &Orchestrator{
		generator:       generator,
		normalizer:      ai.NewNormalizer(),
		sequencer:       sequencer,
		view:            NewView(sequencer),
		defaultLocation: defaultLocation,
	}
}

// Snapshot returns what the view currently shows.
func (o *Orchestrator) Snapshot() Snapshot {
	return o.view.Snapshot()
}

// LoadCategoryFeed loads the stories of one category. Switching category
// also clears the current search, as the feed replaces it on screen.
func (o *Orchestrator) LoadCategoryFeed(ctx context.Context, category models.Category) models.FeedResult {
	log := logger.Get()
	start := time.Now()

	ticket := o.sequencer.Next(ClassFeed)
	searchTicket := o.sequencer.Next(ClassSearch)
	o.view.apply(searchTicket, func(s *Snapshot) { s.Search = idleSearch("") })
	o.view.apply(ticket, func(s *Snapshot) {
		s.Feed = models.FeedResult{
			Category: category,
			Articles: []models.NewsArticle{},
			Sources:  []models.Citation{},
			Status:   models.StateLoading,
		}
	})

	result := models.FeedResult{
		Category: category,
		Articles: []models.NewsArticle{},
		Sources:  []models.Citation{},
	}

	if !category.Valid() {
		result.Status = models.StateFailed
		result.Error = fmt.Sprintf("unknown category %q", category)
	} else if resp, err := o.generator.Generate(ctx, ai.CategoryFeedRequest(category)); err != nil {
		log.Error().
			Err(err).
			Str("category", string(category)).
			Msg("Error fetching category feed")
		result.Status = models.StateFailed
		result.Error = err.Error()
	} else {
		articles, err := o.normalizer.Articles(category, resp)
		result.Articles = articles
		result.Sources = models.WebSources(resp.Citations)
		if err != nil {
			log.Error().
				Err(err).
				Str("category", string(category)).
				Msg("Failed to parse category feed")
			result.Status = models.StateFailed
			result.Error = err.Error()
		} else {
			result.Status = models.StateSucceeded
		}
	}

	if !o.view.apply(ticket, func(s *Snapshot) { s.Feed = result }) {
		log.Debug().
			Str("category", string(category)).
			Uint64("seq", ticket.Seq).
			Msg("Discarding stale category feed")
	}

	log.Info().
		Str("category", string(category)).
		Str("status", string(result.Status)).
		Int("articles", len(result.Articles)).
		Dur("duration", time.Since(start)).
		Msg("Loaded category feed")

	return result
}

// LoadMarketAndWeather loads the ticker and the weather panel for the
// default location concurrently. Each branch fails on its own.
func (o *Orchestrator) LoadMarketAndWeather(ctx context.Context) models.Dashboard {
	var dashboard models.Dashboard
	var g errgroup.Group

	g.Go(func() error {
		dashboard.Markets = o.LoadMarkets(ctx)
		return nil
	})
	g.Go(func() error {
		dashboard.Weather = o.LoadWeather(ctx, o.defaultLocation)
		return nil
	})

	// Branches never return errors.
	_ = g.Wait()
	return dashboard
}

// LoadMarkets loads the market ticker.
func (o *Orchestrator) LoadMarkets(ctx context.Context) models.MarketResult {
	log := logger.Get()

	ticket := o.sequencer.Next(ClassMarkets)
	o.view.apply(ticket, func(s *Snapshot) { s.Markets.Status = models.StateLoading })

	result := models.MarketResult{Markets: []models.MarketData{}}

	resp, err := o.generator.Generate(ctx, ai.MarketSnapshotRequest())
	if err == nil {
		result.Markets, err = o.normalizer.Markets(resp)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error loading market data")
		result.Status = models.StateFailed
		result.Error = err.Error()
	} else {
		result.Status = models.StateSucceeded
	}

	o.view.apply(ticket, func(s *Snapshot) { s.Markets = result })
	return result
}

// LoadWeather loads the weather panel. A blank location uses the default.
func (o *Orchestrator) LoadWeather(ctx context.Context, location string) models.WeatherResult {
	log := logger.Get()

	location = strings.TrimSpace(location)
	if location == "" {
		location = o.defaultLocation
	}

	ticket := o.sequencer.Next(ClassWeather)
	o.view.apply(ticket, func(s *Snapshot) { s.Weather.Status = models.StateLoading })

	var result models.WeatherResult

	resp, err := o.generator.Generate(ctx, ai.WeatherSnapshotRequest(location))
	if err != nil {
		result.Weather = models.WeatherSentinel(location)
	} else {
		result.Weather, err = o.normalizer.Weather(location, resp)
	}
	if err != nil {
		log.Error().Err(err).Str("location", location).Msg("Error loading weather")
		result.Status = models.StateFailed
		result.Error = err.Error()
	} else {
		result.Status = models.StateSucceeded
	}

	o.view.apply(ticket, func(s *Snapshot) { s.Weather = result })
	return result
}

// Search runs a live free-text search. A blank query clears the search
// without calling the service.
func (o *Orchestrator) Search(ctx context.Context, query string) models.SearchResult {
	log := logger.Get()
	query = strings.TrimSpace(query)

	ticket := o.sequencer.Next(ClassSearch)
	if query == "" {
		result := idleSearch("")
		o.view.apply(ticket, func(s *Snapshot) { s.Search = result })
		return result
	}

	o.view.apply(ticket, func(s *Snapshot) {
		s.Search = idleSearch(query)
		s.Search.Status = models.StateLoading
	})

	var result models.SearchResult
	resp, err := o.generator.Generate(ctx, ai.LiveSearchRequest(query))
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Search failed")
		result = idleSearch(query)
		result.Status = models.StateFailed
		result.Error = err.Error()
	} else {
		result = o.normalizer.Search(query, resp)
		result.Status = models.StateSucceeded
	}

	if !o.view.apply(ticket, func(s *Snapshot) { s.Search = result }) {
		log.Debug().Str("query", query).Msg("Discarding stale search result")
	}
	return result
}
