// Package dashboard holds the view-state core of the analytics dashboard:
// the orchestrator coordinating the per-resource fetches, the derived
// aggregates, the sortable table state and the text renderer.
package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"nola/internal/client"
	"nola/pkg/models"
)

// State is one resource's view-state triple. Data is non-zero only when
// Err is nil and Loading is false.
type State[T any] struct {
	Data    T
	Err     error
	Loading bool
}

// Snapshot is an immutable copy of the whole dashboard's state plus the
// aggregates derived from it.
type Snapshot struct {
	General  State[*models.MetricSnapshot]
	Revenue  State[[]models.RevenuePoint]
	Products State[[]models.ProductEntry]
	Hourly   State[[]models.HourlyEntry]

	Period models.Period

	// Loading is the OR of the per-resource loading flags. Err is the
	// first non-nil error in resource priority order: general, revenue,
	// products, hourly.
	Loading bool
	Err     error

	PeakHour       string
	OrderedRevenue []models.RevenuePoint
}

// Orchestrator coordinates the dashboard's fetches and owns the
// per-resource view state. Every issued fetch carries a generation tag;
// a completion only commits while its tag is still the latest for that
// resource, so a slow superseded response can never overwrite newer state
// (last-issued-wins).
type Orchestrator struct {
	client *client.Client

	mu       sync.Mutex
	general  State[*models.MetricSnapshot]
	revenue  State[[]models.RevenuePoint]
	products State[[]models.ProductEntry]
	hourly   State[[]models.HourlyEntry]
	period   models.Period

	generalGen  uint64
	revenueGen  uint64
	productsGen uint64
	hourlyGen   uint64

	updates chan struct{}
}

// NewOrchestrator creates an orchestrator fetching through c, with revenue
// initially windowed to period.
func NewOrchestrator(c *client.Client, period models.Period) *Orchestrator {
	if !period.Valid() {
		period = models.Period7Days
	}
	return &Orchestrator{
		client:  c,
		period:  period,
		updates: make(chan struct{}, 1),
	}
}

// Updates signals after every state commit. The channel is never closed
// and drops signals when the consumer lags; consumers re-read Snapshot.
func (o *Orchestrator) Updates() <-chan struct{} {
	return o.updates
}

func (o *Orchestrator) notify() {
	select {
	case o.updates <- struct{}{}:
	default:
	}
}

// Load starts all tracked resources' fetches
func (o *Orchestrator) Load(ctx context.Context) {
	o.startGeneral(ctx)
	o.startRevenue(ctx)
	o.startProducts(ctx)
	o.startHourly(ctx)
}

// Reload re-issues one resource's fetch, resetting its triple. Revenue
// reloads with the current period.
func (o *Orchestrator) Reload(ctx context.Context, resource client.Resource) {
	switch resource {
	case client.ResourceGeneral:
		o.startGeneral(ctx)
	case client.ResourceRevenue:
		o.startRevenue(ctx)
	case client.ResourceProducts:
		o.startProducts(ctx)
	case client.ResourceHourly:
		o.startHourly(ctx)
	}
}

// SetPeriod switches the revenue window and re-fetches it. Any in-flight
// revenue fetch is superseded; its eventual result is dropped.
func (o *Orchestrator) SetPeriod(ctx context.Context, period models.Period) {
	if !period.Valid() {
		return
	}
	o.mu.Lock()
	o.period = period
	o.mu.Unlock()
	o.startRevenue(ctx)
}

func (o *Orchestrator) startGeneral(ctx context.Context) {
	o.mu.Lock()
	o.generalGen++
	gen := o.generalGen
	o.general = State[*models.MetricSnapshot]{Loading: true}
	o.mu.Unlock()
	o.notify()

	go func() {
		data, err := o.client.FetchGeneralMetrics(ctx)
		o.commitGeneral(gen, data, err)
	}()
}

func (o *Orchestrator) commitGeneral(gen uint64, data *models.MetricSnapshot, err error) {
	o.mu.Lock()
	if gen != o.generalGen {
		o.mu.Unlock()
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("general metrics fetch failed")
		o.general = State[*models.MetricSnapshot]{Err: err}
	} else {
		o.general = State[*models.MetricSnapshot]{Data: data}
	}
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) startRevenue(ctx context.Context) {
	o.mu.Lock()
	o.revenueGen++
	gen := o.revenueGen
	period := o.period
	o.revenue = State[[]models.RevenuePoint]{Loading: true}
	o.mu.Unlock()
	o.notify()

	go func() {
		data, err := o.client.FetchRevenueByPeriod(ctx, period)
		o.commitRevenue(gen, data, err)
	}()
}

func (o *Orchestrator) commitRevenue(gen uint64, data []models.RevenuePoint, err error) {
	o.mu.Lock()
	if gen != o.revenueGen {
		o.mu.Unlock()
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("revenue fetch failed")
		o.revenue = State[[]models.RevenuePoint]{Err: err}
	} else {
		o.revenue = State[[]models.RevenuePoint]{Data: data}
	}
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) startProducts(ctx context.Context) {
	o.mu.Lock()
	o.productsGen++
	gen := o.productsGen
	o.products = State[[]models.ProductEntry]{Loading: true}
	o.mu.Unlock()
	o.notify()

	go func() {
		data, err := o.client.FetchTopProducts(ctx)
		o.commitProducts(gen, data, err)
	}()
}

func (o *Orchestrator) commitProducts(gen uint64, data []models.ProductEntry, err error) {
	o.mu.Lock()
	if gen != o.productsGen {
		o.mu.Unlock()
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("top products fetch failed")
		o.products = State[[]models.ProductEntry]{Err: err}
	} else {
		o.products = State[[]models.ProductEntry]{Data: data}
	}
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) startHourly(ctx context.Context) {
	o.mu.Lock()
	o.hourlyGen++
	gen := o.hourlyGen
	o.hourly = State[[]models.HourlyEntry]{Loading: true}
	o.mu.Unlock()
	o.notify()

	go func() {
		data, err := o.client.FetchHourlyVolume(ctx)
		o.commitHourly(gen, data, err)
	}()
}

func (o *Orchestrator) commitHourly(gen uint64, data []models.HourlyEntry, err error) {
	o.mu.Lock()
	if gen != o.hourlyGen {
		o.mu.Unlock()
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("hourly volume fetch failed")
		o.hourly = State[[]models.HourlyEntry]{Err: err}
	} else {
		o.hourly = State[[]models.HourlyEntry]{Data: data}
	}
	o.mu.Unlock()
	o.notify()
}

// Snapshot returns a consistent copy of the current state with the derived
// aggregates recomputed from it.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	snap := Snapshot{
		General:  o.general,
		Revenue:  o.revenue,
		Products: o.products,
		Hourly:   o.hourly,
		Period:   o.period,
	}
	o.mu.Unlock()

	snap.Loading = snap.General.Loading || snap.Revenue.Loading ||
		snap.Products.Loading || snap.Hourly.Loading

	for _, err := range []error{snap.General.Err, snap.Revenue.Err, snap.Products.Err, snap.Hourly.Err} {
		if err != nil {
			snap.Err = err
			break
		}
	}

	snap.PeakHour = PeakHour(snap.Hourly.Data)
	snap.OrderedRevenue = OrderedRevenue(snap.Revenue.Data)

	return snap
}
