// Package telemetry exports per-tick engine counters through OpenTelemetry
// The global meter is a no-op until the process installs a provider
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/status"
)

const instrumentationName = "github.com/lixenwraith/starfall/telemetry"

// Meter returns the global meter for this package
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics feeds otel instruments from engine reports
// Counters advance by each tick's stat diff, gauges read the status registry
// on collection so the tick path never blocks on an exporter
type Metrics struct {
	ticks         metric.Int64Counter
	fired         metric.Int64Counter
	droppedFires  metric.Int64Counter
	droppedSpawns metric.Int64Counter
	kills         metric.Int64Counter
	escaped       metric.Int64Counter
	anomalies     metric.Int64Counter
	tickDuration  metric.Float64Histogram

	entities metric.Int64ObservableGauge
	wave     metric.Int64ObservableGauge
	score    metric.Int64ObservableGauge

	reg *status.Registry
}

// New registers every instrument on m
// reg may be nil, in which case no gauges are observed
func New(m metric.Meter, reg *status.Registry) (*Metrics, error) {
	t := &Metrics{reg: reg}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&t.ticks, "starfall.ticks", "Ticks advanced"},
		{&t.fired, "starfall.shots.fired", "Projectiles spawned"},
		{&t.droppedFires, "starfall.shots.dropped", "Fire requests dropped on a full projectile pool"},
		{&t.droppedSpawns, "starfall.spawns.dropped", "Scheduled spawns dropped on a full enemy pool"},
		{&t.kills, "starfall.enemies.destroyed", "Enemies destroyed"},
		{&t.escaped, "starfall.enemies.escaped", "Enemies that left the arena"},
		{&t.anomalies, "starfall.anomalies", "Entities removed for non-finite transforms"},
	}
	var err error
	for _, c := range counters {
		*c.dst, err = m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
	}

	t.tickDuration, err = m.Float64Histogram(
		"starfall.tick.duration",
		metric.WithDescription("Wall time spent in one tick"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick duration histogram: %w", err)
	}

	if reg == nil {
		return t, nil
	}

	t.entities, err = m.Int64ObservableGauge(
		"starfall.entities.active",
		metric.WithDescription("Active entities per pool"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating entities gauge: %w", err)
	}
	t.wave, err = m.Int64ObservableGauge(
		"starfall.wave.index",
		metric.WithDescription("Current wave index"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wave gauge: %w", err)
	}
	t.score, err = m.Int64ObservableGauge(
		"starfall.score",
		metric.WithDescription("Current match score"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score gauge: %w", err)
	}

	_, err = m.RegisterCallback(t.observe, t.entities, t.wave, t.score)
	if err != nil {
		return nil, fmt.Errorf("registering gauge callback: %w", err)
	}
	return t, nil
}

// poolGauges maps status keys to the pool attribute value
var poolGauges = []struct {
	key  string
	pool string
}{
	{status.KeyProjectiles, "projectile"},
	{status.KeyEnemies, "enemy"},
	{status.KeyEffects, "effect"},
}

func (t *Metrics) observe(_ context.Context, o metric.Observer) error {
	for _, g := range poolGauges {
		if v, ok := t.reg.Ints.Lookup(g.key); ok {
			o.ObserveInt64(t.entities, v.Load(), metric.WithAttributes(attribute.String("pool", g.pool)))
		}
	}
	if v, ok := t.reg.Ints.Lookup(status.KeyWaveIndex); ok {
		o.ObserveInt64(t.wave, v.Load())
	}
	if v, ok := t.reg.Ints.Lookup(status.KeyScore); ok {
		o.ObserveInt64(t.score, v.Load())
	}
	return nil
}

// TickCompleted implements engine.Observer
func (t *Metrics) TickCompleted(r *engine.Report) {
	if !r.Advanced {
		return
	}
	ctx := context.Background()
	t.ticks.Add(ctx, 1)
	add(ctx, t.fired, r.Diff.Fired)
	add(ctx, t.droppedFires, r.Diff.DroppedFires)
	add(ctx, t.droppedSpawns, r.Diff.DroppedSpawns)
	add(ctx, t.kills, r.Diff.Kills)
	add(ctx, t.escaped, r.Diff.Escaped)
	add(ctx, t.anomalies, r.Diff.Anomalies)
	t.tickDuration.Record(ctx, r.Duration.Seconds())
}

func add(ctx context.Context, c metric.Int64Counter, n int) {
	if n > 0 {
		c.Add(ctx, int64(n))
	}
}
