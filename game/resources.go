package game

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
)

type Resource string

const (
	Energy    Resource = "energy"
	Water     Resource = "water"
	Food      Resource = "food"
	Materials Resource = "materials"
	Knowledge Resource = "knowledge"
)

var AllResources = []Resource{Energy, Water, Food, Materials, Knowledge}

func (r Resource) IsValid() bool {
	for _, known := range AllResources {
		if r == known {
			return true
		}
	}
	return false
}

// Amounts holds a quantity per resource. Missing keys read as zero.
type Amounts map[Resource]float64

func (a Amounts) Clone() Amounts {
	result := make(Amounts, len(a))
	for resource, amount := range a {
		result[resource] = amount
	}
	return result
}

func (a Amounts) String() string {
	keys := make([]string, 0, len(a))
	for resource := range a {
		keys = append(keys, string(resource))
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%s:%g", key, a[Resource(key)])
	}
	return strings.Join(parts, " ")
}

// Effect is a per-day change of one resource contributed by a building.
type Effect struct {
	Resource Resource `yaml:"resource" json:"resource"`
	Rate     float64  `yaml:"rate" json:"rate"`
}

// Ledger tracks resource stocks, their limits and the daily rates that move
// them. Stocks never drop below zero or rise above their limit, except that
// Deduct only floors at zero.
type Ledger struct {
	amounts   Amounts
	limits    Amounts
	baseRates Amounts
	effects   []Effect
}

func NewLedger(config ResourceConfig) *Ledger {
	l := &Ledger{
		amounts:   make(Amounts, len(AllResources)),
		limits:    config.Limits.Clone(),
		baseRates: config.BaseRates.Clone(),
	}
	for _, resource := range AllResources {
		l.amounts[resource] = config.Starting[resource]
	}
	return l
}

func (l *Ledger) Amount(resource Resource) float64 {
	return l.amounts[resource]
}

func (l *Ledger) Amounts() Amounts {
	return l.amounts.Clone()
}

func (l *Ledger) Limits() Amounts {
	return l.limits.Clone()
}

func (l *Ledger) limit(resource Resource) float64 {
	if limit, ok := l.limits[resource]; ok {
		return limit
	}
	return math.Inf(1)
}

func (l *Ledger) clamp(resource Resource) {
	l.amounts[resource] = util.Clamp(l.amounts[resource], 0, l.limit(resource))
}

// Set replaces the stocks of the given resources, clamped to their limits.
func (l *Ledger) Set(amounts Amounts) {
	for resource, amount := range amounts {
		if !resource.IsValid() {
			continue
		}
		l.amounts[resource] = amount
		l.clamp(resource)
	}
}

// CanAfford is false if any cost names an unknown resource.
func (l *Ledger) CanAfford(cost Amounts) bool {
	for resource, amount := range cost {
		current, ok := l.amounts[resource]
		if !ok || current < amount {
			return false
		}
	}
	return true
}

func (l *Ledger) Deduct(cost Amounts) {
	for resource, amount := range cost {
		if _, ok := l.amounts[resource]; !ok {
			continue
		}
		l.amounts[resource] = math.Max(0, l.amounts[resource]-amount)
	}
}

func (l *Ledger) Add(amounts Amounts) {
	for resource, amount := range amounts {
		if _, ok := l.amounts[resource]; !ok {
			continue
		}
		l.amounts[resource] += amount
		l.clamp(resource)
	}
}

func (l *Ledger) ApplyEffect(effect Effect) {
	l.effects = append(l.effects, effect)
}

// RemoveEffect drops the first effect equal to the given one.
func (l *Ledger) RemoveEffect(effect Effect) bool {
	for i, candidate := range l.effects {
		if candidate == effect {
			l.effects = append(l.effects[:i], l.effects[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) ClearEffects() {
	l.effects = nil
}

func (l *Ledger) Effects() []Effect {
	result := make([]Effect, len(l.effects))
	copy(result, l.effects)
	return result
}

// Rates is the base rate plus every building effect, per day.
func (l *Ledger) Rates() Amounts {
	rates := l.baseRates.Clone()
	for _, effect := range l.effects {
		rates[effect.Resource] += effect.Rate
	}
	return rates
}

// Advance moves every stock by its rate times the elapsed days.
func (l *Ledger) Advance(days float64) {
	if days <= 0 {
		return
	}
	rates := l.Rates()
	for _, resource := range AllResources {
		l.amounts[resource] += rates[resource] * days
		l.clamp(resource)
	}
	util.LogGameDebug(fmt.Sprintf("[Ledger] Advanced %.2f days: %s", days, l.amounts))
}
