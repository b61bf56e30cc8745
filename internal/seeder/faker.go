package seeder

import (
	"math"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/brianvoe/gofakeit/v6"
)

// DataGenerator is the generation context threaded through every table
// generator. It owns the random source and the date range of the run.
type DataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
	start time.Time
	end   time.Time
}

// NewDataGenerator returns a generator for the [start, end] range. A zero
// seed picks one from the clock; Seed reports the value actually used.
func NewDataGenerator(seed int64, start, end time.Time) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		faker: gofakeit.New(seed),
		seed:  seed,
		start: start.UTC(),
		end:   end.UTC(),
	}
}

func (g *DataGenerator) Seed() int64 {
	return g.seed
}

func (g *DataGenerator) Start() time.Time {
	return g.start
}

func (g *DataGenerator) End() time.Time {
	return g.end
}

// IntRange returns a uniform integer in [min, max].
func (g *DataGenerator) IntRange(min, max int) int {
	return g.faker.IntRange(min, max)
}

// FloatRange returns a uniform float in [min, max).
func (g *DataGenerator) FloatRange(min, max float64) float64 {
	return g.faker.Float64Range(min, max)
}

// RoundedFloat is FloatRange rounded to the given number of decimal places.
func (g *DataGenerator) RoundedFloat(min, max float64, places int) float64 {
	return Round(g.FloatRange(min, max), places)
}

func (g *DataGenerator) Choice(options []string) string {
	return g.faker.RandomString(options)
}

func (g *DataGenerator) Bool() bool {
	return g.faker.Bool()
}

// Chance flips a coin that lands true when a uniform draw in [0, 1) exceeds threshold.
func (g *DataGenerator) Chance(threshold float64) bool {
	return g.faker.Float64Range(0, 1) > threshold
}

// Nullable returns fn() when the coin flip passes threshold and nil otherwise.
func (g *DataGenerator) Nullable(threshold float64, fn func() interface{}) interface{} {
	if !g.Chance(threshold) {
		return nil
	}
	return fn()
}

func (g *DataGenerator) Country() string {
	return g.faker.Country()
}

func (g *DataGenerator) City() string {
	return g.faker.City()
}

func (g *DataGenerator) URI() string {
	return g.faker.URL()
}

func (g *DataGenerator) Word() string {
	return g.faker.Word()
}

func (g *DataGenerator) Sentence(words int) string {
	return g.faker.Sentence(words)
}

// Code fills a pattern where '?' becomes a letter and '#' a digit.
func (g *DataGenerator) Code(pattern string) string {
	return g.faker.Numerify(g.faker.Lexify(pattern))
}

// DateTime returns a timestamp with second precision inside the run's range.
func (g *DataGenerator) DateTime() time.Time {
	return g.faker.DateRange(g.start, g.end).UTC().Truncate(time.Second)
}

// Date returns a calendar date inside the run's range.
func (g *DataGenerator) Date() types.Date {
	return types.NewDate(g.DateTime())
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
