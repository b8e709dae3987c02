package analytics

import (
	"salon-service/internal/app/models"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestClassifyMetric(t *testing.T) {
	t.Run("Bare number is a scalar", func(t *testing.T) {
		metric, err := ClassifyMetric("bookings", json.RawMessage(`42`))
		assert.NoError(t, err)
		assert.Equal(t, models.MetricVariantScalar, metric.Variant)
		assert.Equal(t, float64(42), metric.Scalar)
		assert.Empty(t, metric.Pairs)
	})

	t.Run("Bare string is a scalar", func(t *testing.T) {
		metric, err := ClassifyMetric("topService", json.RawMessage(`"Corte"`))
		assert.NoError(t, err)
		assert.Equal(t, models.MetricVariantScalar, metric.Variant)
		assert.Equal(t, "Corte", metric.Scalar)
	})

	t.Run("Labeled object is a pair", func(t *testing.T) {
		metric, err := ClassifyMetric("revenue", json.RawMessage(`{"label":"Total","value":1250.5}`))
		assert.NoError(t, err)
		assert.Equal(t, models.MetricVariantPair, metric.Variant)
		assert.Len(t, metric.Pairs, 1)
		assert.Equal(t, "Total", metric.Pairs[0].Label)
		assert.Equal(t, 1250.5, metric.Pairs[0].Value)
	})

	t.Run("Name key works as the label", func(t *testing.T) {
		metric, err := ClassifyMetric("revenue", json.RawMessage(`{"name":"Total","value":10}`))
		assert.NoError(t, err)
		assert.Equal(t, models.MetricVariantPair, metric.Variant)
		assert.Equal(t, "Total", metric.Pairs[0].Label)
	})

	t.Run("List of labeled objects is pairs", func(t *testing.T) {
		raw := json.RawMessage(`[{"label":"Maria","value":12},{"label":"Joana","value":8}]`)
		metric, err := ClassifyMetric("bookingsByEmployee", raw)
		assert.NoError(t, err)
		assert.Equal(t, models.MetricVariantPairs, metric.Variant)
		assert.Len(t, metric.Pairs, 2)
		assert.Equal(t, "Joana", metric.Pairs[1].Label)
		assert.Equal(t, float64(8), metric.Pairs[1].Value)
	})

	t.Run("Leading whitespace is tolerated", func(t *testing.T) {
		metric, err := ClassifyMetric("bookings", json.RawMessage("  7"))
		assert.NoError(t, err)
		assert.Equal(t, models.MetricVariantScalar, metric.Variant)
	})

	t.Run("Object without a value is rejected", func(t *testing.T) {
		_, err := ClassifyMetric("broken", json.RawMessage(`{"label":"Total"}`))
		assert.Error(t, err)
	})

	t.Run("List with a malformed element is rejected", func(t *testing.T) {
		_, err := ClassifyMetric("broken", json.RawMessage(`[{"label":"ok","value":1},{"value":2}]`))
		assert.Error(t, err)
	})

	t.Run("Empty payload is rejected", func(t *testing.T) {
		_, err := ClassifyMetric("broken", json.RawMessage(``))
		assert.Error(t, err)
	})
}
