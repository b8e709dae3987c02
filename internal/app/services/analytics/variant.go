package analytics

import (
	"bytes"
	"fmt"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type rawPair struct {
	Label string   `json:"label"`
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

func (p rawPair) toPair() (models.MetricPair, bool) {
	label := p.Label
	if label == "" {
		label = p.Name
	}
	if label == "" || p.Value == nil {
		return models.MetricPair{}, false
	}
	return models.MetricPair{Label: label, Value: *p.Value}, true
}

// ClassifyMetric tags an upstream analytics payload with an explicit variant
// discriminator at ingestion time, so consumers never shape-sniff. Accepted
// shapes: a bare scalar, one labeled value object, or a list of labeled
// value objects. Anything else is rejected.
func ClassifyMetric(name string, raw json.RawMessage) (models.Metric, error) {
	metric := models.Metric{Name: name}
	raw = json.RawMessage(bytes.TrimSpace(raw))
	if len(raw) == 0 {
		return metric, fmt.Errorf("%s: %s", constvars.ErrDevAnalyticsUnexpectedShape, "empty payload")
	}

	switch raw[0] {
	case '[':
		var rawPairs []rawPair
		if err := json.Unmarshal(raw, &rawPairs); err != nil {
			return metric, fmt.Errorf("%s: %w", constvars.ErrDevAnalyticsUnexpectedShape, err)
		}
		pairs := make([]models.MetricPair, 0, len(rawPairs))
		for _, candidate := range rawPairs {
			pair, ok := candidate.toPair()
			if !ok {
				return metric, fmt.Errorf("%s: list element without label/value", constvars.ErrDevAnalyticsUnexpectedShape)
			}
			pairs = append(pairs, pair)
		}
		metric.Variant = models.MetricVariantPairs
		metric.Pairs = pairs
		return metric, nil
	case '{':
		var candidate rawPair
		if err := json.Unmarshal(raw, &candidate); err != nil {
			return metric, fmt.Errorf("%s: %w", constvars.ErrDevAnalyticsUnexpectedShape, err)
		}
		pair, ok := candidate.toPair()
		if !ok {
			return metric, fmt.Errorf("%s: object without label/value", constvars.ErrDevAnalyticsUnexpectedShape)
		}
		metric.Variant = models.MetricVariantPair
		metric.Pairs = []models.MetricPair{pair}
		return metric, nil
	default:
		var scalar interface{}
		if err := json.Unmarshal(raw, &scalar); err != nil {
			return metric, fmt.Errorf("%s: %w", constvars.ErrDevAnalyticsUnexpectedShape, err)
		}
		metric.Variant = models.MetricVariantScalar
		metric.Scalar = scalar
		return metric, nil
	}
}
