package models

const (
	MetricVariantScalar = "scalar"
	MetricVariantPair   = "pair"
	MetricVariantPairs  = "pairs"
)

type MetricPair struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Metric is an analytics payload tagged with an explicit variant
// discriminator so consumers never have to sniff the shape. Exactly one of
// Scalar/Pairs is meaningful depending on Variant; a single pair is reported
// as Variant "pair" with one element in Pairs.
type Metric struct {
	Name    string       `json:"name"`
	Variant string       `json:"variant"`
	Scalar  interface{}  `json:"scalar,omitempty"`
	Pairs   []MetricPair `json:"pairs,omitempty"`
}
