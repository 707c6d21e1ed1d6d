package entities

// ProducerContext is the producer snapshot pricing decisions are made
// against. Supplied by the identity/reference-data boundary and trusted here.
type ProducerContext struct {
	ProducerID  string  `json:"producer_id"`
	Hectares    float64 `json:"hectares"`
	MunicipioID string  `json:"municipio_id"`
}
