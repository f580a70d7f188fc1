package domain

// RawElement is one tagged element returned by the external geodata
// source: a coordinate plus free-form key/value tags. Classification into
// a SpotType happens downstream.
type RawElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}
