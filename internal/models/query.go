package models

// QueryRequest is the body of a natural language location query.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// Coordinate is a simplified lat/lng pair in a query result.
type Coordinate struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Person string  `json:"person,omitempty"`
}

// QueryResult is the structured answer to one natural language query, as
// returned by the external query service. A new result replaces the prior
// one wholesale; there is no incremental merge.
type QueryResult struct {
	Person       string            `json:"person,omitempty"`
	Persons      []string          `json:"persons,omitempty"`
	TimePeriod   string            `json:"time_period,omitempty"`
	Locations    []LocationSample  `json:"locations"`
	Summary      string            `json:"summary"`
	Coordinates  []Coordinate      `json:"coordinates,omitempty"`
	PersonColors map[string]string `json:"person_colors,omitempty"`
}

// GroupByPerson buckets the result's samples by attributed person,
// preserving input order within each bucket. The returned slice lists
// persons in first-appearance order.
func (r *QueryResult) GroupByPerson() (map[string][]LocationSample, []string) {
	groups := make(map[string][]LocationSample)
	var order []string
	for _, loc := range r.Locations {
		person := loc.AttributedPerson(r.Person)
		if _, seen := groups[person]; !seen {
			order = append(order, person)
		}
		groups[person] = append(groups[person], loc)
	}
	return groups, order
}
