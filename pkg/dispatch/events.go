package dispatch

// FetchRequestData addresses one source URL
type FetchRequestData struct {
	URL string `json:"url"`
}

// FetchRequest is the single-URL fetch instruction published on demand
type FetchRequest struct {
	Data FetchRequestData `json:"data"`
}

// FetchRequestBatch is one scheduled fetch instruction covering a batch of
// distinct URLs from a rate bucket. It is published with an expiration equal
// to the bucket's rate so a redundant request self-expires before the next
// scheduled run.
type FetchRequestBatch struct {
	RateSeconds int                `json:"rateSeconds"`
	Timestamp   int64              `json:"timestamp"`
	Data        []FetchRequestData `json:"data"`
}

// NewFetchRequestBatch converts a URLBatch into its wire shape
func NewFetchRequestBatch(b URLBatch) FetchRequestBatch {
	data := make([]FetchRequestData, len(b.URLs))
	for i, u := range b.URLs {
		data[i] = FetchRequestData{URL: u}
	}
	return FetchRequestBatch{RateSeconds: b.RateSeconds, Timestamp: b.Timestamp, Data: data}
}
