package catalog

// Record is one artwork loaded from the catalog CSV. Fields hold trimmed
// source text; Location is lowercased. Price stays text: it is inserted
// into markup verbatim and never used arithmetically.
type Record struct {
	Title       string
	Location    string
	Filename    string
	Medium      string
	Price       string
	Description string
	Featured    bool

	// Row is the 1-based data row index (header excluded), kept for
	// diagnostics.
	Row int
}

// Featured returns the subset of records flagged as featured, preserving
// source order.
func Featured(records []Record) []Record {
	var out []Record
	for _, rec := range records {
		if rec.Featured {
			out = append(out, rec)
		}
	}
	return out
}

// GroupByLocation partitions records into one bucket per key, preserving
// source order within each bucket. Keys give the bucket set; records with
// other locations are ignored.
func GroupByLocation(records []Record, keys []string) map[string][]Record {
	buckets := make(map[string][]Record, len(keys))
	allowed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		allowed[key] = struct{}{}
	}
	for _, rec := range records {
		if _, ok := allowed[rec.Location]; ok {
			buckets[rec.Location] = append(buckets[rec.Location], rec)
		}
	}
	return buckets
}
