package models

import "time"

// FileResult is the finished output of one input file: its identity plus the keyed aggregates.
//
// Example JSON (abridged):
//
//	{
//	  "id": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "source": "RxPacketTrace.txt",
//	  "label": "harq",
//	  "format": "rx-trace",
//	  "linesRead": 1201,
//	  "aggregates": {
//	    "blockError": {
//	      "DL-5": {"bler": {"count": 2, "mean": 0.15}, "sinrLinear": {"count": 2, "mean": 55}}
//	    }
//	  },
//	  "diagnostics": []
//	}
type FileResult struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	Label       string          `json:"label"`
	Format      TraceFormat     `json:"format"`
	CreatedAt   time.Time       `json:"createdAt"`
	LinesRead   int             `json:"linesRead"`
	Aggregates  *FileAggregates `json:"aggregates"`
	Diagnostics []Diagnostic    `json:"diagnostics"`
}

// ResultSet keeps file results in input order so labelled series stay comparable.
type ResultSet struct {
	Results []*FileResult `json:"results"`
}

func (s *ResultSet) Add(result *FileResult) {
	s.Results = append(s.Results, result)
}

// Get returns the result for source, if any.
func (s *ResultSet) Get(source string) (*FileResult, bool) {
	for _, r := range s.Results {
		if r.Source == source {
			return r, true
		}
	}
	return nil, false
}

func (s *ResultSet) Labels() []string {
	labels := make([]string, 0, len(s.Results))
	for _, r := range s.Results {
		labels = append(labels, r.Label)
	}
	return labels
}
