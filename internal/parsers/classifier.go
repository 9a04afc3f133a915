package parsers

import (
	"strings"

	"trace-analytics/internal/models"
)

// familyMarkers lists, per family, the substrings that must all be present on a line.
var familyMarkers = []struct {
	family  models.Family
	markers []string
}{
	{family: models.FamilyByteCount, markers: []string{"received bytes for UE "}},
	{family: models.FamilyBlockError, markers: []string{"TBLER"}},
	{family: models.FamilyBeamGain, markers: []string{"TxId ", "RxBeam ", "g="}},
}

// Classify returns every metric family a text log line reports.
// Each family is tested independently, so one line may match several; most lines match none.
func Classify(line string) []models.Family {
	var families []models.Family
	for _, fm := range familyMarkers {
		if containsAll(line, fm.markers) {
			families = append(families, fm.family)
		}
	}
	return families
}

func containsAll(line string, markers []string) bool {
	for _, m := range markers {
		if !strings.Contains(line, m) {
			return false
		}
	}
	return true
}
