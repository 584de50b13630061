package dashboard

import (
	"math"
	"sort"
	"strings"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/responses"
)

// locationDimension picks one column of a provider location. blank names the
// bucket of a linked location that leaves that column empty.
type locationDimension struct {
	pick  func(models.ProviderLocation) *string
	blank string
}

var (
	byDepartment = locationDimension{
		pick:  func(location models.ProviderLocation) *string { return location.Departamento },
		blank: constvars.DashboardNoDepartmentLabel,
	}
	byMunicipality = locationDimension{
		pick:  func(location models.ProviderLocation) *string { return location.Municipio },
		blank: constvars.DashboardNoMunicipalityLabel,
	}
)

// GroupByLocation counts providers per department or per municipality.
// Slices are ordered by count descending, then name; limit <= 0 keeps all.
// Percentages are relative to every provider, not only the ones returned.
func GroupByLocation(locations []models.ProviderLocation, dimension locationDimension, limit int) []responses.LocationSlice {
	counts := make(map[string]int)
	for _, location := range locations {
		counts[dimension.label(location)]++
	}
	return rankCounts(counts, len(locations), limit)
}

func (d locationDimension) label(location models.ProviderLocation) string {
	if !location.Linked {
		return constvars.DashboardNoLocationLabel
	}
	return labelOr(d.pick(location), d.blank)
}

// GroupByStatus buckets reports by estado, keeping each bucket's reports in
// repository order. A non-empty filter keeps only the matching bucket;
// totals and percentages still cover every report.
func GroupByStatus(reports []models.Report, filter string) *responses.ReportsByStatus {
	counts := make(map[string]int)
	members := make(map[string][]responses.ReportSummary)
	for _, report := range reports {
		status := labelOr(report.Estado, constvars.DashboardNoStatusLabel)
		counts[status]++
		members[status] = append(members[status], responses.ReportSummary{
			ID:              report.ID,
			Codigo:          report.Codigo,
			FechaCreacion:   report.FechaCreacion,
			PrestadorNombre: report.PrestadorNombre,
		})
	}

	ranked := rankCounts(counts, len(reports), 0)
	result := &responses.ReportsByStatus{
		Total:    len(reports),
		Statuses: make([]string, 0, len(ranked)),
		Groups:   make([]responses.ReportStatusGroup, 0, len(ranked)),
	}
	for _, slice := range ranked {
		result.Statuses = append(result.Statuses, slice.Name)
		if filter != "" && filter != slice.Name {
			continue
		}
		result.Groups = append(result.Groups, responses.ReportStatusGroup{
			Estado:     slice.Name,
			Count:      slice.Count,
			Percentage: slice.Percentage,
			Reports:    members[slice.Name],
		})
	}
	return result
}

func rankCounts(counts map[string]int, total, limit int) []responses.LocationSlice {
	slices := make([]responses.LocationSlice, 0, len(counts))
	for name, count := range counts {
		slices = append(slices, responses.LocationSlice{
			Name:       name,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Name < slices[j].Name
	})

	if limit > 0 && len(slices) > limit {
		slices = slices[:limit]
	}
	return slices
}

func labelOr(name *string, fallback string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return fallback
	}
	return strings.TrimSpace(*name)
}

// percentage rounds to two decimals.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*10000/float64(total)) / 100
}
