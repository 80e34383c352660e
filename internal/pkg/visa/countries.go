package visa

import (
	"sort"
	"strings"
)

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var countries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "IT", Name: "Italy"},
	{Code: "ES", Name: "Spain"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "CH", Name: "Switzerland"},
	{Code: "JP", Name: "Japan"},
	{Code: "KR", Name: "South Korea"},
	{Code: "SG", Name: "Singapore"},
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "TR", Name: "Turkey"},
	{Code: "IN", Name: "India"},
	{Code: "CN", Name: "China"},
	{Code: "TH", Name: "Thailand"},
	{Code: "MY", Name: "Malaysia"},
	{Code: "ID", Name: "Indonesia"},
	{Code: "PH", Name: "Philippines"},
	{Code: "VN", Name: "Vietnam"},
	{Code: "BD", Name: "Bangladesh"},
	{Code: "PK", Name: "Pakistan"},
	{Code: "LK", Name: "Sri Lanka"},
}

var byCode = func() map[string]Country {
	index := make(map[string]Country, len(countries))
	for _, c := range countries {
		index[c.Code] = c
	}

	return index
}()

// Countries returns the supported countries sorted by name.
func Countries() []Country {
	sorted := make([]Country, len(countries))
	copy(sorted, countries)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}

// LookupCountry finds a supported country by its ISO 3166-1 alpha-2 code.
func LookupCountry(code string) (Country, bool) {
	c, ok := byCode[strings.ToUpper(code)]
	return c, ok
}
