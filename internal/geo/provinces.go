// Package geo holds the static Mindanao city/province table used by the
// billing form. Delivery coverage is limited to these cities.
package geo

// cityProvinces is a closed mapping; there is no dynamic extension.
var cityProvinces = map[string]string{
	"Davao City":           "Davao del Sur",
	"Panabo City":          "Davao del Norte",
	"Tagum City":           "Davao del Norte",
	"Samal City":           "Davao del Norte",
	"Digos City":           "Davao del Sur",
	"Mati City":            "Davao Oriental",
	"Cagayan de Oro City":  "Misamis Oriental",
	"Iligan City":          "Lanao del Norte",
	"Malaybalay City":      "Bukidnon",
	"Valencia City":        "Bukidnon",
	"Oroquieta City":       "Misamis Occidental",
	"Ozamis City":          "Misamis Occidental",
	"Tangub City":          "Misamis Occidental",
	"Zamboanga City":       "Zamboanga del Sur",
	"Pagadian City":        "Zamboanga del Sur",
	"Dipolog City":         "Zamboanga del Norte",
	"Dapitan City":         "Zamboanga del Norte",
	"General Santos City":  "South Cotabato",
	"Koronadal City":       "South Cotabato",
	"Tacurong City":        "Sultan Kudarat",
	"Kidapawan City":       "Cotabato",
	"Butuan City":          "Agusan del Norte",
	"Cabadbaran City":      "Agusan del Norte",
	"Bayugan City":         "Agusan del Sur",
	"Surigao City":         "Surigao del Norte",
	"Tandag City":          "Surigao del Sur",
	"Bislig City":          "Surigao del Sur",
	"Cotabato City":        "Maguindanao",
	"Marawi City":          "Lanao del Sur",
}

// RegionGroup is a display grouping of cities, in dropdown order.
type RegionGroup struct {
	Region string   `json:"region"`
	Cities []string `json:"cities"`
}

var regions = []RegionGroup{
	{Region: "Davao Region", Cities: []string{"Davao City", "Panabo City", "Tagum City", "Samal City", "Digos City", "Mati City"}},
	{Region: "Northern Mindanao", Cities: []string{"Cagayan de Oro City", "Iligan City", "Malaybalay City", "Valencia City", "Oroquieta City", "Ozamis City", "Tangub City"}},
	{Region: "Zamboanga Peninsula", Cities: []string{"Zamboanga City", "Pagadian City", "Dipolog City", "Dapitan City"}},
	{Region: "SOCCSKSARGEN", Cities: []string{"General Santos City", "Koronadal City", "Tacurong City", "Kidapawan City"}},
	{Region: "CARAGA Region", Cities: []string{"Butuan City", "Cabadbaran City", "Bayugan City", "Surigao City", "Tandag City", "Bislig City"}},
	{Region: "BARMM", Cities: []string{"Cotabato City", "Marawi City"}},
}

// ProvinceFor returns the province for a city, and whether the city is in
// the coverage table.
func ProvinceFor(city string) (string, bool) {
	province, ok := cityProvinces[city]
	return province, ok
}

// Regions returns the city dropdown groupings. Callers must not mutate the
// returned slices.
func Regions() []RegionGroup {
	return regions
}
