package recipe

import (
	"sort"

	"github.com/an-ivanov/nansat/pixfunc"
)

// Built-in recipes.
var recipes = map[string]Recipe{
	// Wind speed and direction from eastward (band 1) and northward
	// (band 2) components, as for HIRLAM model output.
	"wind": {
		Name: "wind",
		Bands: []DerivedBand{
			{Name: "windspeed", Func: "UVToMagnitude", Sources: []string{"1", "2"},
				Metadata: map[string]string{"wkv": "wind_speed", "units": "m/s"}},
			{Name: "winddirection", Func: "UVToDirectionFrom", Sources: []string{"1", "2"},
				Metadata: map[string]string{"wkv": "wind_from_direction", "units": "degree"}},
			{Name: "winddirection_to", Func: "UVToDirectionTo", Sources: []string{"1", "2"},
				Metadata: map[string]string{"wkv": "wind_to_direction", "units": "degree"}},
		},
		Quicklook: Quicklook{Widths: []int{512, 1024}, Formats: []string{"png"}},
	},
	// Incidence angle from beta0 (band 1) and sigma0 HH (band 2), then
	// sigma0 VV from sigma0 HH and that angle, as for RADARSAT-2.
	"radarsat2": {
		Name: "radarsat2",
		Bands: []DerivedBand{
			{Name: "incidence_angle", Func: "BetaSigmaToIncidence", Sources: []string{"1", "2"},
				Metadata: map[string]string{"wkv": "angle_of_incidence", "units": "degree"}},
			{Name: "sigma0_VV", Func: "Sigma0HHIncidenceToSigma0VV", Sources: []string{"2", "incidence_angle"},
				Metadata: map[string]string{"wkv": "surface_backwards_scattering_coefficient_of_radar_wave", "polarization": "VV"}},
		},
		Quicklook: Quicklook{Widths: []int{1024}, Formats: []string{"jpeg"}, Quality: 80},
	},
	// Amplitude, phase and power of a complex band.
	"complex": {
		Name: "complex",
		Bands: []DerivedBand{
			{Name: "amplitude", Func: "mod", Sources: []string{"1"}},
			{Name: "phase", Func: "phase", Sources: []string{"1"}},
			{Name: "intensity", Func: "intensity", Sources: []string{"1"}},
			{Name: "intensity_log10", Func: "log10", Sources: []string{"1"}},
		},
	},
	"sum": {
		Name: "sum",
		Bands: []DerivedBand{
			{Name: "sum", Func: "sum", Sources: []string{"1", "2"}, DataType: pixfunc.Float64},
		},
	},
}

// Get returns a built-in recipe by name. The returned recipe does not share
// memory with the table.
func Get(name string) (Recipe, bool) {
	r, ok := recipes[name]
	if !ok {
		return Recipe{}, false
	}
	r.Bands = append([]DerivedBand(nil), r.Bands...)
	r.Quicklook.Widths = append([]int(nil), r.Quicklook.Widths...)
	r.Quicklook.Formats = append([]string(nil), r.Quicklook.Formats...)
	for i := range r.Bands {
		r.Bands[i].Sources = append([]string(nil), r.Bands[i].Sources...)
	}
	return r, true
}

// Names lists the built-in recipes alphabetically.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
