package estimate

import (
	"sort"
	"strings"

	"courier-network/internal/entities"
)

// cityCoordinates центры крупных городов, по которым адрес резолвится без геокодера.
var cityCoordinates = map[string]entities.Coordinates{
	"mumbai":             {Lat: 19.0760, Lng: 72.8777},
	"delhi":              {Lat: 28.7041, Lng: 77.1025},
	"new delhi":          {Lat: 28.6139, Lng: 77.2090},
	"bangalore":          {Lat: 12.9716, Lng: 77.5946},
	"bengaluru":          {Lat: 12.9716, Lng: 77.5946},
	"hyderabad":          {Lat: 17.3850, Lng: 78.4867},
	"chennai":            {Lat: 13.0827, Lng: 80.2707},
	"kolkata":            {Lat: 22.5726, Lng: 88.3639},
	"pune":               {Lat: 18.5204, Lng: 73.8567},
	"ahmedabad":          {Lat: 23.0225, Lng: 72.5714},
	"jaipur":             {Lat: 26.9124, Lng: 75.7873},
	"surat":              {Lat: 21.1702, Lng: 72.8311},
	"lucknow":            {Lat: 26.8467, Lng: 80.9462},
	"kanpur":             {Lat: 26.4499, Lng: 80.3319},
	"nagpur":             {Lat: 21.1458, Lng: 79.0882},
	"indore":             {Lat: 22.7196, Lng: 75.8577},
	"thane":              {Lat: 19.2183, Lng: 72.9781},
	"bhopal":             {Lat: 23.2599, Lng: 77.4126},
	"visakhapatnam":      {Lat: 17.6868, Lng: 83.2185},
	"patna":              {Lat: 25.5941, Lng: 85.1376},
	"vadodara":           {Lat: 22.3072, Lng: 73.1812},
	"ghaziabad":          {Lat: 28.6692, Lng: 77.4538},
	"ludhiana":           {Lat: 30.9010, Lng: 75.8573},
	"agra":               {Lat: 27.1767, Lng: 78.0081},
	"nashik":             {Lat: 19.9975, Lng: 73.7898},
	"noida":              {Lat: 28.5355, Lng: 77.3910},
	"gurgaon":            {Lat: 28.4595, Lng: 77.0266},
	"gurugram":           {Lat: 28.4595, Lng: 77.0266},
	"chandigarh":         {Lat: 30.7333, Lng: 76.7794},
	"coimbatore":         {Lat: 11.0168, Lng: 76.9558},
	"kochi":              {Lat: 9.9312, Lng: 76.2673},
	"thiruvananthapuram": {Lat: 8.5241, Lng: 76.9366},
	"mysore":             {Lat: 12.2958, Lng: 76.6394},
	"mysuru":             {Lat: 12.2958, Lng: 76.6394},
	"goa":                {Lat: 15.2993, Lng: 74.1240},
	"varanasi":           {Lat: 25.3176, Lng: 82.9739},
	"amritsar":           {Lat: 31.6340, Lng: 74.8723},
	"bhubaneswar":        {Lat: 20.2961, Lng: 85.8245},
	"guwahati":           {Lat: 26.1445, Lng: 91.7362},
	"dehradun":           {Lat: 30.3165, Lng: 78.0322},
}

// cityNamesByLength длинные названия первыми, чтобы "new delhi" не съедался "delhi".
var cityNamesByLength = func() []string {
	names := make([]string, 0, len(cityCoordinates))
	for name := range cityCoordinates {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

func lookupCity(address entities.Address) (entities.Coordinates, bool) {
	if coords, ok := cityCoordinates[normalize(address.City)]; ok {
		return coords, true
	}

	full := normalize(address.String())
	if full == "" {
		return entities.Coordinates{}, false
	}
	for _, name := range cityNamesByLength {
		if strings.Contains(full, name) {
			return cityCoordinates[name], true
		}
	}
	return entities.Coordinates{}, false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
