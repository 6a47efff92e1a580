package consts

const (
	// Our World in Data, cumulative cases and deaths per location per day
	OWIDCovidURL = "https://covid.ourworldindata.org/data/owid-covid-data.csv"

	// Natural Earth based country polygons
	CountriesGeoJSONURL = "https://raw.githubusercontent.com/datasets/geo-countries/master/data/countries.geojson"

	// Google public data canonical country centroids, published as an html table
	CountryCentroidsURL = "https://developers.google.com/public-data/docs/canonical/countries_csv"
)

const (
	NameMappingFile = "countryNameMapping.json"
	ISO2CacheFile   = "countryNameISO2.json"
)

// EarliestDate is the first day the OWID dataset covers for most countries.
const EarliestDate = "2020-03-01"

// DateLayout is the date format used by the OWID dataset.
const DateLayout = "2006-01-02"

// World is the OWID row summing every country.
const World = "World"

// OWIDAggregatePrefix marks continent and income group rows in iso_code.
const OWIDAggregatePrefix = "OWID_"
