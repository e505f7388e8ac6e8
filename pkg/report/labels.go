package report

import "strings"

// Labels holds the display text of a text report.
type Labels struct {
	Header       string
	Count        string
	Mean         string
	Median       string
	Mode         string
	StdDev       string
	Variance     string
	NoMode       string
	NoStatistics string
	Elapsed      string
	Seconds      string

	// load diagnostics; SourceNotFound takes the path
	SourceNotFound string
	InvalidData    string
	Unreadable     string
}

var (
	// LabelsEnglish is the default label set.
	LabelsEnglish = Labels{
		Header:       "Results:",
		Count:        "Count",
		Mean:         "Mean",
		Median:       "Median",
		Mode:         "Mode",
		StdDev:       "Standard deviation",
		Variance:     "Variance",
		NoMode:       "no mode",
		NoStatistics: "No statistics available",
		Elapsed:      "Elapsed time",
		Seconds:      "seconds",

		SourceNotFound: "Error: the file %s was not found.",
		InvalidData:    "Error: the file contains invalid data.",
		Unreadable:     "Error: the file could not be read.",
	}

	// LabelsSpanish is the Spanish label set.
	LabelsSpanish = Labels{
		Header:       "Resultados:",
		Count:        "Cantidad",
		Mean:         "Media",
		Median:       "Mediana",
		Mode:         "Moda",
		StdDev:       "Desviación estándar",
		Variance:     "Varianza",
		NoMode:       "No hay moda",
		NoStatistics: "No hay estadísticas disponibles",
		Elapsed:      "Tiempo transcurrido",
		Seconds:      "segundos",

		SourceNotFound: "Error: El archivo %s no fue encontrado.",
		InvalidData:    "Error: El archivo contiene datos no válidos.",
		Unreadable:     "Error: No se pudo leer el archivo.",
	}
)

// LabelsFor returns the label set of lang ("en", "es"), and false for unknown languages.
func LabelsFor(lang string) (Labels, bool) {
	switch strings.ToLower(lang) {
	case "en", "english":
		return LabelsEnglish, true
	case "es", "spanish", "español":
		return LabelsSpanish, true
	default:
		return Labels{}, false
	}
}
