package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type entry struct {
	translations map[language.Tag]string
	context      string
	msg          string
}

var entries = []entry{
	// Purchase types.
	{msg: "Premium Theme", translations: map[language.Tag]string{
		language.Spanish: "Tema premium",
		language.French:  "Thème premium",
	}},
	{msg: "Site Plan", translations: map[language.Tag]string{
		language.Spanish: "Plan del sitio",
		language.French:  "Plan du site",
	}},

	// Importer control.
	{context: "verb", msg: "Start Import", translations: map[language.Tag]string{
		language.Spanish: "Iniciar importación",
		language.French:  "Démarrer l'importation",
	}},
	{context: "verb", msg: "Cancel", translations: map[language.Tag]string{
		language.Spanish: "Cancelar",
		language.French:  "Annuler",
	}},
	{context: "verb", msg: "Stop Import", translations: map[language.Tag]string{
		language.Spanish: "Detener importación",
		language.French:  "Arrêter l'importation",
	}},
	{context: "adjective", msg: "Done", translations: map[language.Tag]string{
		language.Spanish: "Terminado",
		language.French:  "Terminé",
	}},

	// Report notices.
	{msg: "Credit card expiring soon", translations: map[language.Tag]string{
		language.Spanish: "La tarjeta de crédito caduca pronto",
		language.French:  "La carte de crédit expire bientôt",
	}},
	{msg: "Expires on %(date)s", translations: map[language.Tag]string{
		language.Spanish: "Caduca el %(date)s",
		language.French:  "Expire le %(date)s",
	}},
	{msg: "Update to %(newPluginVersion)s", translations: map[language.Tag]string{
		language.Spanish: "Actualizar a %(newPluginVersion)s",
		language.French:  "Mettre à jour vers %(newPluginVersion)s",
	}},
}

type dateFormat struct {
	months  [12]string
	pattern string // Arguments: day, month name, year
}

func (f dateFormat) format(t time.Time) string {
	return fmt.Sprintf(f.pattern, t.Day(), f.months[t.Month()-1], t.Year())
}

var dateFormats = map[language.Tag]dateFormat{
	language.English: {
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		pattern: "%[2]s %[1]d, %[3]d",
	},
	language.Spanish: {
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		pattern: "%[1]d de %[2]s de %[3]d",
	},
	language.French: {
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		pattern: "%[1]d %[2]s %[3]d",
	},
}
