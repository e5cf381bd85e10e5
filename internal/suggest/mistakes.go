package suggest

// commonMistakes maps lower-cased informal abbreviations and known
// misspellings to their canonical form.
var commonMistakes = map[string]string{
	// informal abbreviations
	"vc":   "você",
	"voce": "você",
	"tb":   "também",
	"tbm":  "também",
	"tmb":  "também",
	"tmbm": "também",
	"pq":   "porque",
	"q":    "que",
	"hj":   "hoje",
	"mt":   "muito",
	"mto":  "muito",
	"msm":  "mesmo",
	"cmg":  "comigo",
	"td":   "tudo",
	"nd":   "nada",
	"dps":  "depois",
	"obs":  "observação",
	"pct":  "paciente",
	"pcte": "paciente",

	// missing accents and cedillas
	"nao":         "não",
	"entao":       "então",
	"tambem":      "também",
	"estavel":     "estável",
	"disuria":     "disúria",
	"vomitos":     "vômitos",
	"nausea":      "náusea",
	"torax":       "tórax",
	"abdomen":     "abdômen",
	"diagnostico": "diagnóstico",
	"clinico":     "clínico",
	"cronico":     "crônico",
	"alergico":    "alérgico",
	"historia":    "história",
	"pressao":     "pressão",
	"lesao":       "lesão",
	"infeccao":    "infecção",
	"infecçao":    "infecção",
	"evolucao":    "evolução",
	"avaliacao":   "avaliação",
	"prescricao":  "prescrição",
	"internacao":  "internação",
	"medicacao":   "medicação",
	"hipotensao":  "hipotensão",
	"hipertensao": "hipertensão",
	"saturacao":   "saturação",
	"oxigenio":    "oxigênio",
	"antibiotico": "antibiótico",
	"analgesico":  "analgésico",

	// misspellings and pre-reform spellings
	"hipertenção":  "hipertensão",
	"hipertenssão": "hipertensão",
	"febri":        "febre",
	"abdomem":      "abdome",
	"cefaléia":     "cefaleia",
	"diarréia":     "diarreia",
	"dispinéia":    "dispneia",
	"dispnéia":     "dispneia",
}
