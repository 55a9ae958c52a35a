package i18n

var norwegian = map[string]string{
	"app.title":            "Re:visit?",
	"app.subtitle":         "Én opplevelse. Én sannhet.",
	"app.tabs.capture":     "Fang",
	"app.tabs.log":         "Logg",
	"app.profiles.private": "Privat",
	"app.profiles.work":    "Jobb",

	"categories.restaurant": "Restaurant",
	"categories.cafe":       "Kafé",
	"categories.hotel":      "Hotell",
	"categories.travel":     "Reise",
	"categories.experience": "Opplevelse",
	"categories.activity":   "Aktivitet",
	"categories.other":      "Annet",

	"capture.takePhoto":      "Ta bilde",
	"capture.retakePhoto":    "Ta nytt bilde",
	"capture.statusTaking":   "Tar bilde…",
	"capture.statusOptimizing": "Optimaliserer…",
	"capture.statusSaving":   "Lagrer…",
	"capture.ratingQ":        "Likte jeg dette?",
	"capture.rating.yes":     "Ja",
	"capture.rating.neutral": "Nøytral",
	"capture.rating.no":      "Nei",
	"capture.categoryLabel":  "Kategori",
	"capture.categoryHint":   "Velg én kategori (du kan filtrere i loggen senere).",
	"capture.commentLabel":   "Valgfri kommentar (1–2 linjer)",
	"capture.commentPlaceholder": "Skriv kort...",
	"capture.edit":           "Rediger",
	"capture.save":           "Lagre øyeblikk",
	"capture.saveHint":       "Tid lagres alltid. GPS spør vi om først ved lagring.",
	"capture.savedTitle":     "Lagret",
	"capture.savedMsg":       "Opplevelsen er lagret i loggen din.",
	"capture.errTitle":       "Feil",
	"capture.errTakePhoto":   "Kunne ikke ta bilde. Prøv igjen.",
	"capture.errSave":        "Kunne ikke lagre opplevelsen.",
	"capture.cameraTitle":    "Kamera",
	"capture.cameraPerm":     "Du må gi kameratilgang for å ta bilde.",
	"capture.limitWarnTitle": "Obs",
	"capture.limitWarnMsg":   "Du nærmer deg gratisgrensen. Når du når {{max}}, trenger du Pro for å lagre mer.",
	"capture.limitHardTitle": "Grense nådd",
	"capture.limitHardMsg":   "Du har nådd gratisgrensen ({{max}} oppføringer). Oppgrader for å lagre mer.",
	"capture.lockedProfileTitle": "Jobb-profilen er Pro",
	"capture.lockedProfileMsg":   "Jobb-profilen er tilgjengelig i Pro. Oppgrader for å bruke flere profiler.",

	"log.title":           "Logg",
	"log.loading":         "Laster…",
	"log.entries":         "oppføringer",
	"log.emptyTitle":      "Ingen oppføringer ennå",
	"log.emptyMsg":        "Gå til “Fang”, ta et bilde og lagre første øyeblikk.",
	"log.noGps":           "(Ingen GPS)",
	"log.rating.yes":      "🙂 Ja",
	"log.rating.neutral":  "😐 Nøytral",
	"log.rating.no":       "🙁 Nei",
	"log.delete":          "Slett",
	"log.deleteDialogTitle": "Slett innlegg",
	"log.deleteDialogMsg": "Dette sletter innlegget fra denne enheten. Kan ikke angres.",
	"log.cancel":          "Avbryt",
	"log.confirmDelete":   "Slett",
	"log.filter":          "Filter",
	"log.showAll":         "Vis alle",
	"log.lockedTitle":     "Jobb-profilen er Pro",
	"log.lockedMsg":       "Oppgrader til Pro for å bruke flere profiler.",

	"paywall.primary":   "Se Pro",
	"paywall.secondary": "Senere",

	"language.label": "Språk",
	"language.no":    "NO",
	"language.en":    "EN",
}

var english = map[string]string{
	"app.title":            "Re:visit?",
	"app.subtitle":         "One moment. One truth.",
	"app.tabs.capture":     "Capture",
	"app.tabs.log":         "Log",
	"app.profiles.private": "Private",
	"app.profiles.work":    "Work",

	"categories.restaurant": "Restaurant",
	"categories.cafe":       "Café",
	"categories.hotel":      "Hotel",
	"categories.travel":     "Travel",
	"categories.experience": "Experience",
	"categories.activity":   "Activity",
	"categories.other":      "Other",

	"capture.takePhoto":      "Take photo",
	"capture.retakePhoto":    "Retake photo",
	"capture.statusTaking":   "Taking photo…",
	"capture.statusOptimizing": "Optimizing…",
	"capture.statusSaving":   "Saving…",
	"capture.ratingQ":        "Did I like this?",
	"capture.rating.yes":     "Yes",
	"capture.rating.neutral": "Neutral",
	"capture.rating.no":      "No",
	"capture.categoryLabel":  "Category",
	"capture.categoryHint":   "Pick one category (you can filter in the log later).",
	"capture.commentLabel":   "Optional comment (1–2 lines)",
	"capture.commentPlaceholder": "Write short...",
	"capture.edit":           "Edit",
	"capture.save":           "Save moment",
	"capture.saveHint":       "Time is always saved. We ask for GPS only when saving.",
	"capture.savedTitle":     "Saved",
	"capture.savedMsg":       "Your moment has been saved to your log.",
	"capture.errTitle":       "Error",
	"capture.errTakePhoto":   "Could not take photo. Please try again.",
	"capture.errSave":        "Could not save the moment.",
	"capture.cameraTitle":    "Camera",
	"capture.cameraPerm":     "Camera permission is required to take a photo.",
	"capture.limitWarnTitle": "Heads up",
	"capture.limitWarnMsg":   "You’re nearing the free limit. When you reach {{max}}, you’ll need Pro to save more.",
	"capture.limitHardTitle": "Limit reached",
	"capture.limitHardMsg":   "You’ve reached the free limit ({{max}} entries). Upgrade to save more.",
	"capture.lockedProfileTitle": "Work profile is Pro",
	"capture.lockedProfileMsg":   "The Work profile is available in Pro. Upgrade to use multiple profiles.",

	"log.title":           "Log",
	"log.loading":         "Loading…",
	"log.entries":         "entries",
	"log.emptyTitle":      "No entries yet",
	"log.emptyMsg":        "Go to “Capture”, take a photo, and save your first moment.",
	"log.noGps":           "(No GPS)",
	"log.rating.yes":      "🙂 Yes",
	"log.rating.neutral":  "😐 Neutral",
	"log.rating.no":       "🙁 No",
	"log.delete":          "Delete",
	"log.deleteDialogTitle": "Delete entry",
	"log.deleteDialogMsg": "This deletes the entry from this device. This cannot be undone.",
	"log.cancel":          "Cancel",
	"log.confirmDelete":   "Delete",
	"log.filter":          "Filter",
	"log.showAll":         "Show all",
	"log.lockedTitle":     "Work profile is Pro",
	"log.lockedMsg":       "Upgrade to Pro to use multiple profiles.",

	"paywall.primary":   "See Pro",
	"paywall.secondary": "Later",

	"language.label": "Language",
	"language.no":    "NO",
	"language.en":    "EN",
}
