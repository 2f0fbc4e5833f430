package populate

// Static vocabulary for the synthetic catalog. The pipeline is meant to
// produce data that looks like a real localization corpus: UI categories,
// a fixed tag taxonomy, and per-locale phrasing where we have it.

// locales is the fixed set the generator draws from.
var locales = []string{"en", "fr", "es", "de", "it", "pt", "ru", "ja", "zh", "ko"}

// tagCatalog is the fixed taxonomy ensured once per run via find-or-create.
var tagCatalog = []struct {
	Name        string
	Description string
}{
	{"web", "web application surfaces"},
	{"mobile", "mobile application surfaces"},
	{"desktop", "desktop application surfaces"},
	{"button", "button captions"},
	{"message", "user-facing messages"},
	{"title", "page and dialog titles"},
	{"label", "form and field labels"},
	{"generated", "synthetic pipeline data"},
}

// category groups the key vocabulary with the phrase variants used for
// content. Locales without a variant fall back to English.
type category struct {
	name    string
	words   []string
	phrases map[string][]string
}

var categories = []category{
	{
		name:  "button",
		words: []string{"save", "cancel", "submit", "delete", "edit", "close", "confirm", "back"},
		phrases: map[string][]string{
			"en": {"Save", "Cancel", "Submit", "Delete", "Edit", "Close", "Confirm", "Back"},
			"fr": {"Enregistrer", "Annuler", "Soumettre", "Supprimer", "Modifier", "Fermer", "Confirmer", "Retour"},
			"es": {"Guardar", "Cancelar", "Enviar", "Eliminar", "Editar", "Cerrar", "Confirmar", "Volver"},
			"de": {"Speichern", "Abbrechen", "Absenden", "Löschen", "Bearbeiten", "Schließen", "Bestätigen", "Zurück"},
		},
	},
	{
		name:  "message",
		words: []string{"success", "error", "warning", "loading", "saved", "deleted", "updated", "welcome"},
		phrases: map[string][]string{
			"en": {"Operation successful", "An error occurred", "Please review the warnings", "Loading, please wait", "Your changes were saved", "The item was deleted", "The item was updated", "Welcome back"},
			"fr": {"Opération réussie", "Une erreur est survenue", "Veuillez vérifier les avertissements", "Chargement en cours", "Vos modifications ont été enregistrées", "L'élément a été supprimé", "L'élément a été mis à jour", "Bon retour"},
			"es": {"Operación exitosa", "Se produjo un error", "Revise las advertencias", "Cargando, espere", "Se guardaron sus cambios", "El elemento fue eliminado", "El elemento fue actualizado", "Bienvenido de nuevo"},
			"de": {"Vorgang erfolgreich", "Ein Fehler ist aufgetreten", "Bitte Warnungen prüfen", "Wird geladen, bitte warten", "Ihre Änderungen wurden gespeichert", "Der Eintrag wurde gelöscht", "Der Eintrag wurde aktualisiert", "Willkommen zurück"},
		},
	},
	{
		name:  "title",
		words: []string{"home", "settings", "profile", "dashboard", "reports", "help", "search", "admin"},
		phrases: map[string][]string{
			"en": {"Home", "Settings", "Profile", "Dashboard", "Reports", "Help", "Search", "Administration"},
			"fr": {"Accueil", "Paramètres", "Profil", "Tableau de bord", "Rapports", "Aide", "Recherche", "Administration"},
			"es": {"Inicio", "Configuración", "Perfil", "Panel", "Informes", "Ayuda", "Búsqueda", "Administración"},
			"de": {"Startseite", "Einstellungen", "Profil", "Übersicht", "Berichte", "Hilfe", "Suche", "Verwaltung"},
		},
	},
	{
		name:  "label",
		words: []string{"name", "email", "password", "date", "status", "type", "description", "locale"},
		phrases: map[string][]string{
			"en": {"Name", "Email address", "Password", "Date", "Status", "Type", "Description", "Locale"},
			"fr": {"Nom", "Adresse e-mail", "Mot de passe", "Date", "Statut", "Type", "Description", "Langue"},
			"es": {"Nombre", "Correo electrónico", "Contraseña", "Fecha", "Estado", "Tipo", "Descripción", "Idioma"},
			"de": {"Name", "E-Mail-Adresse", "Passwort", "Datum", "Status", "Typ", "Beschreibung", "Sprache"},
		},
	},
	{
		name:  "generic",
		words: []string{"yes", "no", "ok", "more", "less", "next", "previous", "done"},
		phrases: map[string][]string{
			"en": {"Yes", "No", "OK", "Show more", "Show less", "Next", "Previous", "Done"},
			"fr": {"Oui", "Non", "OK", "Afficher plus", "Afficher moins", "Suivant", "Précédent", "Terminé"},
			"es": {"Sí", "No", "OK", "Mostrar más", "Mostrar menos", "Siguiente", "Anterior", "Hecho"},
			"de": {"Ja", "Nein", "OK", "Mehr anzeigen", "Weniger anzeigen", "Weiter", "Zurück", "Fertig"},
		},
	},
}
