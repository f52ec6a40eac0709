package validation

import (
	"regexp"
	"time"
	"unicode"
)

// Countries is the enumerated list of accepted country names. The values are
// part of the wire contract and must match the registration payload verbatim.
var Countries = []string{
	"Afghanistan", "Afrique du Sud", "Ahvenanmaa", "Albanie", "Algérie", "Allemagne", "Andorre", "Angola", "Anguilla", "Antarctique",
	"Antigua-et-Barbuda", "Arabie Saoudite", "Argentine", "Arménie", "Aruba", "Australie", "Autriche", "Azerbaïdjan", "Bahamas", "Bahreïn",
	"Bangladesh", "Barbade", "Belgique", "Belize", "Bénin", "Bermudes", "Bhoutan", "Biélorussie", "Birmanie", "Bolivie", "Bosnie-Herzégovine",
	"Botswana", "Brésil", "Brunei", "Bulgarie", "Burkina Faso", "Burundi", "Cambodge", "Cameroun", "Canada", "Chili", "Chine", "Chypre",
	"Cité du Vatican", "Colombie", "Comores", "Congo", "Congo (Rép. dém.)", "Corée du Nord", "Corée du Sud", "Costa Rica", "Côte d'Ivoire",
	"Croatie", "Cuba", "Curaçao", "Danemark", "Djibouti", "Dominique", "Égypte", "Émirats arabes unis", "Équateur", "Érythrée", "Espagne",
	"Estonie", "États-Unis", "Éthiopie", "Fidji", "Finlande", "France", "Gabon", "Gambie", "Géorgie", "Géorgie du Sud-et-les Îles Sandwich du Sud",
	"Ghana", "Gibraltar", "Grèce", "Grenade", "Groenland", "Guadeloupe", "Guam", "Guatemala", "Guernesey", "Guinée", "Guinée équatoriale",
	"Guinée-Bissau", "Guyana", "Guyane", "Haïti", "Honduras", "Hong Kong", "Hongrie", "Île Bouvet", "Île Christmas", "Île de Man", "Île Maurice",
	"Île Norfolk", "Îles Caïmans", "Îles Cocos", "Îles Cook", "Îles du Cap-Vert", "Îles Féroé", "Îles Heard-et-MacDonald", "Îles Malouines",
	"Îles Mariannes du Nord", "Îles Marshall", "Îles mineures éloignées des États-Unis", "Îles Pitcairn", "Îles Salomon", "Îles Turques-et-Caïques",
	"Îles Vierges britanniques", "Îles Vierges des États-Unis", "Inde", "Indonésie", "Irak", "Iran", "Irlande", "Islande", "Israël", "Italie",
	"Jamaïque", "Japon", "Jersey", "Jordanie", "Kazakhstan", "Kenya", "Kirghizistan", "Kiribati", "Kosovo", "Koweït", "Laos", "Lesotho", "Lettonie",
	"Liban", "Liberia", "Libye", "Liechtenstein", "Lituanie", "Luxembourg", "Macao", "Macédoine du Nord", "Madagascar", "Malaisie", "Malawi",
	"Maldives", "Mali", "Malte", "Maroc", "Martinique", "Mauritanie", "Mayotte", "Mexique", "Micronésie", "Moldavie", "Monaco", "Mongolie",
	"Monténégro", "Montserrat", "Mozambique", "Namibie", "Nauru", "Népal", "Nicaragua", "Niger", "Nigéria", "Niue", "Norvège", "Nouvelle-Calédonie",
	"Nouvelle-Zélande", "Oman", "Ouganda", "Ouzbékistan", "Pakistan", "Palaos (Palau)", "Palestine", "Panama", "Papouasie-Nouvelle-Guinée",
	"Paraguay", "Pays-Bas", "Pays-Bas caribéens", "Pérou", "Philippines", "Pologne", "Polynésie française", "Porto Rico", "Portugal", "Qatar",
	"République centrafricaine", "République dominicaine", "Réunion", "Roumanie", "Royaume-Uni", "Russie", "Rwanda", "Sahara Occidental",
	"Saint-Barthélemy", "Saint-Christophe-et-Niévès", "Saint-Marin", "Saint-Martin", "Saint-Pierre-et-Miquelon", "Saint-Vincent-et-les-Grenadines",
	"Sainte-Hélène, Ascension et Tristan da Cunha", "Sainte-Lucie", "Salvador", "Samoa", "Samoa américaines", "São Tomé et Príncipe", "Sénégal",
	"Serbie", "Seychelles", "Sierra Leone", "Singapour", "Slovaquie", "Slovénie", "Somalie", "Soudan", "Soudan du Sud", "Sri Lanka", "Suède",
	"Suisse", "Surinam", "Svalbard et Jan Mayen", "Swaziland", "Syrie", "Tadjikistan", "Taïwan", "Tanzanie", "Tchad", "Tchéquie",
	"Terres australes et antarctiques françaises", "Territoire britannique de l'océan Indien", "Thaïlande", "Timor oriental", "Togo", "Tokelau",
	"Tonga", "Trinité-et-Tobago", "Tunisie", "Turkménistan", "Turquie", "Tuvalu", "Ukraine", "Uruguay", "Vanuatu", "Venezuela", "Viêt Nam",
	"Wallis-et-Futuna", "Yémen", "Zambie", "Zimbabwe",
}

var countrySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Countries))
	for _, country := range Countries {
		set[country] = struct{}{}
	}
	return set
}()

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[A-ZÀ-ÖÙ-Ý][a-zà-öù-ÿ]+(?:-[A-ZÀ-ÖÙ-Ý][a-zà-öù-ÿ]+)*$`)

	// Characters never accepted in a password, markup and shell punctuation.
	passwordBlacklist = regexp.MustCompile("[<>\"'`;/\\\\|&()\\[\\]{}]")
)

var earliestBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	DateOfBirth string `json:"date_of_birth"`
	Country     string `json:"country"`
}

// Validate runs the whole registration rule set. emailTaken reports whether
// an address already belongs to a user; keeping it a callback keeps storage
// out of this package. The parsed date of birth is returned for persistence.
func (r RegisterRequest) Validate(now time.Time, emailTaken func(string) bool) (time.Time, Errors) {
	errs := NewErrors()

	validateEmail(r.Email, emailTaken, errs)
	validatePassword(r.Password, errs)
	validateName("firstname", r.Firstname, errs)
	validateName("lastname", r.Lastname, errs)
	dateOfBirth := validateDateOfBirth(r.DateOfBirth, now, errs)
	validateCountry(r.Country, errs)

	return dateOfBirth, errs
}

func validateEmail(email string, emailTaken func(string) bool, errs Errors) {
	if len(email) < 6 {
		errs.Add("email", "Email is too short.")
		return
	}
	if len(email) > 100 {
		errs.Add("email", "Email is too long.")
		return
	}
	if !emailPattern.MatchString(email) {
		errs.Add("email", "Invalid email format.")
		return
	}
	if emailTaken != nil && emailTaken(email) {
		errs.Add("email", "This email is already in use.")
	}
}

func validatePassword(password string, errs Errors) {
	if passwordBlacklist.MatchString(password) {
		errs.Add("password", "Password contains forbidden characters.")
		return
	}
	// Length bounds count characters, not bytes: accented characters are one.
	if len([]rune(password)) < 16 {
		errs.Add("password", "Password is too short.")
		return
	}
	if len([]rune(password)) > 128 {
		errs.Add("password", "Password is too long.")
		return
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			errs.Add("password", "Password must not contain whitespace.")
			return
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasOther {
		errs.Add("password", "Password must contain a lowercase letter, an uppercase letter, a digit and a special character.")
	}
}

func validateName(field, value string, errs Errors) {
	if len([]rune(value)) < 2 {
		errs.Add(field, "Name is too short.")
		return
	}
	if len([]rune(value)) > 50 {
		errs.Add(field, "Name is too long.")
		return
	}
	if !namePattern.MatchString(value) {
		errs.Add(field, "Invalid name format.")
	}
}

func validateDateOfBirth(value string, now time.Time, errs Errors) time.Time {
	dateOfBirth, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add("date_of_birth", "Invalid date format, expected YYYY-MM-DD.")
		return time.Time{}
	}

	minBirth := time.Date(now.Year()-18, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateOfBirth.After(minBirth) {
		errs.Add("date_of_birth", "You must be at least 18 years old to register.")
		return dateOfBirth
	}
	if dateOfBirth.Before(earliestBirthDate) {
		errs.Add("date_of_birth", "Date of birth is too old.")
	}
	return dateOfBirth
}

func validateCountry(country string, errs Errors) {
	if len([]rune(country)) > 75 {
		errs.Add("country", "Country is too long.")
		return
	}
	if _, ok := countrySet[country]; !ok {
		errs.Add("country", "Invalid country.")
	}
}
