// ABOUTME: Entity extractor: labelled pattern rules over raw input text
// ABOUTME: Fills every field independently; rules are not mutually exclusive
package extract

import (
	"regexp"
	"strings"
)

// Entities is everything the patterns can pull out of one input. Cue flags
// and captured values are filled independently; the router decides precedence.
type Entities struct {
	Genres    []string
	Year      string
	Kind      string
	Title     string
	SimilarTo string
	Director  string
	Actor     string
	Country   string
	Language  string

	HighlyRated         bool
	Greeting            bool
	WantsRecommendation bool
	About               bool
	Thanks              bool
	PureThanks          bool
	Help                bool
	Trivia              bool
	Yes                 bool
	No                  bool
	Sad                 bool
	Bored               bool
}

var (
	greetingPattern = regexp.MustCompile(`(?i)\b(?:hi|hello|hey|howdy|greetings|good morning|good afternoon|good evening|salam|marhaba)\b`)

	recommendPattern = regexp.MustCompile(`(?i)\b(?:recommend|suggest)(?:ations?|ions?|s)?\b` +
		`|\bwhat should i watch\b` +
		`|\bsomething (?:good |new )?to watch\b` +
		`|\b(?:i want|i'?d like|i would like|i feel like) (?:to watch|watching)\b` +
		`|\bshow me\b` +
		`|\bany good\b` +
		`|\blooking for\b`)

	genrePattern = regexp.MustCompile(`(?i)\b(action|adventure|animation|animated|anime|biography|comedy|comedies|crime|documentary|documentaries|drama|dramas|family|fantasy|history|horror|musical|mystery|mysteries|romance|romantic|rom ?com|sci[ -]?fi|science fiction|sport|sports|superhero|thriller|thrillers|war|western|westerns)\b`)

	yearPattern = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

	highRatedPattern = regexp.MustCompile(`(?i)\b(?:highly rated|high(?:est)? rated|top rated|well rated|best|great)\b`)

	kindPattern = regexp.MustCompile(`(?i)\b(tv ?shows?|tv series|series|shows|movies?|films?)\b`)

	aboutPattern = regexp.MustCompile(`(?i)\b(?:tell me about|what about|info(?:rmation)? (?:about|on)|about)\s+(.+)$`)

	similarPattern = regexp.MustCompile(`(?i)\bsimilar to\s+(.+)$` +
		`|\b(?:movies?|shows?|films?|series)\s+like\s+(.+)$`)

	directorPattern = regexp.MustCompile(`(?i)\b(?:directed by|movies? by|films? by|shows? by|director)\s*:?\s+(.+)$`)

	actorPattern = regexp.MustCompile(`(?i)\b(?:starring|featuring|acted by|with actor|stars)\s+(.+)$`)

	countryPattern = regexp.MustCompile(`(?i)\b(american|british|egyptian|indian|korean|japanese|turkish|french|spanish|italian|german|mexican)\b`)

	languagePattern = regexp.MustCompile(`(?i)\b(english|arabic|spanish|french|hindi|korean|japanese|turkish|german|italian)\s+(?:language|audio|dubbed|subtitles)\b` +
		`|\bin\s+(english|arabic|spanish|french|hindi|korean|japanese|turkish|german|italian)\b`)

	thanksPattern = regexp.MustCompile(`(?i)\b(?:thanks|thank you|thankyou|thx)\b`)

	pureThanksPattern = regexp.MustCompile(`(?i)^\s*(?:thanks|thank you|thankyou|thx)(?:\s+(?:so|very)\s+much|\s+a lot)?\s*[!.]*\s*$`)

	helpPattern = regexp.MustCompile(`(?i)\bhelp\b|\bwhat can you do\b|\bhow do you work\b|\bwhat do you do\b|\bwhat are my options\b`)

	triviaPattern = regexp.MustCompile(`(?i)\b(?:trivia|quiz(?: me)?|test me|question me|play a game)\b`)

	sadPattern = regexp.MustCompile(`(?i)\b(?:sad|unhappy|depressed|miserable|heartbroken|feeling (?:low|blue))\b`)

	boredPattern = regexp.MustCompile(`(?i)\b(?:bored|boredom|boring|nothing to do)\b`)
)

// genreAliases folds pattern variants onto the catalog's canonical genre labels.
var genreAliases = map[string]string{
	"animated":        "animation",
	"anime":           "animation",
	"comedies":        "comedy",
	"dramas":          "drama",
	"documentaries":   "documentary",
	"mysteries":       "mystery",
	"romantic":        "romance",
	"rom com":         "romance",
	"romcom":          "romance",
	"sci fi":          "sci-fi",
	"scifi":           "sci-fi",
	"science fiction": "sci-fi",
	"sports":          "sport",
	"thrillers":       "thriller",
	"westerns":        "western",
}

// yesAnswers and noAnswers are matched against the whole trimmed input, not
// searched as substrings ("know" must never read as "no").
var yesAnswers = map[string]struct{}{
	"yes": {}, "yeah": {}, "yep": {}, "yup": {}, "sure": {}, "ok": {}, "okay": {},
	"of course": {}, "absolutely": {}, "why not": {}, "yes please": {}, "y": {},
}

var noAnswers = map[string]struct{}{
	"no": {}, "nope": {}, "nah": {}, "no thanks": {}, "no thank you": {},
	"not now": {}, "stop": {}, "quit": {}, "enough": {}, "n": {},
	"im done": {}, "i am done": {}, "i'm done": {},
}

// Extract runs every rule against the raw input and returns the result.
func Extract(input string) Entities {
	e := Entities{
		Genres:    extractGenres(input),
		Year:      firstGroup(yearPattern, input),
		Kind:      cleanCapture(firstGroup(kindPattern, input)),
		Title:     cleanCapture(firstGroup(aboutPattern, input)),
		SimilarTo: cleanCapture(firstGroup(similarPattern, input)),
		Director:  cleanCapture(firstGroup(directorPattern, input)),
		Actor:     cleanCapture(firstGroup(actorPattern, input)),
		Country:   cleanCapture(firstGroup(countryPattern, input)),
		Language:  cleanCapture(firstGroup(languagePattern, input)),

		HighlyRated:         highRatedPattern.MatchString(input),
		Greeting:            greetingPattern.MatchString(input),
		WantsRecommendation: recommendPattern.MatchString(input),
		Thanks:              thanksPattern.MatchString(input),
		PureThanks:          pureThanksPattern.MatchString(input),
		Help:                helpPattern.MatchString(input),
		Trivia:              triviaPattern.MatchString(input),
		Sad:                 sadPattern.MatchString(input),
		Bored:               boredPattern.MatchString(input),
	}
	e.About = e.Title != ""

	whole := strings.TrimSpace(strings.ToLower(input))
	whole = strings.TrimRight(whole, "!. ")
	if _, ok := yesAnswers[whole]; ok {
		e.Yes = true
	}
	if _, ok := noAnswers[whole]; ok {
		e.No = true
	}
	return e
}

// extractGenres collects every genre mention, canonical and deduplicated,
// in order of first appearance.
func extractGenres(input string) []string {
	matches := genrePattern.FindAllStringSubmatch(input, -1)
	if matches == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var genres []string
	for _, m := range matches {
		g := strings.ToLower(m[1])
		if canon, ok := genreAliases[g]; ok {
			g = canon
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	return genres
}

// firstGroup returns the first non-empty capture group of the first match.
func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// cleanCapture trims a captured clause, stripping any trailing question mark
// and folding case.
func cleanCapture(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "?!. ")
	return strings.ToLower(s)
}
