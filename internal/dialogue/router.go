// ABOUTME: Dialogue engine routing each input through an ordered rule list
// ABOUTME: First matching rule wins; conversation state rides on the previous turn
package dialogue

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/moviemate/moviemate/internal/catalog"
	"github.com/moviemate/moviemate/internal/extract"
	"github.com/moviemate/moviemate/internal/lexicon"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
	"github.com/moviemate/moviemate/internal/quiz"
)

// Recorder persists graded quiz answers. A nil Recorder disables logging.
type Recorder interface {
	Record(q models.TriviaQuestion, userAnswer string, correct bool) error
}

// request bundles one turn's input with its extracted entities and the
// previous turn.
type request struct {
	input    string
	entities extract.Entities
	prev     models.Turn
}

// rule is one guarded dispatch step. Rules are evaluated in listed order and
// the first whose guard holds produces the turn.
type rule struct {
	name string
	when func(req request) bool
	run  func(req request) models.Turn
}

// Engine turns user input into response turns. It holds no conversation
// state; callers pass each returned turn back in as prev.
type Engine struct {
	catalog  *catalog.Catalog
	quiz     *quiz.Engine
	recorder Recorder
	rng      *rand.Rand
	rules    []rule
}

// NewEngine wires the dialogue engine. The random source drives response
// variants and is shared with nothing else, so tests can seed it.
func NewEngine(cat *catalog.Catalog, quizEngine *quiz.Engine, recorder Recorder, rng *rand.Rand) *Engine {
	e := &Engine{
		catalog:  cat,
		quiz:     quizEngine,
		recorder: recorder,
		rng:      rng,
	}
	e.rules = []rule{
		{"grade quiz answer", e.whenAwaitingAnswer, e.gradeAnswer},
		{"similar to title", e.whenSimilarTo, e.similarToTitle},
		{"similar to previous", e.whenSimilarFollowUp, e.similarToPrevious},
		{"more trivia", e.whenMoreTrivia, e.nextQuestion},
		{"no more trivia", e.whenNoMoreTrivia, e.closeQuiz},
		{"thanks for list", e.whenThanksForList, e.acknowledgeThanks},
		{"about suggested title", e.whenAboutFromList, e.aboutFromList},
		{"greeting", e.whenGreeting, e.greet},
		{"bored", e.whenBored, e.cureBoredom},
		{"sad", e.whenSad, e.cheerUp},
		{"recommendation", e.whenRecommendation, e.recommend},
		{"about title", e.whenAbout, e.aboutTitle},
		{"by director", e.whenDirector, e.byDirector},
		{"by actor", e.whenActor, e.byActor},
		{"thanks", e.whenThanks, e.acknowledgeThanks},
		{"help", e.whenHelp, e.help},
		{"trivia", e.whenTrivia, e.nextQuestion},
	}
	return e
}

// Respond produces the next turn for input given the previous one. The final
// fallback classifier always answers, so Respond never fails.
func (e *Engine) Respond(input string, prev models.Turn) models.Turn {
	req := request{
		input:    input,
		entities: extract.Extract(input),
		prev:     prev,
	}
	for _, r := range e.rules {
		if r.when(req) {
			logging.Debug().Str("rule", r.name).Msg("dialogue rule matched")
			return r.run(req)
		}
	}
	logging.Debug().Str("rule", "fallback classifier").Msg("dialogue rule matched")
	return e.classify(req)
}

func (e *Engine) whenAwaitingAnswer(req request) bool {
	return req.prev.AwaitingAnswer()
}

func (e *Engine) gradeAnswer(req request) models.Turn {
	q := *req.prev.PendingQuestion
	correct := quiz.Grade(q, req.input)
	if e.recorder != nil {
		if err := e.recorder.Record(q, req.input, correct); err != nil {
			logging.Warn().Err(err).Msg("recording quiz answer failed")
		}
	}
	return models.Turn{Intent: models.IntentQuizAnswer, Message: quiz.ResultMessage(q, correct)}
}

func (e *Engine) whenSimilarTo(req request) bool {
	return req.entities.SimilarTo != ""
}

func (e *Engine) similarToTitle(req request) models.Turn {
	title := req.entities.SimilarTo
	seed, ok := e.catalog.ResolveTitle(title)
	if !ok {
		return models.Turn{
			Intent:  models.IntentHelp,
			Message: fmt.Sprintf("I couldn't find %q in my catalog, so I can't suggest anything similar. Try another title!", title),
		}
	}
	return e.similarTurn(seed)
}

func (e *Engine) whenSimilarFollowUp(req request) bool {
	if req.prev.Intent != models.IntentSpecificMedia || len(req.prev.Recommendations) != 1 {
		return false
	}
	folded := strings.ToLower(req.input)
	return strings.Contains(folded, "similar") || strings.Contains(folded, "like this")
}

func (e *Engine) similarToPrevious(req request) models.Turn {
	return e.similarTurn(req.prev.Recommendations[0])
}

func (e *Engine) similarTurn(seed models.MediaRecord) models.Turn {
	recs := e.catalog.Similar(seed)
	if len(recs) == 0 {
		return models.Turn{
			Intent:  models.IntentRecommendation,
			Message: fmt.Sprintf("I couldn't find anything quite like %s in my catalog. Maybe ask me for a genre instead?", seed.Title),
		}
	}
	return models.Turn{
		Intent:          models.IntentRecommendation,
		Message:         fmt.Sprintf("Since you liked %s, you might also enjoy: %s.", seed.Title, joinTitles(recs)),
		Recommendations: recs,
	}
}

func (e *Engine) whenMoreTrivia(req request) bool {
	return req.prev.Intent == models.IntentQuizAnswer && req.entities.Yes
}

func (e *Engine) whenNoMoreTrivia(req request) bool {
	return req.prev.Intent == models.IntentQuizAnswer && req.entities.No
}

func (e *Engine) closeQuiz(req request) models.Turn {
	return models.Turn{Intent: models.IntentThanks, Message: quizClosingMessage}
}

func (e *Engine) whenThanksForList(req request) bool {
	return req.prev.Intent == models.IntentRecommendation &&
		len(req.prev.Recommendations) > 0 &&
		req.entities.PureThanks
}

func (e *Engine) acknowledgeThanks(req request) models.Turn {
	return models.Turn{Intent: models.IntentThanks, Message: thanksReply}
}

func (e *Engine) whenAboutFromList(req request) bool {
	return req.prev.Intent == models.IntentRecommendation &&
		len(req.prev.Recommendations) > 0 &&
		req.entities.About
}

func (e *Engine) aboutFromList(req request) models.Turn {
	title := req.entities.Title
	rec, ok := bestTitleMatch(title, req.prev.Recommendations)
	if !ok {
		return models.Turn{
			Intent:  models.IntentHelp,
			Message: fmt.Sprintf("I couldn't match %q to one of my suggestions. Which title did you mean?", title),
		}
	}
	return models.Turn{
		Intent:          models.IntentSpecificMedia,
		Message:         rec.Describe(),
		Recommendations: []models.MediaRecord{rec},
	}
}

func (e *Engine) whenGreeting(req request) bool {
	return req.entities.Greeting
}

func (e *Engine) greet(req request) models.Turn {
	return models.Greeting()
}

func (e *Engine) whenBored(req request) bool {
	return req.entities.Bored
}

func (e *Engine) cureBoredom(req request) models.Turn {
	return e.moodTurn(boredPrefix, "thriller")
}

func (e *Engine) whenSad(req request) bool {
	return req.entities.Sad
}

func (e *Engine) cheerUp(req request) models.Turn {
	return e.moodTurn(sadPrefix, "comedy")
}

func (e *Engine) moodTurn(prefix, genre string) models.Turn {
	recs := e.catalog.Recommend(catalog.Criteria{
		Genres:      []string{genre},
		HighlyRated: true,
		Kind:        models.Movie,
	})
	return models.Turn{
		Intent:          models.IntentRecommendation,
		Message:         prefix + catalog.FormatList(recs),
		Recommendations: recs,
	}
}

func (e *Engine) whenRecommendation(req request) bool {
	return req.entities.WantsRecommendation
}

func (e *Engine) recommend(req request) models.Turn {
	recs := e.catalog.Recommend(criteriaFromEntities(req.entities))
	return models.Turn{
		Intent:          models.IntentRecommendation,
		Message:         catalog.FormatList(recs),
		Recommendations: recs,
	}
}

func (e *Engine) whenAbout(req request) bool {
	return req.entities.About
}

func (e *Engine) aboutTitle(req request) models.Turn {
	title := req.entities.Title
	matches := e.catalog.FindByTitle(title)
	switch len(matches) {
	case 0:
		return models.Turn{
			Intent:  models.IntentSpecificMedia,
			Message: fmt.Sprintf("I'm sorry, I don't know anything about %q. Maybe ask me for a recommendation instead?", title),
		}
	case 1:
		return models.Turn{
			Intent:          models.IntentSpecificMedia,
			Message:         matches[0].Describe(),
			Recommendations: matches,
		}
	default:
		return models.Turn{
			Intent:          models.IntentSpecificMedia,
			Message:         fmt.Sprintf("I found a few titles matching %q: %s. Which one do you mean?", title, joinTitles(matches)),
			Recommendations: matches,
		}
	}
}

func (e *Engine) whenDirector(req request) bool {
	return req.entities.Director != ""
}

func (e *Engine) byDirector(req request) models.Turn {
	name := req.entities.Director
	recs := e.catalog.ByDirector(name)
	if len(recs) == 0 {
		return models.Turn{
			Intent:  models.IntentHelp,
			Message: fmt.Sprintf("I couldn't find anything directed by %s. Maybe try another director?", name),
		}
	}
	return models.Turn{
		Intent:          models.IntentRecommendation,
		Message:         catalog.FormatList(recs),
		Recommendations: recs,
	}
}

func (e *Engine) whenActor(req request) bool {
	return req.entities.Actor != ""
}

func (e *Engine) byActor(req request) models.Turn {
	name := req.entities.Actor
	recs := e.catalog.ByActor(name)
	if len(recs) == 0 {
		return models.Turn{
			Intent:  models.IntentHelp,
			Message: fmt.Sprintf("I couldn't find anything starring %s. Maybe try another actor?", name),
		}
	}
	return models.Turn{
		Intent:          models.IntentRecommendation,
		Message:         catalog.FormatList(recs),
		Recommendations: recs,
	}
}

func (e *Engine) whenThanks(req request) bool {
	return req.entities.Thanks
}

func (e *Engine) whenHelp(req request) bool {
	return req.entities.Help
}

func (e *Engine) help(req request) models.Turn {
	return models.Turn{Intent: models.IntentHelp, Message: HelpMessage}
}

func (e *Engine) whenTrivia(req request) bool {
	return req.entities.Trivia
}

func (e *Engine) nextQuestion(req request) models.Turn {
	q, ok := e.quiz.Pick()
	if !ok {
		return models.Turn{Intent: models.IntentHelp, Message: quizUnavailableMessage}
	}
	return models.Turn{
		Intent:          models.IntentQuizQuestion,
		Message:         e.quiz.Present(q),
		PendingQuestion: &q,
	}
}

// criteriaFromEntities maps extracted entities onto catalog predicates.
func criteriaFromEntities(e extract.Entities) catalog.Criteria {
	c := catalog.Criteria{
		Genres:      e.Genres,
		Year:        e.Year,
		HighlyRated: e.HighlyRated,
		Director:    e.Director,
		Actor:       e.Actor,
		Country:     e.Country,
		Language:    e.Language,
	}
	if e.Kind != "" {
		c.Kind = models.ParseKind(e.Kind)
	}
	return c
}

// bestTitleMatch scores each candidate by how many query tokens its title
// contains and returns the highest scorer. Ties keep the earlier candidate.
func bestTitleMatch(query string, recs []models.MediaRecord) (models.MediaRecord, bool) {
	tokens := lexicon.Tokenize(query)
	best, bestScore := -1, 0
	for i, rec := range recs {
		folded := strings.ToLower(rec.Title)
		score := 0
		for _, token := range tokens {
			if strings.Contains(folded, token) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return models.MediaRecord{}, false
	}
	return recs[best], true
}
