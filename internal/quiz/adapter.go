package quiz

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cert-lab/ccna-prep/internal/gemini"
)

// QuestionSource produces a complete, validated question set or fails. There
// is no retry here: a retry is a second billable call, so the decision stays
// with the user-facing control.
type QuestionSource interface {
	FetchDrill(ctx context.Context, target string, count int) ([]Question, error)
	FetchSimulation(ctx context.Context, count int, weights map[string]float64) ([]Question, error)
}

// Generator is the production QuestionSource over the generation service.
type Generator struct {
	svc      gemini.Service
	validate *validator.Validate
}

func NewGenerator(svc gemini.Service) *Generator {
	return &Generator{svc: svc, validate: validator.New()}
}

func (g *Generator) FetchDrill(ctx context.Context, target string, count int) ([]Question, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("%w: empty drill target", ErrInvalidInput)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive", ErrInvalidInput)
	}
	raws, err := g.svc.GenerateQuestions(ctx, drillPrompt(target, count))
	if err != nil {
		return nil, &GenerationError{Op: "drill", Err: err}
	}
	return g.convert("drill", raws, count, target)
}

func (g *Generator) FetchSimulation(ctx context.Context, count int, weights map[string]float64) ([]Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive", ErrInvalidInput)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: empty weight table", ErrInvalidInput)
	}
	raws, err := g.svc.GenerateQuestions(ctx, simulationPrompt(count, weights))
	if err != nil {
		return nil, &GenerationError{Op: "simulation", Err: err}
	}
	// Simulation questions should each carry a domain; default the stragglers
	// rather than failing, since weight fidelity is best-effort anyway.
	return g.convert("simulation", raws, count, "")
}

// convert enforces the Question invariants on every fetched record. Any
// violation rejects the whole set; partial sets are never returned.
func (g *Generator) convert(op string, raws []gemini.RawQuestion, count int, defaultDomain string) ([]Question, error) {
	if len(raws) != count {
		return nil, &GenerationError{Op: op, Err: fmt.Errorf("requested %d questions, got %d", count, len(raws))}
	}
	qs := make([]Question, 0, count)
	for i, r := range raws {
		if err := g.validate.Struct(r); err != nil {
			return nil, &GenerationError{Op: op, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		if r.CorrectAnswer >= len(r.Options) {
			return nil, &GenerationError{Op: op, Err: fmt.Errorf("record %d: correctAnswer %d out of range for %d options", i, r.CorrectAnswer, len(r.Options))}
		}
		dom := r.Domain
		if dom == "" {
			dom = defaultDomain
		}
		qs = append(qs, Question{
			ID:           uuid.NewString(),
			Domain:       dom,
			Prompt:       r.Question,
			Options:      r.Options,
			CorrectIndex: r.CorrectAnswer,
			Explanation:  r.Explanation,
		})
	}
	return qs, nil
}

func drillPrompt(target string, count int) string {
	return fmt.Sprintf(`Generate %d distinct CCNA practice exam questions for the domain or topic: %q.

Requirements:
- Latest CCNA (200-301) syllabus.
- Each question has exactly one correct option.
- "correctAnswer" is the zero-based index of the correct entry in "options".
- "explanation" justifies the correct option in two or three sentences.
- Return a JSON array matching the provided schema, nothing else.`, count, target)
}

func simulationPrompt(count int, weights map[string]float64) string {
	domains := make([]string, 0, len(weights))
	for d := range weights {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	var b strings.Builder
	fmt.Fprintf(&b, `Generate %d distinct CCNA (200-301) mock exam questions covering all knowledge domains.

Distribute questions across the domains by these fractions:
`, count)
	for _, d := range domains {
		fmt.Fprintf(&b, "- %s: %.0f%%\n", d, weights[d]*100)
	}
	b.WriteString(`
Requirements:
- Tag every question with its "domain", copied verbatim from the list above.
- Each question has exactly one correct option.
- "correctAnswer" is the zero-based index of the correct entry in "options".
- "explanation" justifies the correct option in two or three sentences.
- Return a JSON array matching the provided schema, nothing else.`)
	return b.String()
}
