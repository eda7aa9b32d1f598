// Package translate turns natural-language questions into validated
// SQL queries, expression programs or visualization parameters using a
// chat-completion model. Every model response is validated before use;
// rejected responses are retried with the rejection reason fed back.
package translate

import (
	"context"
	"fmt"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/config"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/llm"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
)

// Protocol runs the draft/validate/retry loop for one query kind.
type Protocol struct {
	completer        llm.Completer
	kind             QueryKind
	retryBudget      int
	temperature      float64
	retryTemperature float64
	maxTokens        int
	logger           *logger.Logger
}

// NewProtocol creates a Protocol for the given kind. Zero-valued config
// fields fall back to the package defaults.
func NewProtocol(completer llm.Completer, kind QueryKind, cfg config.TranslationConfig, log *logger.Logger) *Protocol {
	if log == nil {
		log = logger.NewDefault()
	}
	defaults := config.DefaultConfig().Translation
	if cfg.RetryBudget < 0 {
		cfg.RetryBudget = defaults.RetryBudget
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaults.Temperature
	}
	if cfg.RetryTemperature <= 0 {
		cfg.RetryTemperature = defaults.RetryTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}
	return &Protocol{
		completer:        completer,
		kind:             kind,
		retryBudget:      cfg.RetryBudget,
		temperature:      cfg.Temperature,
		retryTemperature: cfg.RetryTemperature,
		maxTokens:        cfg.MaxTokens,
		logger:           log,
	}
}

// Translate runs the protocol for a question against a schema. It
// returns the accepted query together with the full attempt trail, or
// the trail and a TranslationError when the retry budget is exhausted.
func (p *Protocol) Translate(ctx context.Context, question string, schema *Schema) (*Query, []Attempt, error) {
	if question == "" {
		return nil, nil, fmt.Errorf("question must not be empty")
	}
	if schema == nil || len(schema.Columns) == 0 {
		return nil, nil, fmt.Errorf("schema must describe at least one column")
	}

	var (
		attempts   []Attempt
		rawOutput  string
		priorError string
		query      *Query
		attemptIdx int
	)

	state := StateDrafting
	for state != StateAccepted && state != StateExhausted {
		switch state {
		case StateDrafting:
			temp := p.temperature
			var messages []llm.Message
			if attemptIdx == 0 {
				messages = buildInitialMessages(p.kind, question, schema)
			} else {
				temp = p.retryTemperature
				messages = buildRetryMessages(p.kind, question, schema, rawOutput, priorError)
			}

			text, err := p.completer.Complete(ctx, messages, temp, p.maxTokens)
			if err != nil {
				p.logger.WithAttempt(attemptIdx).Warnf("Completion request failed: %v", err)
				attempts = append(attempts, Attempt{
					Index:      attemptIdx,
					Question:   question,
					PriorError: priorError,
					Outcome:    OutcomeRejected,
					Error:      err.Error(),
				})
				rawOutput = ""
				priorError = err.Error()
				state = p.afterRejection(attemptIdx, &attemptIdx)
				continue
			}
			rawOutput = text
			state = StateValidating

		case StateValidating:
			var validationErr string
			query, validationErr = p.validate(rawOutput, schema)
			attempt := Attempt{
				Index:      attemptIdx,
				Question:   question,
				Output:     rawOutput,
				PriorError: priorError,
			}
			if validationErr == "" {
				attempt.Outcome = OutcomeAccepted
				attempts = append(attempts, attempt)
				p.logger.WithAttempt(attemptIdx).Infow("Translation accepted",
					"kind", string(p.kind))
				state = StateAccepted
				continue
			}
			attempt.Outcome = OutcomeRejected
			attempt.Error = validationErr
			attempts = append(attempts, attempt)
			p.logger.WithAttempt(attemptIdx).Warnf("Translation rejected: %s", validationErr)
			priorError = validationErr
			state = p.afterRejection(attemptIdx, &attemptIdx)

		case StateRetrying:
			state = StateDrafting
		}
	}

	if state == StateExhausted {
		return nil, attempts, &TranslationError{
			Question:  question,
			Attempts:  len(attempts),
			LastError: priorError,
		}
	}
	return query, attempts, nil
}

// afterRejection decides whether a rejected attempt gets another round.
// The budget counts retries, so attempt N may retry while N < budget.
func (p *Protocol) afterRejection(attemptIdx int, counter *int) State {
	if attemptIdx < p.retryBudget {
		*counter++
		return StateRetrying
	}
	return StateExhausted
}

// validate dispatches the raw model output to the validator for the
// protocol's query kind.
func (p *Protocol) validate(raw string, schema *Schema) (*Query, string) {
	switch p.kind {
	case KindExpression:
		code, verr := validateExpression(raw)
		if verr != "" {
			return nil, verr
		}
		return &Query{Kind: KindExpression, Expression: code}, ""
	case KindViz:
		params, verr := validateViz(raw, schema)
		if verr != "" {
			return nil, verr
		}
		return &Query{Kind: KindViz, Viz: params}, ""
	default:
		stmt, verr := validateSQL(raw)
		if verr != "" {
			return nil, verr
		}
		return &Query{Kind: KindSQL, SQL: stmt}, ""
	}
}
