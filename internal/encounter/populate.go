package encounter

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

// MaxPlacementTries bounds how many creatures Populate tries to place per
// team before giving up.
const MaxPlacementTries = 512

// ErrPlacementExhausted means a team could not reach its CR budget.
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

// TemplatePool supplies creature templates for population.
type TemplatePool interface {
	Pick(rng *rand.Rand) (actor.Template, bool)
}

// PopulateParams describes the teams to generate.
type PopulateParams struct {
	// CRTarget is the challenge rating each team is filled up to.
	CRTarget float64
	Teams    int
}

// Populate fills each team with creatures from pool, placed at random free
// floor, until the team's total CR reaches params.CRTarget.
func (e *Encounter) Populate(ctx context.Context, params PopulateParams, pool TemplatePool) error {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.populate")
	defer span.End()

	span.SetAttributes(
		attribute.String("encounter.id", e.id.String()),
		attribute.Int("encounter.teams", params.Teams),
		attribute.Float64("encounter.cr_target", params.CRTarget),
	)

	for team := 0; team < params.Teams; team++ {
		total := 0.0
		tries := 0
		for total < params.CRTarget {
			if tries >= MaxPlacementTries {
				span.RecordError(ErrPlacementExhausted)
				return fmt.Errorf("%w: team %d reached CR %.2f of %.2f", ErrPlacementExhausted, team, total, params.CRTarget)
			}
			tries++

			tmpl, ok := pool.Pick(e.rng)
			if !ok {
				return fmt.Errorf("%w: empty template pool", ErrPlacementExhausted)
			}
			pos, err := e.RandomSpawn(tmpl.Size)
			if err != nil {
				continue
			}
			if _, err := e.Instantiate(tmpl, pos, team); err != nil {
				return err
			}
			total += tmpl.CR
		}
		e.logger.Info("team populated", zap.Int("team", team), zap.Float64("cr", total), zap.Int("tries", tries))
	}

	span.SetAttributes(attribute.Int("encounter.actor_count", len(e.roster)))
	return nil
}
