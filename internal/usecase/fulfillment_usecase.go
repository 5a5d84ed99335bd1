package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/domain/pricing"
	"commerce_engine/internal/usecase/interfaces"
	"commerce_engine/internal/usecase/messages"

	"go.opentelemetry.io/otel/attribute"
)

var errStepNotConfigured = errors.New("not configured")

// FulfillmentDependencies groups the collaborators of the pipeline. A nil collaborator
// makes its step fail with "not configured" without affecting the others.
type FulfillmentDependencies struct {
	Notifier interfaces.INotifier
	Messages *messages.Composer
	Catalog  *pricing.Catalog
	Briefs   interfaces.IProjectBriefRepository
	Projects interfaces.IProjectRepository
	Team     interfaces.ITeamNotifier
	Kickoff  interfaces.IKickoffScheduler
}

// FulfillmentPipeline runs the post-payment onboarding steps. Each step is isolated:
// an error or panic in one is recorded in the report and the next step still runs.
type FulfillmentPipeline struct {
	notifier interfaces.INotifier
	messages *messages.Composer
	catalog  *pricing.Catalog
	briefs   interfaces.IProjectBriefRepository
	projects interfaces.IProjectRepository
	team     interfaces.ITeamNotifier
	kickoff  interfaces.IKickoffScheduler
	now      func() time.Time
}

var _ interfaces.IFulfillmentPipeline = (*FulfillmentPipeline)(nil)

func NewFulfillmentPipeline(deps FulfillmentDependencies) *FulfillmentPipeline {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = pricing.Default()
	}
	composer := deps.Messages
	if composer == nil {
		composer = messages.NewComposer(catalog, "", "")
	}
	return &FulfillmentPipeline{
		notifier: deps.Notifier,
		messages: composer,
		catalog:  catalog,
		briefs:   deps.Briefs,
		projects: deps.Projects,
		team:     deps.Team,
		kickoff:  deps.Kickoff,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// BriefIDForOrder and ProjectIDForOrder derive fulfillment record ids from the order
// id, so a repeated run collides in the store instead of duplicating records.
func BriefIDForOrder(orderID string) string   { return "brief_" + orderID }
func ProjectIDForOrder(orderID string) string { return "prj_" + orderID }

func (p *FulfillmentPipeline) Run(ctx context.Context, order entities.Order) entities.FulfillmentReport {
	ctx, span := startSpan(ctx, "fulfillment.run", attribute.String("order_id", order.ID))
	defer span.End()

	report := entities.FulfillmentReport{OrderID: order.ID, StartedAt: p.now()}
	log.Printf("[fulfillment][pipeline] start order_id=%s package=%s", order.ID, order.Package)

	steps := []struct {
		name string
		fn   func(context.Context, entities.Order) error
	}{
		{entities.StepWelcomeEmail, p.sendWelcome},
		{entities.StepProjectBrief, p.createBrief},
		{entities.StepProject, p.createProject},
		{entities.StepTeamNotice, p.notifyTeam},
		{entities.StepKickoffSchedule, p.requestKickoff},
	}
	for _, s := range steps {
		res := runStep(ctx, s.name, order, s.fn)
		if !res.OK {
			log.Printf("[fulfillment][pipeline] step failed order_id=%s step=%s err=%s", order.ID, res.Name, res.Error)
		}
		report.Steps = append(report.Steps, res)
	}

	report.FinishedAt = p.now()
	failed := len(report.Failed())
	span.SetAttributes(attribute.Int("failed_steps", failed))
	log.Printf("[fulfillment][pipeline] done order_id=%s steps=%d failed=%d", order.ID, len(report.Steps), failed)
	return report
}

func runStep(ctx context.Context, name string, order entities.Order, fn func(context.Context, entities.Order) error) (res entities.StepResult) {
	res.Name = name
	defer func() {
		if r := recover(); r != nil {
			res.OK = false
			res.Error = fmt.Sprintf("panic: %v", r)
		}
	}()
	if err := fn(ctx, order); err != nil {
		res.Error = err.Error()
		return res
	}
	res.OK = true
	return res
}

func (p *FulfillmentPipeline) sendWelcome(ctx context.Context, o entities.Order) error {
	if p.notifier == nil {
		return errStepNotConfigured
	}
	if o.CustomerEmail == "" {
		return errors.New("order has no customer email")
	}
	return p.notifier.SendEmail(ctx, p.messages.Welcome(o))
}

func (p *FulfillmentPipeline) createBrief(ctx context.Context, o entities.Order) error {
	if p.briefs == nil {
		return errStepNotConfigured
	}
	now := p.now()
	_, err := p.briefs.Create(ctx, entities.ProjectBrief{
		ID:        BriefIDForOrder(o.ID),
		OrderID:   o.ID,
		CompanyID: o.CompanyID,
		Package:   o.Package,
		Status:    entities.ProjectBriefStatusAwaitingAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[fulfillment][pipeline] brief already exists order_id=%s", o.ID)
		return nil
	}
	return err
}

func (p *FulfillmentPipeline) createProject(ctx context.Context, o entities.Order) error {
	if p.projects == nil {
		return errStepNotConfigured
	}
	_, err := p.projects.Create(ctx, entities.Project{
		ID:        ProjectIDForOrder(o.ID),
		CompanyID: o.CompanyID,
		OrderID:   o.ID,
		Name:      fmt.Sprintf("%s website (%s)", p.catalog.DisplayName(o.Package), o.ID),
		Package:   o.Package,
		Status:    entities.ProjectStatusPlanning,
		CreatedAt: p.now(),
	})
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[fulfillment][pipeline] project already exists order_id=%s", o.ID)
		return nil
	}
	return err
}

func (p *FulfillmentPipeline) notifyTeam(ctx context.Context, o entities.Order) error {
	if p.team == nil {
		return errStepNotConfigured
	}
	paidAt := p.now()
	if o.PaymentDate != nil {
		paidAt = *o.PaymentDate
	}
	return p.team.NotifyNewPaidProject(ctx, entities.NewPaidProjectNotice{
		OrderID:       o.ID,
		CompanyID:     o.CompanyID,
		Package:       o.Package,
		Total:         o.Total,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		ProjectID:     ProjectIDForOrder(o.ID),
		BriefID:       BriefIDForOrder(o.ID),
		PaidAt:        paidAt,
	})
}

func (p *FulfillmentPipeline) requestKickoff(ctx context.Context, o entities.Order) error {
	if p.kickoff == nil {
		return errStepNotConfigured
	}
	return p.kickoff.RequestKickoff(ctx, o)
}
