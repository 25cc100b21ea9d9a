package lead

import (
	"context"
	"strings"
	"time"

	"lendhub-backend/internal/domain/activity"
	"lendhub-backend/internal/domain/errs"
	domainLead "lendhub-backend/internal/domain/lead"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/internal/infrastructure/metrics"
	"lendhub-backend/pkg/id"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 5 * time.Second

	// RecentWindow is how far back Statistics.Recent looks.
	RecentWindow = 30 * 24 * time.Hour
)

// Usecase is the only writer of leads and activities. Every mutation
// changes the lead and appends exactly one activity in one transaction.
type Usecase struct {
	uow        uow.UnitOfWork
	leads      domainLead.Repository
	activities activity.Repository

	events  domainLead.EventPublisher
	log     *zap.Logger
	now     func() time.Time
	timeout time.Duration
}

type Option func(*Usecase)

func WithPublisher(p domainLead.EventPublisher) Option {
	return func(u *Usecase) {
		if p != nil {
			u.events = p
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(u *Usecase) {
		if l != nil {
			u.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// WithTimeout bounds every store round trip; zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(u *Usecase) {
		if d > 0 {
			u.timeout = d
		}
	}
}

// NewUsecase: reads go through leads/activities, mutations through tx.
func NewUsecase(tx uow.UnitOfWork, leads domainLead.Repository, activities activity.Repository, opts ...Option) *Usecase {
	u := &Usecase{
		uow:        tx,
		leads:      leads,
		activities: activities,
		events:     domainLead.NopPublisher{},
		log:        zap.NewNop(),
		now:        time.Now,
		timeout:    defaultTimeout,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *Usecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, u.timeout)
}

func (u *Usecase) clock() time.Time {
	return u.now().UTC().Truncate(time.Microsecond)
}

func (u *Usecase) CreateLead(ctx context.Context, in CreateLeadInput) (*domainLead.Lead, error) {
	in.normalize()
	if err := validateStruct(&in); err != nil {
		return nil, err
	}
	if in.Source == "" {
		in.Source = domainLead.DefaultSource
	}

	at := u.clock()
	l := &domainLead.Lead{
		ID:               id.New(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		LoanAmount:       in.LoanAmount,
		LoanPurpose:      in.LoanPurpose,
		EmploymentStatus: in.EmploymentStatus,
		MonthlyIncome:    in.MonthlyIncome,
		Source:           in.Source,
		Status:           domainLead.StatusNew,
		CreatedAt:        at,
		UpdatedAt:        at,
	}
	if in.LenderID != "" {
		lid := in.LenderID
		l.LenderID = &lid
	}

	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if l.LenderID != nil {
			ld, err := r.Lenders.GetByID(ctx, *l.LenderID)
			if errs.IsNotFound(err) {
				return errs.Validation("lender_id", "lender_id does not reference a known lender")
			}
			if err != nil {
				return err
			}
			l.LenderName, l.LenderSlug = ld.Name, ld.Slug
		}
		return r.Leads.Create(ctx, l)
	})
	if err != nil {
		err = errs.Store("create lead", err)
		u.log.Warn("create lead failed", zap.String("email", l.Email), zap.Error(err))
		return nil, err
	}

	metrics.RecordLeadCreated(l.Source)
	u.log.Info("lead created",
		zap.String("lead_id", l.ID),
		zap.String("source", l.Source),
	)
	u.publish(ctx, domainLead.Event{
		Type:       domainLead.EventCreated,
		LeadID:     l.ID,
		Status:     l.Status,
		LenderID:   in.LenderID,
		OccurredAt: at,
	})
	return l, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*domainLead.Lead, error) {
	to, ok := domainLead.ParseStatus(in.Status)
	if !ok {
		return nil, errs.Validation("status", "status must be one of new, contacted, qualified, approved, rejected, closed")
	}
	note := strings.TrimSpace(in.Notes)

	return u.mutate(ctx, activity.KindStatusChange, in.LeadID, in.Actor,
		func(l *domainLead.Lead, at time.Time) (domainLead.UpdateFields, activity.Activity) {
			meta := activity.Metadata{"from": string(l.Status), "to": string(to)}
			f := domainLead.UpdateFields{Status: &to}
			if note != "" {
				notes := domainLead.AppendNote(l.Notes, note, at)
				f.Notes = &notes
				meta["note"] = note
			}
			return f, activity.Activity{
				Description: "Status changed to " + string(to),
				Metadata:    meta,
			}
		})
}

func (u *Usecase) Assign(ctx context.Context, in AssignInput) (*domainLead.Lead, error) {
	assignee := strings.TrimSpace(in.AssignedTo)
	if assignee == "" {
		return nil, errs.Validation("assignedTo", "assignedTo is required")
	}

	return u.mutate(ctx, activity.KindAssignmentChanged, in.LeadID, in.Actor,
		func(l *domainLead.Lead, _ time.Time) (domainLead.UpdateFields, activity.Activity) {
			meta := activity.Metadata{"assigned_to": assignee, "previous": nil}
			if l.AssignedTo != nil {
				meta["previous"] = *l.AssignedTo
			}
			return domainLead.UpdateFields{AssignedTo: &assignee}, activity.Activity{
				Description: "Lead assigned to new user",
				Metadata:    meta,
			}
		})
}

func (u *Usecase) AddNote(ctx context.Context, in AddNoteInput) (*domainLead.Lead, error) {
	note := strings.TrimSpace(in.Note)
	if note == "" {
		return nil, errs.Validation("note", "note is required")
	}

	return u.mutate(ctx, activity.KindNoteAdded, in.LeadID, in.Actor,
		func(l *domainLead.Lead, at time.Time) (domainLead.UpdateFields, activity.Activity) {
			notes := domainLead.AppendNote(l.Notes, note, at)
			return domainLead.UpdateFields{Notes: &notes}, activity.Activity{Description: note}
		})
}

type buildFn func(l *domainLead.Lead, at time.Time) (domainLead.UpdateFields, activity.Activity)

// mutate locks the lead, applies the fields built from it and appends the
// activity. Either both writes commit or neither does.
func (u *Usecase) mutate(ctx context.Context, kind activity.Kind, leadID, actor string, build buildFn) (*domainLead.Lead, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return nil, errs.Validation("actor", "actor is required")
	}
	if strings.TrimSpace(leadID) == "" {
		return nil, errs.Validation("id", "lead id is required")
	}

	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	var out *domainLead.Lead
	err := u.uow.WithinLeadTx(ctx, leadID, func(r uow.Repos, l *domainLead.Lead) error {
		at := domainLead.NextUpdatedAt(l.UpdatedAt, u.now())
		fields, a := build(l, at)
		fields.UpdatedAt = at

		if err := r.Leads.ApplyMutation(ctx, l.ID, fields); err != nil {
			return err
		}

		a.ID = id.New()
		a.LeadID = l.ID
		a.Type = kind
		a.PerformedBy = actor
		a.CreatedAt = at
		if err := r.Activities.Append(ctx, &a); err != nil {
			return err
		}

		if fields.Status != nil {
			l.Status = *fields.Status
		}
		if fields.AssignedTo != nil {
			l.AssignedTo = fields.AssignedTo
		}
		if fields.Notes != nil {
			l.Notes = *fields.Notes
		}
		l.UpdatedAt = at
		out = l
		return nil
	})
	if err != nil {
		err = errs.Store("update lead", err)
		metrics.RecordLeadMutation(string(kind), string(errs.KindOf(err)))
		fields := []zap.Field{
			zap.String("lead_id", leadID),
			zap.String("actor", actor),
			zap.String("activity_type", string(kind)),
			zap.Error(err),
		}
		if errs.KindOf(err) == errs.KindStore {
			u.log.Error("lead mutation failed", fields...)
		} else {
			u.log.Warn("lead mutation rejected", fields...)
		}
		return nil, err
	}

	metrics.RecordLeadMutation(string(kind), "ok")
	u.log.Info("lead mutated",
		zap.String("lead_id", out.ID),
		zap.String("actor", actor),
		zap.String("activity_type", string(kind)),
	)
	u.publish(ctx, eventFor(kind, out, actor))
	return out, nil
}

func eventFor(kind activity.Kind, l *domainLead.Lead, actor string) domainLead.Event {
	e := domainLead.Event{
		LeadID:     l.ID,
		Status:     l.Status,
		Actor:      actor,
		OccurredAt: l.UpdatedAt,
	}
	switch kind {
	case activity.KindStatusChange:
		e.Type = domainLead.EventStatusChanged
	case activity.KindAssignmentChanged:
		e.Type = domainLead.EventAssigned
	default:
		e.Type = domainLead.EventNoteAdded
	}
	if l.AssignedTo != nil {
		e.AssignedTo = *l.AssignedTo
	}
	if l.LenderID != nil {
		e.LenderID = *l.LenderID
	}
	return e
}

// publish runs after commit; a failure is logged and counted, never returned.
func (u *Usecase) publish(ctx context.Context, e domainLead.Event) {
	if err := u.events.Publish(ctx, e); err != nil {
		metrics.RecordEventPublishError(string(e.Type))
		u.log.Error("publish lead event",
			zap.String("event_type", string(e.Type)),
			zap.String("lead_id", e.LeadID),
			zap.Error(err),
		)
	}
}

func (u *Usecase) List(ctx context.Context, in ListLeadsInput) ([]domainLead.Lead, error) {
	f := domainLead.Filter{LenderID: strings.TrimSpace(in.LenderID), Limit: in.Limit}
	if in.Status != "" {
		st, ok := domainLead.ParseStatus(in.Status)
		if !ok {
			return nil, errs.Validation("status", "unknown status filter")
		}
		f.Status = st
	}
	if in.Limit < 0 {
		return nil, errs.Validation("limit", "limit must not be negative")
	}

	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	out, err := u.leads.List(ctx, f)
	if err != nil {
		return nil, errs.Store("list leads", err)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, leadID string) (*LeadDetail, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	l, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, errs.Store("get lead", err)
	}
	acts, err := u.activities.ListForLead(ctx, leadID)
	if err != nil {
		return nil, errs.Store("list activities", err)
	}
	if acts == nil {
		acts = []activity.Activity{}
	}
	return &LeadDetail{Lead: *l, Activities: acts}, nil
}

func (u *Usecase) Statistics(ctx context.Context) (*Statistics, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	counts, err := u.leads.CountByStatus(ctx)
	if err != nil {
		return nil, errs.Store("count leads", err)
	}
	recent, err := u.leads.CountCreatedSince(ctx, u.clock().Add(-RecentWindow))
	if err != nil {
		return nil, errs.Store("count recent leads", err)
	}

	out := &Statistics{Recent: recent, ByStatus: make(map[string]int64, len(counts))}
	for st, n := range counts {
		if n <= 0 {
			continue
		}
		out.ByStatus[string(st)] = n
		out.Total += n
	}
	return out, nil
}
