// Package service implements registration admission.
package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/credential"
	"github.com/abnerteste26-bot/group-champs/internal/fixture"
	groupService "github.com/abnerteste26-bot/group-champs/internal/group/service"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	"github.com/abnerteste26-bot/group-champs/internal/registration/model"
	"github.com/abnerteste26-bot/group-champs/internal/registration/repository"
	"github.com/abnerteste26-bot/group-champs/internal/storage"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
	teamRepository "github.com/abnerteste26-bot/group-champs/internal/team/repository"
)

const (
	maxNameLength  = 255
	anonymousActor = "anonymous"
)

// Service defines the interface for registration admission.
type Service interface {
	// SubmitRegistration records a public registration request.
	SubmitRegistration(ctx context.Context, req *model.SubmitRegistrationRequest) (*model.RegistrationResponse, error)

	// ApproveRegistration admits the team, allocates its group and, when the
	// last slot is taken, closes registration and generates the fixtures.
	ApproveRegistration(ctx context.Context, actor identity.Identity, registrationID string) (*model.ApprovalResult, error)

	// RejectRegistration rejects a pending registration.
	RejectRegistration(ctx context.Context, actor identity.Identity, registrationID string) (*model.RegistrationResponse, error)

	// ListPending returns the championship's pending registrations.
	ListPending(ctx context.Context, actor identity.Identity, championshipID string) ([]model.RegistrationResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	issuer credential.Issuer
	store  storage.ReferenceValidator
	audit  audit.Logger
	logger *zap.SugaredLogger
}

// New creates a new registration service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	issuer credential.Issuer,
	store storage.ReferenceValidator,
	auditLog audit.Logger,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		db:     db,
		issuer: issuer,
		store:  store,
		audit:  auditLog,
		logger: logger,
	}
}

// SubmitRegistration validates and stores a registration request.
func (s *service) SubmitRegistration(
	ctx context.Context,
	req *model.SubmitRegistrationRequest,
) (*model.RegistrationResponse, error) {
	teamName := strings.TrimSpace(req.TeamName)
	responsible := strings.TrimSpace(req.ResponsibleName)
	if !validName(teamName) {
		return nil, model.ErrInvalidTeamName
	}
	if !validName(responsible) {
		return nil, model.ErrInvalidResponsible
	}
	if !req.AcceptedRules {
		return nil, model.ErrRulesNotAccepted
	}

	championship, err := championshipRepository.New(s.db).GetByID(ctx, req.ChampionshipID)
	if err != nil {
		return nil, err
	}
	if !championship.RegistrationOpen || championship.IsFinished() {
		return nil, model.ErrRegistrationClosed
	}

	for _, ref := range []*string{req.ReceiptRef, req.BadgeRef} {
		if ref == nil {
			continue
		}
		if err := s.store.Validate(ctx, *ref); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	reg := &model.PendingRegistration{
		ID:              uuid.NewString(),
		ChampionshipID:  championship.ID,
		TeamName:        teamName,
		ResponsibleName: responsible,
		ContactPhone:    strings.TrimSpace(req.ContactPhone),
		ReceiptRef:      req.ReceiptRef,
		BadgeRef:        req.BadgeRef,
		AcceptedRules:   true,
		Notes:           req.Notes,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.logger.Infow("registration submitted", "registration_id", reg.ID, "championship_id", reg.ChampionshipID)
	s.audit.Record(ctx, anonymousActor, audit.ActionSubmitRegistration, map[string]interface{}{
		"registration_id": reg.ID,
		"championship_id": reg.ChampionshipID,
		"team_name":       reg.TeamName,
	})

	resp := s.toResponse(reg)
	return &resp, nil
}

// ApproveRegistration runs the whole admission in one transaction. The
// registration is claimed first with a conditional update, so two approvals
// of the same request cannot both proceed; the championship counter is
// taken under the championship row lock.
func (s *service) ApproveRegistration(
	ctx context.Context,
	actor identity.Identity,
	registrationID string,
) (*model.ApprovalResult, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.Status != model.StatusPending {
		return nil, model.ErrAlreadyProcessed
	}

	// Hashing is slow; keep it outside the championship lock.
	issued, err := s.issuer.Issue(ctx, reg.TeamName)
	if err != nil {
		return nil, err
	}

	result := &model.ApprovalResult{
		RegistrationID: registrationID,
		TeamID:         uuid.NewString(),
		Login:          issued.Login,
		Password:       issued.Password,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		champRepo := championshipRepository.New(tx)

		applied, err := repository.New(tx).MarkApproved(ctx, registrationID, result.TeamID)
		if err != nil {
			return err
		}
		if !applied {
			return model.ErrAlreadyProcessed
		}

		if err := champRepo.Lock(ctx, reg.ChampionshipID); err != nil {
			return err
		}
		championship, err := champRepo.GetByID(ctx, reg.ChampionshipID)
		if err != nil {
			return err
		}
		if !championship.RegistrationOpen || championship.IsFinished() {
			return model.ErrRegistrationClosed
		}

		taken, err := champRepo.IncrementConfirmed(ctx, reg.ChampionshipID)
		if err != nil {
			return err
		}
		if !taken {
			return model.ErrChampionshipFull
		}

		team := &teamModel.Team{
			ID:              result.TeamID,
			ChampionshipID:  reg.ChampionshipID,
			Name:            reg.TeamName,
			ResponsibleName: reg.ResponsibleName,
			ContactPhone:    reg.ContactPhone,
			BadgeRef:        reg.BadgeRef,
			Active:          true,
			OwnerID:         issued.Subject,
			Login:           issued.Login,
			PasswordHash:    issued.PasswordHash,
		}
		if err := teamRepository.New(tx).Create(ctx, team); err != nil {
			return err
		}

		assignment, err := groupService.Assign(ctx, tx, reg.ChampionshipID, team.ID)
		if err != nil {
			return err
		}
		result.GroupID = assignment.GroupID
		result.GroupName = assignment.GroupName

		if championship.ConfirmedTeamCount+1 < championship.MaxTeams {
			return nil
		}

		if err := champRepo.SetStatus(ctx, reg.ChampionshipID, championshipModel.StatusRegistrationClosed, false); err != nil {
			return err
		}
		result.RegistrationClosed = true
		result.FixturesCreated, err = fixture.GenerateInTx(ctx, tx, reg.ChampionshipID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("registration approved",
		"registration_id", registrationID,
		"team_id", result.TeamID,
		"group", result.GroupName,
		"registration_closed", result.RegistrationClosed,
	)
	s.audit.Record(ctx, actor.Subject, audit.ActionApproveRegistration, map[string]interface{}{
		"registration_id":  registrationID,
		"championship_id":  reg.ChampionshipID,
		"team_id":          result.TeamID,
		"group_id":         result.GroupID,
		"fixtures_created": result.FixturesCreated,
	})

	return result, nil
}

// RejectRegistration moves a pending registration to rejected.
func (s *service) RejectRegistration(
	ctx context.Context,
	actor identity.Identity,
	registrationID string,
) (*model.RegistrationResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, registrationID); err != nil {
		return nil, err
	}
	applied, err := s.repo.MarkRejected(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, model.ErrAlreadyProcessed
	}

	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor.Subject, audit.ActionRejectRegistration, map[string]interface{}{
		"registration_id": registrationID,
		"championship_id": reg.ChampionshipID,
	})

	resp := s.toResponse(reg)
	return &resp, nil
}

// ListPending returns the championship's pending registrations, oldest first.
func (s *service) ListPending(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) ([]model.RegistrationResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := championshipRepository.New(s.db).GetByID(ctx, championshipID); err != nil {
		return nil, err
	}

	regs, err := s.repo.ListPending(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	result := make([]model.RegistrationResponse, 0, len(regs))
	for i := range regs {
		result = append(result, s.toResponse(&regs[i]))
	}
	return result, nil
}

func (s *service) toResponse(reg *model.PendingRegistration) model.RegistrationResponse {
	resp := model.ToResponse(reg)
	if reg.ReceiptRef != nil {
		resp.ReceiptURL = s.store.PublicURL(*reg.ReceiptRef)
	}
	return resp
}

func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 0 && n <= maxNameLength
}
