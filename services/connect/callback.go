package connect

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectService drives the OAuth callback flow: it turns the query
// parameters the provider redirected back with into an Attempt, runs the
// per-platform entity lookup, and finalizes the user's selection.
type ConnectService interface {
	Begin(ctx context.Context, params url.Values) (*Attempt, error)
	GetAttempt(ctx context.Context, id string) (*Attempt, error)
	Select(ctx context.Context, id, entityID string) (*Attempt, error)
}

// DefaultConnectService is the production implementation.
type DefaultConnectService struct {
	API   *lateapi.Client
	Store AttemptStore
	Cache utils.ResourceCache
}

const resourceAccounts = "accounts"

// Begin evaluates the callback parameters once, in order: a provider
// error is surfaced verbatim, a direct "connected" result succeeds
// immediately, a step+platform pair enters the entity-selection
// sub-flow, and anything else is rejected.
func (s *DefaultConnectService) Begin(ctx context.Context, params url.Values) (*Attempt, error) {
	attempt := &Attempt{
		ID:        uuid.NewString(),
		State:     StateProcessing,
		Version:   1,
		CreatedAt: time.Now().UTC(),

		TempToken:        params.Get("tempToken"),
		UserProfile:      params.Get("userProfile"),
		ConnectToken:     params.Get("connect_token"),
		PendingDataToken: params.Get("pendingDataToken"),
		ProfileID:        params.Get("profileId"),
	}

	if errParam := params.Get("error"); errParam != "" {
		// Surfaced verbatim; it is only ever rendered as text.
		attempt.fail(errParam)
		if err := s.Store.Save(ctx, attempt); err != nil {
			return nil, err
		}
		return attempt, nil
	}

	if connected := params.Get("connected"); connected != "" {
		attempt.ConnectedAs = connected
		attempt.succeed()
		s.invalidateAccounts(ctx)
		if err := s.Store.Save(ctx, attempt); err != nil {
			return nil, err
		}
		return attempt, nil
	}

	step := params.Get("step")
	platform := models.Platform(params.Get("platform"))
	if step != "" && platform != "" {
		attempt.Platform = platform
		attempt.Step = step
		if err := s.Store.Save(ctx, attempt); err != nil {
			return nil, err
		}
		return s.lookupEntities(ctx, attempt)
	}

	attempt.fail(MsgInvalidParams)
	if err := s.Store.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// GetAttempt loads an attempt by id.
func (s *DefaultConnectService) GetAttempt(ctx context.Context, id string) (*Attempt, error) {
	return s.Store.Get(ctx, id)
}

// lookupEntities runs the platform's candidate-list call and applies the
// result compare-and-set: if the attempt moved on (or expired) while the
// call was in flight, the result is dropped.
func (s *DefaultConnectService) lookupEntities(ctx context.Context, attempt *Attempt) (*Attempt, error) {
	logger := utils.GetLogger()

	entities, err := s.fetchEntities(ctx, attempt)
	if err != nil {
		logger.Error("Entity lookup failed",
			zap.String("platform", string(attempt.Platform)),
			zap.String("step", attempt.Step),
			zap.Error(err))
		return s.applyOrCurrent(ctx, attempt, func(a *Attempt) {
			a.fail(MsgLoadOptions)
		})
	}

	return s.applyOrCurrent(ctx, attempt, func(a *Attempt) {
		a.State = StateSelectEntity
		a.Entities = entities
		a.Version++
	})
}

// fetchEntities dispatches the lookup by platform and step. Unmatched
// combinations, including LinkedIn without its pending-data token, are a
// silent no-op: no call is made and the list stays empty.
func (s *DefaultConnectService) fetchEntities(ctx context.Context, attempt *Attempt) ([]models.Entity, error) {
	switch attempt.Platform {
	case models.PlatformFacebook:
		if attempt.Step == "select_page" {
			resp, err := s.API.ListFacebookPages(ctx, attempt.ConnectToken)
			if err != nil {
				return nil, err
			}
			return resp.Pages, nil
		}
	case models.PlatformLinkedIn:
		if attempt.Step == "select_organization" && attempt.PendingDataToken != "" {
			resp, err := s.API.PendingOAuthData(ctx, attempt.PendingDataToken)
			if err != nil {
				return nil, err
			}
			return resp.Organizations, nil
		}
	case models.PlatformPinterest:
		if attempt.Step == "select_board" {
			resp, err := s.API.ListPinterestBoards(ctx, attempt.TempToken, attempt.ConnectToken)
			if err != nil {
				return nil, err
			}
			return resp.Boards, nil
		}
	case models.PlatformGoogleBusiness:
		if attempt.Step == "select_location" {
			resp, err := s.API.ListGoogleBusinessLocations(ctx, attempt.TempToken, attempt.ConnectToken)
			if err != nil {
				return nil, err
			}
			return resp.Locations, nil
		}
	}
	return nil, nil
}

// Select finalizes the user's choice. The finalize call gets exactly one
// shot: a provider-reported failure in the response body does not stop
// the flow, only a transport failure routes to the error state.
func (s *DefaultConnectService) Select(ctx context.Context, id, entityID string) (*Attempt, error) {
	attempt, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if attempt.State != StateSelectEntity {
		return nil, fmt.Errorf("attempt %s is not awaiting a selection", id)
	}
	if entityID == "" {
		return nil, fmt.Errorf("entity id is required")
	}

	attempt, err = s.Store.Apply(ctx, id, attempt.Version, func(a *Attempt) {
		a.State = StateProcessing
		a.Version++
	})
	if err != nil {
		return nil, err
	}

	finalizeErr := s.finalize(ctx, attempt, entityID)

	var perr *lateapi.ProviderError
	if finalizeErr != nil && !errors.As(finalizeErr, &perr) {
		utils.GetLogger().Error("Finalize selection failed",
			zap.String("platform", string(attempt.Platform)),
			zap.Error(finalizeErr))
		return s.applyOrCurrent(ctx, attempt, func(a *Attempt) {
			a.fail(MsgFinalizeFailed)
		})
	}
	if finalizeErr != nil {
		// At-most-one-attempt policy: the provider's own error report
		// is logged but does not fail the flow.
		utils.GetLogger().Warn("Finalize selection reported an error",
			zap.String("platform", string(attempt.Platform)),
			zap.Error(finalizeErr))
	}

	s.invalidateAccounts(ctx)
	return s.applyOrCurrent(ctx, attempt, func(a *Attempt) {
		a.succeed()
	})
}

func (s *DefaultConnectService) finalize(ctx context.Context, attempt *Attempt, entityID string) error {
	req := models.SelectEntityRequest{
		TempToken:   attempt.TempToken,
		UserProfile: attempt.UserProfile,
		ProfileID:   attempt.ProfileID,
	}

	var err error
	switch attempt.Platform {
	case models.PlatformFacebook:
		req.PageID = entityID
		_, err = s.API.SelectFacebookPage(ctx, req)
	case models.PlatformLinkedIn:
		req.OrganizationID = entityID
		_, err = s.API.SelectLinkedInOrganization(ctx, req)
	case models.PlatformPinterest:
		req.BoardID = entityID
		_, err = s.API.SelectPinterestBoard(ctx, req)
	case models.PlatformGoogleBusiness:
		req.LocationID = entityID
		_, err = s.API.SelectGoogleBusinessLocation(ctx, req)
	default:
		err = fmt.Errorf("platform %q has no entity selection", attempt.Platform)
	}
	return err
}

// applyOrCurrent applies fn compare-and-set; when the attempt already
// moved on, the stored state wins and is returned unchanged.
func (s *DefaultConnectService) applyOrCurrent(ctx context.Context, attempt *Attempt, fn func(*Attempt)) (*Attempt, error) {
	updated, err := s.Store.Apply(ctx, attempt.ID, attempt.Version, fn)
	if errors.Is(err, ErrStaleAttempt) {
		utils.GetLogger().Debug("Discarding stale attempt update", zap.String("attemptId", attempt.ID))
		return s.Store.Get(ctx, attempt.ID)
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// invalidateAccounts clears cached account listings so the accounts page
// re-fetches canonical data after the redirect.
func (s *DefaultConnectService) invalidateAccounts(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateResource(ctx, resourceAccounts); err != nil {
		utils.GetLogger().Warn("Failed to invalidate accounts cache", zap.Error(err))
	}
}
