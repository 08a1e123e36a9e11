package service

import (
	"context"
	"errors"

	commonerrors "github.com/AlibekovAA/user-registry/internal/common/errors"
	"github.com/AlibekovAA/user-registry/internal/common/logger"
	"github.com/AlibekovAA/user-registry/internal/common/validation"
	"github.com/AlibekovAA/user-registry/internal/user/domain"
	userrepo "github.com/AlibekovAA/user-registry/internal/user/repository"
)

type Service interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (domain.User, error)
}

type RegistryService struct {
	repo      userrepo.Repository
	validator *validation.Validator
	log       *logger.Logger
}

func NewRegistryService(repo userrepo.Repository, validator *validation.Validator, log *logger.Logger) *RegistryService {
	return &RegistryService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *RegistryService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	if err := s.validator.Struct(user, "body"); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": user.Username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		recordOperation(opRegister, resultInvalid)
		if vErr, ok := validation.AsError(err); ok {
			return domain.User{}, commonerrors.ErrValidation.WithDetails(vErr.Fields).WithCause(err)
		}
		return domain.User{}, commonerrors.ErrInternalError.WithCause(err)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": user.Username,
				"action":   "register_username_exists",
			}).Warn("register failed: username already registered")
			recordOperation(opRegister, resultConflict)
			return domain.User{}, commonerrors.ErrUsernameTaken.WithCause(err)
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": user.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		recordOperation(opRegister, resultError)
		return domain.User{}, err
	}

	recordOperation(opRegister, resultOK)
	incrementUsersRegistered()
	setRegistrySize(s.repo.Count(ctx))

	s.log.WithFields(ctx, logger.Fields{
		"username": created.Username,
		"action":   "register_success",
	}).Info("user registered")

	return created, nil
}

func (s *RegistryService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_failed",
		}).Errorf("list users failed: %v", err)
		recordOperation(opList, resultError)
		return nil, err
	}

	recordOperation(opList, resultOK)
	return users, nil
}

func (s *RegistryService) Get(ctx context.Context, username string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": username,
				"action":   "get_not_found",
			}).Debug("user not found")
			recordOperation(opGet, resultNotFound)
			return domain.User{}, commonerrors.ErrUserNotFound.WithCause(err)
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "get_failed",
		}).Errorf("get user failed: %v", err)
		recordOperation(opGet, resultError)
		return domain.User{}, err
	}

	recordOperation(opGet, resultOK)
	return user, nil
}
