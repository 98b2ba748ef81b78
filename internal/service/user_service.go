package service

import (
	"context"
	"time"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/metrics"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	Login(ctx context.Context, req dto.LoginRequestDTO) (*dto.UserDTO, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{db: db, userRepo: userRepo}
}

// Login registers the user on first sight. For a returning id the stored
// record is returned as is: the name sent now is ignored, the first one wins.
func (s *userService) Login(ctx context.Context, req dto.LoginRequestDTO) (*dto.UserDTO, error) {
	if req.ID == "" || req.Name == "" {
		return nil, validationError("name and id are required")
	}

	var (
		user    *model.User
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		var err error
		created, err = users.CreateIfAbsent(ctx, &model.User{ID: req.ID, Name: req.Name, CreatedAt: time.Now()})
		if err != nil {
			return err
		}
		user, err = users.FindByID(ctx, req.ID)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("userID", req.ID).Msg("Login: failed to upsert user")
		return nil, storeError("failed to log in", err)
	}

	if created {
		metrics.Logins.WithLabelValues("new").Inc()
		log.Info().Str("userID", user.ID).Msg("Registered new user")
	} else {
		metrics.Logins.WithLabelValues("returning").Inc()
		if user.Name != req.Name {
			log.Debug().Str("userID", user.ID).Msg("Login: keeping stored name, supplied name ignored")
		}
	}
	return &dto.UserDTO{ID: user.ID, Name: user.Name}, nil
}
