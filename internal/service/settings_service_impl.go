package service

import (
	"context"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
)

type settingsService struct {
	config repository.ConfigRepo
}

func NewSettingsService(config repository.ConfigRepo) SettingsService {
	return &settingsService{config: config}
}

func (s *settingsService) Get(ctx context.Context) (domain.AppConfig, error) {
	return s.config.Load(ctx)
}

func (s *settingsService) Update(ctx context.Context, cfg domain.AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.config.Save(ctx, cfg)
}
