package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/meeledger/internal/storage"
)

const (
	KeyTheme       = "mee_theme"
	KeyOnboarded   = "budget_onboard"
	KeyAddFormOpen = "budget_addOpen"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}

	return ThemeLight
}

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// Service stores UI preferences next to the ledger. Unknown or missing values read as defaults.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Theme(ctx context.Context) (Theme, error) {
	v, err := s.get(ctx, KeyTheme)
	if err != nil {
		return ThemeDark, err
	}

	if Theme(v) == ThemeLight {
		return ThemeLight, nil
	}

	return ThemeDark, nil
}

func (s *Service) SetTheme(ctx context.Context, t Theme) error {
	return s.put(ctx, KeyTheme, string(t))
}

func (s *Service) Onboarded(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyOnboarded)

	return v == "1", err
}

func (s *Service) MarkOnboarded(ctx context.Context) error {
	return s.put(ctx, KeyOnboarded, "1")
}

// AddFormOpen defaults to true when nothing is stored.
func (s *Service) AddFormOpen(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyAddFormOpen)
	if err != nil {
		return true, err
	}

	return v != "0", nil
}

func (s *Service) SetAddFormOpen(ctx context.Context, open bool) error {
	v := "0"
	if open {
		v = "1"
	}

	return s.put(ctx, KeyAddFormOpen, v)
}

func (s *Service) get(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("reading %s: %w", key, err)
	}

	return v, nil
}

func (s *Service) put(ctx context.Context, key, value string) error {
	if err := s.repo.Put(ctx, key, value); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}
