package tracker

import (
	"context"

	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/store"
)

// Settings record field names.
const (
	fieldPackPrice = "pack_price"
	fieldPerPack   = "cigarettes_per_pack"
)

// Settings carries the per-user tracking parameters used by the savings
// figures.
type Settings struct {
	PackPrice         float64
	CigarettesPerPack int
}

// PricePerCigarette derives the unit price.
func (st Settings) PricePerCigarette() float64 {
	if st.CigarettesPerPack <= 0 {
		return 0
	}
	return st.PackPrice / float64(st.CigarettesPerPack)
}

// Settings reads the stored user settings, falling back to the configured
// defaults field by field. Store failures degrade to the defaults.
func (s *Service) Settings(ctx context.Context) Settings {
	out := Settings{
		PackPrice:         s.DefaultPackPrice,
		CigarettesPerPack: s.DefaultPerPack,
	}
	if s.Persistence == nil {
		return out
	}

	rec, found, err := s.Persistence.Read(ctx, s.settingsPath())
	if err != nil {
		s.warn("read settings failed", "err", err)
		return out
	}
	if !found {
		return out
	}

	if price, ok := floatField(rec, fieldPackPrice); ok && price > 0 {
		out.PackPrice = price
	}
	if per, ok := floatField(rec, fieldPerPack); ok && per > 0 {
		out.CigarettesPerPack = int(per)
	}
	return out
}

// SaveSettings merges the provided values into the settings record; zero or
// negative values leave the stored field untouched.
func (s *Service) SaveSettings(ctx context.Context, settings Settings) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	partial := store.Record{
		entry.FieldUpdated: entry.FormatTime(s.Clock.Now()),
	}
	if settings.PackPrice > 0 {
		partial[fieldPackPrice] = settings.PackPrice
	}
	if settings.CigarettesPerPack > 0 {
		partial[fieldPerPack] = settings.CigarettesPerPack
	}

	_, err := s.Persistence.Merge(ctx, s.settingsPath(), partial)
	return err
}

func floatField(rec store.Record, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
