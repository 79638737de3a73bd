package navigator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/navigator"
)

var (
	unit7      = domain.AdministrativeUnit{ID: "7", Code: "7", Name: "7ème Arrondissement"}
	unit8      = domain.AdministrativeUnit{ID: "8", Code: "8", Name: "8ème Arrondissement"}
	invalides  = domain.District{ID: "q26", Name: "Invalides", Parent: domain.ParentRef{ID: "7"}}
	grosCaillo = domain.District{ID: "q28", Name: "Gros-Caillou", Parent: domain.ParentRef{ID: "7"}}
	champ      = domain.GreenSpace{ID: "ev7", Name: "Champ de Mars"}
	esplanade  = domain.GreenSpace{ID: "ev8", Name: "Esplanade des Invalides"}
)

func TestSelectUnit(t *testing.T) {
	s := navigator.Initial().SelectUnit(unit7)

	assert.Equal(t, navigator.LevelDistrict, s.Level)
	assert.Equal(t, "7", s.Unit.ID)
	assert.True(t, s.PanelOpen)

	s, err := s.SelectDistrict(invalides)
	require.NoError(t, err)
	s, err = s.SelectGreenSpace(champ)
	require.NoError(t, err)

	s = s.SelectUnit(unit8)
	assert.Equal(t, navigator.LevelDistrict, s.Level)
	assert.Equal(t, "8", s.Unit.ID)
	assert.Nil(t, s.District)
	assert.Nil(t, s.GreenSpace)
}

func TestSelectDistrict_RequiresUnit(t *testing.T) {
	s, err := navigator.Initial().SelectDistrict(invalides)
	assert.ErrorIs(t, err, navigator.ErrNoUnitSelected)
	assert.Equal(t, navigator.Initial(), s)
}

func TestSelectDistrict_ClearsGreenSpace(t *testing.T) {
	s := navigator.Initial().SelectUnit(unit7)
	s, _ = s.SelectDistrict(invalides)
	s, _ = s.SelectGreenSpace(champ)
	require.NotNil(t, s.GreenSpace)

	s, err := s.SelectDistrict(grosCaillo)
	require.NoError(t, err)
	assert.Equal(t, navigator.LevelGreenSpace, s.Level)
	assert.Equal(t, "q28", s.District.ID)
	assert.Equal(t, "7", s.Unit.ID)
	assert.Nil(t, s.GreenSpace)
}

func TestSelectGreenSpace_RequiresDistrict(t *testing.T) {
	s := navigator.Initial().SelectUnit(unit7)
	_, err := s.SelectGreenSpace(champ)
	assert.ErrorIs(t, err, navigator.ErrNoDistrictSelected)
}

func TestGoBack(t *testing.T) {
	s := navigator.Initial().SelectUnit(unit7)
	s, _ = s.SelectDistrict(invalides)
	s, _ = s.SelectGreenSpace(champ)

	s = s.GoBack()
	assert.Equal(t, navigator.LevelGreenSpace, s.Level, "leaf cleared, level kept")
	assert.Nil(t, s.GreenSpace)
	assert.Equal(t, "q26", s.District.ID)

	s = s.GoBack()
	assert.Equal(t, navigator.LevelDistrict, s.Level)
	assert.Nil(t, s.District)
	assert.Equal(t, "7", s.Unit.ID)

	s = s.GoBack()
	assert.Equal(t, navigator.LevelCity, s.Level)
	assert.Nil(t, s.Unit)
	assert.True(t, s.PanelOpen, "going back does not close the panel")

	assert.Equal(t, s, s.GoBack(), "no-op at city level")
}

func TestJumps(t *testing.T) {
	s := navigator.Initial().JumpToDistrict(&unit7, invalides)
	assert.Equal(t, navigator.LevelGreenSpace, s.Level)
	assert.Equal(t, "7", s.Unit.ID)
	assert.Nil(t, s.GreenSpace)

	s = s.JumpToGreenSpace(nil, nil, esplanade)
	assert.Equal(t, navigator.LevelGreenSpace, s.Level)
	assert.Nil(t, s.Unit)
	assert.Nil(t, s.District)
	assert.Equal(t, "ev8", s.GreenSpace.ID)
	assert.True(t, s.PanelOpen)
}

// randomState проводит состояние через случайную последовательность переходов
func randomState(t *rapid.T) navigator.State {
	s := navigator.Initial()
	steps := rapid.IntRange(0, 12).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		switch rapid.IntRange(0, 6).Draw(t, "op") {
		case 0:
			s = s.SelectUnit(rapid.SampledFrom([]domain.AdministrativeUnit{unit7, unit8}).Draw(t, "unit"))
		case 1:
			if next, err := s.SelectDistrict(rapid.SampledFrom([]domain.District{invalides, grosCaillo}).Draw(t, "district")); err == nil {
				s = next
			}
		case 2:
			if next, err := s.SelectGreenSpace(rapid.SampledFrom([]domain.GreenSpace{champ, esplanade}).Draw(t, "green")); err == nil {
				s = next
			}
		case 3:
			s = s.GoBack()
		case 4:
			s = s.Close()
		case 5:
			s = s.JumpToDistrict(&unit7, grosCaillo)
		case 6:
			s = s.JumpToGreenSpace(&unit7, &invalides, champ)
		}
	}
	return s
}

func TestClose_FromAnyState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		if got := s.Close(); got != navigator.Initial() {
			t.Fatalf("close from %+v returned %+v", s, got)
		}
	})
}

func TestSelectDistrict_AlwaysClearsGreenSpace(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		next, err := s.SelectDistrict(grosCaillo)
		if err != nil {
			if s.Level != navigator.LevelCity {
				t.Fatalf("unexpected error at level %s: %v", s.Level, err)
			}
			return
		}
		if next.GreenSpace != nil {
			t.Fatalf("green space survived district selection")
		}
	})
}

func TestGoBack_WithLeafKeepsLevel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomState(t)
		if s.GreenSpace == nil || s.Level != navigator.LevelGreenSpace {
			return
		}
		back := s.GoBack()
		if back.Level != navigator.LevelGreenSpace || back.GreenSpace != nil || back.District != s.District {
			t.Fatalf("go back from %+v gave %+v", s, back)
		}
	})
}

func TestStateIsValueTyped(t *testing.T) {
	s := navigator.Initial().SelectUnit(unit7)
	withDistrict, _ := s.SelectDistrict(invalides)

	assert.Nil(t, s.District, "original state is not modified")
	assert.NotNil(t, withDistrict.District)
}
