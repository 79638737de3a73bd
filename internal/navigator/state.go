package navigator

import (
	"errors"

	"github.com/paris-green-explorer/internal/domain"
)

// Level - уровень детализации карты
type Level string

const (
	LevelCity       Level = "city"
	LevelDistrict   Level = "district"
	LevelGreenSpace Level = "green_space"
)

var (
	ErrNoUnitSelected     = errors.New("navigator: no unit selected")
	ErrNoDistrictSelected = errors.New("navigator: no district selected")
)

// State - состояние навигации. Значение неизменяемое: переходы возвращают новое состояние.
type State struct {
	Level      Level                      `json:"level"`
	Unit       *domain.AdministrativeUnit `json:"unit,omitempty"`
	District   *domain.District           `json:"district,omitempty"`
	GreenSpace *domain.GreenSpace         `json:"green_space,omitempty"`
	PanelOpen  bool                       `json:"panel_open"`
}

// Initial - город целиком, ничего не выбрано
func Initial() State {
	return State{Level: LevelCity}
}

// SelectUnit переходит к кварталам округа с любого уровня
func (s State) SelectUnit(u domain.AdministrativeUnit) State {
	return State{
		Level:     LevelDistrict,
		Unit:      &u,
		PanelOpen: true,
	}
}

// SelectDistrict переходит к зеленым зонам квартала, выбор зеленой зоны сбрасывается
func (s State) SelectDistrict(d domain.District) (State, error) {
	if s.Level == LevelCity {
		return s, ErrNoUnitSelected
	}
	return State{
		Level:     LevelGreenSpace,
		Unit:      s.Unit,
		District:  &d,
		PanelOpen: true,
	}, nil
}

// SelectGreenSpace выбирает зеленую зону, уровень не меняется
func (s State) SelectGreenSpace(g domain.GreenSpace) (State, error) {
	if s.Level != LevelGreenSpace {
		return s, ErrNoDistrictSelected
	}
	next := s
	next.GreenSpace = &g
	next.PanelOpen = true
	return next, nil
}

// GoBack - шаг назад: сначала снимается выбор листа, потом поднимаемся на уровень
func (s State) GoBack() State {
	next := s
	switch {
	case s.GreenSpace != nil:
		next.GreenSpace = nil
	case s.Level == LevelGreenSpace:
		next.Level = LevelDistrict
		next.District = nil
	case s.Level == LevelDistrict:
		next.Level = LevelCity
		next.Unit = nil
	}
	return next
}

// Close - безусловный сброс к начальному состоянию
func (s State) Close() State {
	return Initial()
}

// JumpToDistrict - переход из поиска: родительский округ может быть не найден (nil)
func (s State) JumpToDistrict(unit *domain.AdministrativeUnit, d domain.District) State {
	return State{
		Level:     LevelGreenSpace,
		Unit:      unit,
		District:  &d,
		PanelOpen: true,
	}
}

// JumpToGreenSpace - переход из поиска сразу к зеленой зоне
func (s State) JumpToGreenSpace(unit *domain.AdministrativeUnit, district *domain.District, g domain.GreenSpace) State {
	return State{
		Level:      LevelGreenSpace,
		Unit:       unit,
		District:   district,
		GreenSpace: &g,
		PanelOpen:  true,
	}
}
