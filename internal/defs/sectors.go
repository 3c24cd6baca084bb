package defs

import (
	"fmt"
	"sort"

	"fortune-wheel/internal/config"
)

// SectorBoundaries - углы границ секторов в градусах, по одному на сектор.
var SectorBoundaries = [config.SectorCount]float64{30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330, 360}

// StopAngles lists the signed normalized stop angles in the order the
// default payouts are declared.
var StopAngles = [config.SectorCount]int{0, -330, -300, -270, -240, -210, -180, -150, -120, -90, -60, -30}

var defaultPayouts = [config.SectorCount]int{1000, 200, 100, 500, 300, 100, 900, 200, 100, 700, 300, 100}

// SectorTable хранит границы секторов и награду за каждый угол остановки.
// После создания не меняется.
type SectorTable struct {
	boundaries    [config.SectorCount]float64
	rewards       map[int]int
	defaultReward int
}

// NewSectorTable builds the standard 12-sector table. Overrides replace the
// payout for the given stop angles; every key must be one of StopAngles.
func NewSectorTable(overrides map[int]int) (*SectorTable, error) {
	st := &SectorTable{
		boundaries:    SectorBoundaries,
		rewards:       make(map[int]int, config.SectorCount),
		defaultReward: config.DefaultReward,
	}
	for i, angle := range StopAngles {
		st.rewards[angle] = defaultPayouts[i]
	}

	// Сортируем ключи, чтобы ошибка была стабильной
	keys := make([]int, 0, len(overrides))
	for angle := range overrides {
		keys = append(keys, angle)
	}
	sort.Ints(keys)
	for _, angle := range keys {
		if _, ok := st.rewards[angle]; !ok {
			return nil, fmt.Errorf("reward override for unknown stop angle %d", angle)
		}
		if overrides[angle] < 0 {
			return nil, fmt.Errorf("negative reward %d for stop angle %d", overrides[angle], angle)
		}
		st.rewards[angle] = overrides[angle]
	}

	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// Validate проверяет инвариант: ровно 12 границ с шагом 30, последняя - 360.
func (st *SectorTable) Validate() error {
	prev := 0.0
	for i, b := range st.boundaries {
		if b-prev != config.SectorStep {
			return fmt.Errorf("sector %d boundary %v is not %v after %v", i, b, config.SectorStep, prev)
		}
		prev = b
	}
	if prev != 360 {
		return fmt.Errorf("sectors cover %v degrees, want 360", prev)
	}
	if len(st.rewards) != config.SectorCount {
		return fmt.Errorf("reward table has %d entries, want %d", len(st.rewards), config.SectorCount)
	}
	return nil
}

// Len returns the number of sectors.
func (st *SectorTable) Len() int {
	return len(st.boundaries)
}

// Boundary возвращает угол границы сектора с индексом i.
func (st *SectorTable) Boundary(i int) float64 {
	return st.boundaries[i]
}

// RewardFor returns the payout for a normalized stop angle. ok is false when
// the angle is not one of the 12 known values and the default reward is used.
func (st *SectorTable) RewardFor(stopAngle int) (reward int, ok bool) {
	if r, found := st.rewards[stopAngle]; found {
		return r, true
	}
	return st.defaultReward, false
}

// WedgeReward возвращает награду клина k (0..11), отсчитанного против часовой
// стрелки от указателя: при повороте колеса на -30k под указателем окажется он.
func (st *SectorTable) WedgeReward(k int) int {
	r, _ := st.RewardFor(-int(config.SectorStep) * k)
	return r
}
