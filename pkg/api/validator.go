package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p JoinPayload) Validate() error {
	if p.Token == "" {
		return errors.New("token is required")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	if p.Slot < 0 || p.Slot > 7 {
		return errors.New("Invalid slot")
	}
	return nil
}

func (p SpellPayload) Validate() error {
	if p.Slot < 0 || p.Slot > 4 {
		return errors.New("Invalid spell slot")
	}
	return nil
}

func (p StatPayload) Validate() error {
	if p.StatType == "" {
		return errors.New("statType is required")
	}
	return nil
}

func (p ExperiencePayload) Validate() error {
	if p.Amount <= 0 {
		return errors.New("Experience amount must be positive")
	}
	return nil
}
