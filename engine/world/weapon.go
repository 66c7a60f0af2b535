package world

// Weapon is an immutable item with fixed combat stats. Name is its identity
// for equality checks; ShortID is the key used for lookups.
type Weapon struct {
	name           string
	shortID        string
	strength       uint
	criticalChance uint
}

type weaponSpec struct {
	Name     string `validate:"required" label:"NAME"`
	ShortID  string `validate:"required,shortid" label:"SHORT ID"`
	Strength uint   `validate:"gt=0" label:"STRENGTH"`
}

// NewWeapon builds a weapon. criticalChance is a percentage and is not range checked.
func NewWeapon(name, shortID string, strength, criticalChance uint) (Weapon, error) {
	if err := checkFields(weaponSpec{Name: name, ShortID: shortID, Strength: strength}); err != nil {
		return Weapon{}, err
	}
	return Weapon{
		name:           name,
		shortID:        shortID,
		strength:       strength,
		criticalChance: criticalChance,
	}, nil
}

func (w Weapon) Name() string         { return w.name }
func (w Weapon) ShortID() string      { return w.shortID }
func (w Weapon) Strength() uint       { return w.strength }
func (w Weapon) CriticalChance() uint { return w.criticalChance }

// CalculateDamage rolls [0, 99] and doubles the strength when the roll is at
// or below the critical chance. A roll of exactly 0 crits even at chance 0.
func (w Weapon) CalculateDamage(r Roller) uint {
	if critRoll(r) <= w.criticalChance {
		return 2 * w.strength
	}
	return w.strength
}
