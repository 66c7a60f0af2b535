package world

// Enemy is a scripted combatant placed in a room.
type Enemy struct {
	name           string
	shortID        string
	health         uint
	strength       uint
	criticalChance uint
}

type enemySpec struct {
	Name     string `validate:"required" label:"NAME"`
	ShortID  string `validate:"required,shortid" label:"SHORT ID"`
	Health   uint   `validate:"gt=0" label:"HEALTH"`
	Strength uint   `validate:"gt=0" label:"STRENGTH"`
}

// NewEnemy builds an enemy with a positive health pool and strength.
func NewEnemy(name, shortID string, health, strength, criticalChance uint) (Enemy, error) {
	spec := enemySpec{Name: name, ShortID: shortID, Health: health, Strength: strength}
	if err := checkFields(spec); err != nil {
		return Enemy{}, err
	}
	return Enemy{
		name:           name,
		shortID:        shortID,
		health:         health,
		strength:       strength,
		criticalChance: criticalChance,
	}, nil
}

func (e Enemy) Name() string         { return e.name }
func (e Enemy) ShortID() string      { return e.shortID }
func (e Enemy) Health() uint         { return e.health }
func (e Enemy) Strength() uint       { return e.strength }
func (e Enemy) CriticalChance() uint { return e.criticalChance }

// IsAlive reports whether the enemy has health left.
func (e Enemy) IsAlive() bool { return e.health > 0 }

// CalculateDamage rolls [0, 99]. Unlike a weapon, an enemy with a zero
// critical chance never crits.
func (e Enemy) CalculateDamage(r Roller) uint {
	if critRoll(r) <= e.criticalChance && e.criticalChance > 0 {
		return 2 * e.strength
	}
	return e.strength
}

// DealDamage is the damage of one enemy strike.
func (e Enemy) DealDamage(r Roller) uint {
	return e.CalculateDamage(r)
}

// TakeDamage lowers health, flooring at zero.
func (e *Enemy) TakeDamage(amount uint) {
	e.health = subFloor(e.health, amount)
}

// subFloor returns a-b, or 0 when b exceeds a.
func subFloor(a, b uint) uint {
	if b > a {
		return 0
	}
	return a - b
}
