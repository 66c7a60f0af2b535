package world

// Default player profile.
const (
	DefaultLocation  = "ENTRN"
	DefaultMaxHealth = 1000
)

// Player is the single actor of a session. Carry limits are enforced by the
// engine, not here.
type Player struct {
	location  string
	maxHealth uint
	health    uint
	keys      uint
	weapons   weaponList
}

type playerSpec struct {
	Location string `validate:"required,shortid" label:"CURRENT LOCATION"`
	Health   uint   `validate:"gt=0" label:"HEALTH"`
}

// NewPlayer builds a player at location with a full health pool of health.
func NewPlayer(location string, health, keys uint, weapons []Weapon) (*Player, error) {
	if err := checkFields(playerSpec{Location: location, Health: health}); err != nil {
		return nil, err
	}
	return &Player{
		location:  location,
		maxHealth: health,
		health:    health,
		keys:      keys,
		weapons:   append(weaponList(nil), weapons...),
	}, nil
}

// DefaultPlayer is the starter profile: the entrance, 1000 health and a sword.
func DefaultPlayer() *Player {
	sword := Weapon{name: "SWORD", shortID: "SWORD", strength: 15, criticalChance: 15}
	return &Player{
		location:  DefaultLocation,
		maxHealth: DefaultMaxHealth,
		health:    DefaultMaxHealth,
		weapons:   weaponList{sword},
	}
}

func (p *Player) Location() string { return p.location }
func (p *Player) Health() uint     { return p.health }
func (p *Player) MaxHealth() uint  { return p.maxHealth }
func (p *Player) Keys() uint       { return p.keys }

// Weapons returns a copy of the carried weapons in pickup order.
func (p *Player) Weapons() []Weapon { return p.weapons.clone() }

// Clone returns a deep copy that shares no state with p.
func (p *Player) Clone() *Player {
	c := *p
	c.weapons = p.weapons.clone()
	return &c
}

// SetLocation moves the player to the room with the given short id.
func (p *Player) SetLocation(shortID string) { p.location = shortID }

// RegenerateHealth restores a twentieth of max health, capped at max.
func (p *Player) RegenerateHealth() {
	p.health += p.maxHealth / 20
	if p.health > p.maxHealth {
		p.health = p.maxHealth
	}
}

// StrongestWeapon returns the first weapon with the greatest strength.
func (p *Player) StrongestWeapon() (Weapon, bool) {
	if len(p.weapons) == 0 {
		return Weapon{}, false
	}
	best := 0
	for i, w := range p.weapons {
		if w.strength > p.weapons[best].strength {
			best = i
		}
	}
	return p.weapons[best], true
}

// DealDamage strikes with the strongest weapon. An unarmed player deals nothing.
func (p *Player) DealDamage(r Roller) uint {
	w, ok := p.StrongestWeapon()
	if !ok {
		return 0
	}
	return w.CalculateDamage(r)
}

// TakeDamage lowers health, flooring at zero.
func (p *Player) TakeDamage(amount uint) {
	p.health = subFloor(p.health, amount)
}

// IsAlive reports whether the player has health left.
func (p *Player) IsAlive() bool { return p.health > 0 }

func (p *Player) IncrementKeys() { p.keys++ }

// DecrementKeys removes a key; it is a no-op when the player has none.
func (p *Player) DecrementKeys() {
	if p.keys > 0 {
		p.keys--
	}
}

// AddWeapon appends w unless a weapon of the same name is already carried.
func (p *Player) AddWeapon(w Weapon) error {
	return p.weapons.add(w, "WEAPON ALREADY ON PERSON")
}

// RemoveWeapon removes the first carried weapon named name.
func (p *Player) RemoveWeapon(name string) error {
	return p.weapons.remove(name)
}

// RetrieveWeapon looks a carried weapon up by short id.
func (p *Player) RetrieveWeapon(shortID string) (Weapon, error) {
	return p.weapons.retrieve(shortID)
}
