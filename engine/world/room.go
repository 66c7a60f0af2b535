package world

import "fmt"

// Room is a node of the dungeon graph. Rooms are keyed by ShortID and own
// their doors, enemies, weapons and keys.
type Room struct {
	name    string
	shortID string
	doors   []Door
	enemies []Enemy
	weapons weaponList
	keys    uint
}

type roomSpec struct {
	Name    string `validate:"required" label:"NAME"`
	ShortID string `validate:"required,shortid" label:"SHORT ID"`
}

// NewRoom builds a room. The given collections are copied. Duplicate weapon
// names are only rejected by AddWeapon, not here.
func NewRoom(name, shortID string, doors []Door, enemies []Enemy, weapons []Weapon, keys uint) (*Room, error) {
	if err := checkFields(roomSpec{Name: name, ShortID: shortID}); err != nil {
		return nil, err
	}
	return &Room{
		name:    name,
		shortID: shortID,
		doors:   append([]Door(nil), doors...),
		enemies: append([]Enemy(nil), enemies...),
		weapons: append(weaponList(nil), weapons...),
		keys:    keys,
	}, nil
}

func (r *Room) Name() string    { return r.name }
func (r *Room) ShortID() string { return r.shortID }
func (r *Room) Keys() uint      { return r.keys }

// Doors returns a copy of the room's doors in file order.
func (r *Room) Doors() []Door { return append([]Door(nil), r.doors...) }

// Enemies returns a copy of the room's enemies in file order.
func (r *Room) Enemies() []Enemy { return append([]Enemy(nil), r.enemies...) }

// Weapons returns a copy of the weapons lying in the room.
func (r *Room) Weapons() []Weapon { return r.weapons.clone() }

// Clone returns a deep copy that shares no state with r.
func (r *Room) Clone() *Room {
	c := *r
	c.doors = r.Doors()
	c.enemies = r.Enemies()
	c.weapons = r.weapons.clone()
	return &c
}

func (r *Room) IncrementKeys() { r.keys++ }

// DecrementKeys removes a key; it is a no-op when the room has none.
func (r *Room) DecrementKeys() {
	if r.keys > 0 {
		r.keys--
	}
}

// AddWeapon places w in the room unless a weapon of the same name is there.
func (r *Room) AddWeapon(w Weapon) error {
	return r.weapons.add(w, "WEAPON ALREADY IN ROOM")
}

// RemoveWeapon removes the first weapon named name.
func (r *Room) RemoveWeapon(name string) error {
	return r.weapons.remove(name)
}

// RetrieveWeapon looks a weapon up by short id.
func (r *Room) RetrieveWeapon(shortID string) (Weapon, error) {
	return r.weapons.retrieve(shortID)
}

// RetrieveDoor looks a door up by direction.
func (r *Room) RetrieveDoor(direction string) (Door, error) {
	i, err := r.doorIndex(direction)
	if err != nil {
		return Door{}, err
	}
	return r.doors[i], nil
}

// SwitchDoorLock toggles the lock of the door facing direction.
func (r *Room) SwitchDoorLock(direction string) error {
	i, err := r.doorIndex(direction)
	if err != nil {
		return err
	}
	r.doors[i].SwitchLock()
	return nil
}

func (r *Room) doorIndex(direction string) (int, error) {
	if direction == "" {
		return 0, fmt.Errorf("%w: DOOR DIRECTION NOT SPECIFIED", ErrInvalidArgument)
	}
	for i, d := range r.doors {
		if d.direction == direction {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: DOOR NOT FOUND", ErrNotFound)
}

// RetrieveEnemy looks an enemy up by short id. The result is a copy; use
// UpdateEnemy to write combat results back.
func (r *Room) RetrieveEnemy(shortID string) (Enemy, error) {
	i, err := r.enemyIndex(shortID)
	if err != nil {
		return Enemy{}, err
	}
	return r.enemies[i], nil
}

// UpdateEnemy replaces the stored enemy that has e's short id.
func (r *Room) UpdateEnemy(e Enemy) error {
	i, err := r.enemyIndex(e.shortID)
	if err != nil {
		return err
	}
	r.enemies[i] = e
	return nil
}

func (r *Room) enemyIndex(shortID string) (int, error) {
	if shortID == "" {
		return 0, fmt.Errorf("%w: ENEMY NAME NOT SPECIFIED", ErrInvalidArgument)
	}
	for i, e := range r.enemies {
		if e.shortID == shortID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: ENEMY NOT FOUND", ErrNotFound)
}

// RemoveEnemy removes the first enemy named name.
func (r *Room) RemoveEnemy(name string) error {
	if len(r.enemies) == 0 {
		return fmt.Errorf("%w: ENEMIES EMPTY", ErrEmptyCollection)
	}
	for i, e := range r.enemies {
		if e.name == name {
			r.enemies = append(r.enemies[:i:i], r.enemies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: ENEMY NOT FOUND", ErrNotFound)
}
