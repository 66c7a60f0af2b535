package world

import "fmt"

// weaponList is the ordered weapon collection shared by rooms and the player.
type weaponList []Weapon

// add appends w unless a weapon with the same name is already present.
func (l *weaponList) add(w Weapon, duplicate string) error {
	for _, held := range *l {
		if held.name == w.name {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, duplicate)
		}
	}
	*l = append(*l, w)
	return nil
}

// remove drops the first weapon named name, keeping the order of the rest.
func (l *weaponList) remove(name string) error {
	if len(*l) == 0 {
		return fmt.Errorf("%w: WEAPONS EMPTY", ErrEmptyCollection)
	}
	for i, held := range *l {
		if held.name == name {
			*l = append((*l)[:i:i], (*l)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: WEAPON NOT FOUND", ErrNotFound)
}

func (l weaponList) retrieve(shortID string) (Weapon, error) {
	if shortID == "" {
		return Weapon{}, fmt.Errorf("%w: WEAPON NAME NOT SPECIFIED", ErrInvalidArgument)
	}
	for _, w := range l {
		if w.shortID == shortID {
			return w, nil
		}
	}
	return Weapon{}, fmt.Errorf("%w: WEAPON NOT FOUND", ErrNotFound)
}

func (l weaponList) clone() weaponList {
	if l == nil {
		return nil
	}
	return append(weaponList(nil), l...)
}
