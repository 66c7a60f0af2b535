package world

// Door is a directed edge from the room holding it to AdjacentRoom.
type Door struct {
	direction    string
	adjacentRoom string
	locked       bool
}

type doorSpec struct {
	Direction    string `validate:"required" label:"DIRECTION"`
	AdjacentRoom string `validate:"required,shortid" label:"ADJACENT ROOM"`
}

// NewDoor builds a door leading in direction to the room with id adjacentRoom.
func NewDoor(direction, adjacentRoom string, locked bool) (Door, error) {
	if err := checkFields(doorSpec{Direction: direction, AdjacentRoom: adjacentRoom}); err != nil {
		return Door{}, err
	}
	return Door{direction: direction, adjacentRoom: adjacentRoom, locked: locked}, nil
}

func (d Door) Direction() string    { return d.direction }
func (d Door) AdjacentRoom() string { return d.adjacentRoom }
func (d Door) IsLocked() bool       { return d.locked }

// SwitchLock toggles the lock.
func (d *Door) SwitchLock() { d.locked = !d.locked }
