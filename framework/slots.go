package framework

import "fmt"

// Slot is the name of a value that one step captures from a response and later steps use,
// such as the ID of an entity that was created.
type Slot string

// Slots holds the values captured so far in a run. It starts empty and is never reset while the
// run is in progress. Each slot can be written only once.
type Slots struct {
	values  map[Slot]string
	writers map[Slot]string
}

func NewSlots() *Slots {
	return &Slots{
		values:  make(map[Slot]string),
		writers: make(map[Slot]string),
	}
}

// Get returns the value of a slot and whether it has been set.
func (s *Slots) Get(slot Slot) (string, bool) {
	v, ok := s.values[slot]
	return v, ok
}

// Missing returns the slots in the list that have not been set.
func (s *Slots) Missing(slots []Slot) []Slot {
	var ret []Slot
	for _, slot := range slots {
		if _, ok := s.values[slot]; !ok {
			ret = append(ret, slot)
		}
	}
	return ret
}

func (s *Slots) set(slot Slot, value, writer string) error {
	if previous, ok := s.writers[slot]; ok {
		return fmt.Errorf("slot %s was already written by %q", slot, previous)
	}
	if value == "" {
		return fmt.Errorf("refusing to capture an empty value for slot %s", slot)
	}
	s.values[slot] = value
	s.writers[slot] = writer
	return nil
}

func slotIn(slot Slot, slots []Slot) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
